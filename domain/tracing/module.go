// Package tracing wires OpenTelemetry into the app: a global TracerProvider,
// W3C propagation and the Echo request middleware.
package tracing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/Pritam6569/portfr/internal/config"
	"github.com/Pritam6569/portfr/internal/version"
	"github.com/Pritam6569/portfr/pkg/logger"
)

var Module = fx.Module("tracing",
	fx.Provide(NewTracerProvider),
	fx.Invoke(
		RegisterTracingLifecycle,
		RegisterEchoMiddleware,
	),
)

// Provider wraps the SDK provider. SDK is nil when tracing is disabled.
type Provider struct {
	SDK *sdktrace.TracerProvider
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.SDK != nil
}

// NewTracerProvider installs the global TracerProvider and propagator.
// Without an endpoint the global provider is a no-op.
func NewTracerProvider(cfg *config.Config, log *slog.Logger) (*Provider, error) {
	oc := cfg.Otel
	log = log.With(logger.Scope("tracing"))

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !oc.Enabled() {
		log.Info("tracing disabled (OTEL_EXPORTER_OTLP_ENDPOINT not set)")
		otel.SetTracerProvider(noop.NewTracerProvider())
		return &Provider{}, nil
	}

	exp, err := otlptracehttp.New(context.Background(), exporterOptions(oc)...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(newResource(cfg, log)),
		sdktrace.WithSampler(samplerFor(oc.SamplingRate)),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing enabled",
		slog.String("endpoint", oc.ExporterEndpoint),
		slog.String("service", oc.ServiceName),
		slog.Float64("sampling_rate", oc.SamplingRate),
	)
	return &Provider{SDK: tp}, nil
}

func exporterOptions(oc config.OtelConfig) []otlptracehttp.Option {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(oc.ExporterEndpoint)}
	if oc.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	if len(oc.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(oc.Headers))
	}
	return opts
}

func newResource(cfg *config.Config, log *slog.Logger) *resource.Resource {
	res, err := resource.New(context.Background(),
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(cfg.Otel.ServiceName),
			semconv.ServiceVersion(version.Info().Version),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
		resource.WithFromEnv(),
		resource.WithHost(),
	)
	if err != nil {
		// Partial resources are still usable.
		log.Warn("resource detection incomplete", logger.Error(err))
	}
	if res == nil {
		res = resource.Default()
	}
	return res
}

// samplerFor samples root spans at rate; child spans follow the parent.
func samplerFor(rate float64) sdktrace.Sampler {
	var root sdktrace.Sampler
	switch {
	case rate >= 1.0:
		root = sdktrace.AlwaysSample()
	case rate <= 0:
		root = sdktrace.NeverSample()
	default:
		root = sdktrace.TraceIDRatioBased(rate)
	}
	return sdktrace.ParentBased(root)
}

// RegisterTracingLifecycle flushes and shuts the exporter down on app stop.
func RegisterTracingLifecycle(lc fx.Lifecycle, p *Provider, log *slog.Logger) {
	if !p.Enabled() {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("flushing spans")
			return p.SDK.Shutdown(ctx)
		},
	})
}

// RegisterEchoMiddleware traces page and API requests.
func RegisterEchoMiddleware(e *echo.Echo, p *Provider, cfg *config.Config) {
	if !p.Enabled() {
		return
	}
	e.Use(otelecho.Middleware(
		cfg.Otel.ServiceName,
		otelecho.WithSkipper(skipTracing),
	))
}

// skipTracing reports paths that get no span.
func skipTracing(c echo.Context) bool {
	p := c.Request().URL.Path
	switch p {
	case "/api/health", "/api/ping", "/metrics", "/favicon.ico":
		return true
	}
	return strings.HasPrefix(p, "/static/")
}
