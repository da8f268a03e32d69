package tracing

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Pritam6569/portfr/internal/config"
)

func TestNewTracerProvider_DisabledWithoutEndpoint(t *testing.T) {
	p, err := NewTracerProvider(&config.Config{}, slog.Default())
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, otel.GetTextMapPropagator().Fields())
}

func TestNewTracerProvider_EnabledWithEndpoint(t *testing.T) {
	cfg := &config.Config{Environment: config.EnvDevelopment}
	cfg.Otel.ExporterEndpoint = "http://127.0.0.1:4318"
	cfg.Otel.ServiceName = "portfr-test"
	cfg.Otel.SamplingRate = 0.5
	cfg.Otel.Headers = map[string]string{"x-api-key": "k"}

	p, err := NewTracerProvider(cfg, slog.Default())
	require.NoError(t, err)
	require.True(t, p.Enabled())
	require.NoError(t, p.SDK.Shutdown(context.Background()))
}

func TestExporterOptions(t *testing.T) {
	oc := config.OtelConfig{ExporterEndpoint: "http://c:4318"}
	assert.Len(t, exporterOptions(oc), 1)

	oc.Insecure = true
	oc.Headers = map[string]string{"a": "b"}
	assert.Len(t, exporterOptions(oc), 3)
}

func TestSamplerFor(t *testing.T) {
	assert.Equal(t, sdktrace.ParentBased(sdktrace.AlwaysSample()).Description(), samplerFor(1).Description())
	assert.Equal(t, sdktrace.ParentBased(sdktrace.NeverSample()).Description(), samplerFor(0).Description())
	assert.Equal(t, sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.25)).Description(), samplerFor(0.25).Description())
}

func TestRegisterEchoMiddleware_DisabledIsNoop(t *testing.T) {
	e := echo.New()
	RegisterEchoMiddleware(e, &Provider{}, &config.Config{})

	e.GET("/", func(c echo.Context) error { return c.NoContent(204) })
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 204, rec.Code)
}

func TestSkipTracing(t *testing.T) {
	e := echo.New()
	cases := map[string]bool{
		"/api/health":          true,
		"/api/ping":            true,
		"/metrics":             true,
		"/favicon.ico":         true,
		"/static/css/site.css": true,
		"/static/motion.css":   true,
		"/":                    false,
		"/api/info":            false,
		"/direct":              false,
	}
	for path, want := range cases {
		c := e.NewContext(httptest.NewRequest("GET", path, nil), httptest.NewRecorder())
		assert.Equal(t, want, skipTracing(c), path)
	}
}
