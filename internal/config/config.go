package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Environment   string `env:"NODE_ENV" envDefault:"development"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	ServerPort    int    `env:"SERVER_PORT" envDefault:"5000"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Assets and content
	Assets AssetsConfig

	// Visitor notifications (Discord webhook)
	Visitors VisitorsConfig

	// Background sampling of host health
	Monitor MonitorConfig

	// OpenTelemetry tracing
	Otel OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// AssetsConfig controls where pages and static files come from.
type AssetsConfig struct {
	// StaticDir is the prebuilt static directory served in production.
	StaticDir string `env:"STATIC_DIR" envDefault:"dist/public"`
	// Dir is the on-disk copy of the embedded assets, served live in development.
	Dir string `env:"ASSETS_DIR" envDefault:"web/static"`
	// DevServerURL is an optional asset dev server that receives unmatched
	// requests in development.
	DevServerURL string `env:"DEV_SERVER_URL" envDefault:""`
	// ContentFile overrides the embedded site content with a YAML file on disk.
	ContentFile string `env:"CONTENT_FILE" envDefault:""`
	// ParticleCount is the number of decorative background particles.
	ParticleCount int `env:"PARTICLE_COUNT" envDefault:"30"`
}

// VisitorsConfig holds the Discord visitor notifier settings.
type VisitorsConfig struct {
	WebhookURL string        `env:"DISCORD_WEBHOOK_URL" envDefault:""`
	QueueSize  int           `env:"VISITOR_QUEUE_SIZE" envDefault:"32"`
	PerMinute  int           `env:"VISITOR_NOTIFY_PER_MINUTE" envDefault:"10"`
	Timeout    time.Duration `env:"VISITOR_NOTIFY_TIMEOUT" envDefault:"5s"`
}

// Enabled reports whether a webhook is configured.
func (v *VisitorsConfig) Enabled() bool {
	return v.WebhookURL != ""
}

// MonitorConfig holds the host health sampling settings.
type MonitorConfig struct {
	Enabled  bool          `env:"HEALTH_MONITOR_ENABLED" envDefault:"true"`
	Interval time.Duration `env:"HEALTH_MONITOR_INTERVAL" envDefault:"30s"`
}

// OtelConfig holds the trace exporter settings. Tracing is off unless an
// endpoint is set.
type OtelConfig struct {
	// ExporterEndpoint is the OTLP/HTTP collector URL, e.g. http://localhost:4318.
	ExporterEndpoint string            `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	Headers          map[string]string `env:"OTEL_EXPORTER_OTLP_HEADERS" envSeparator:"," envKeyValSeparator:"="`
	Insecure         bool              `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	ServiceName      string            `env:"OTEL_SERVICE_NAME" envDefault:"portfr"`
	// SamplingRate applies to root spans; children follow their parent.
	SamplingRate float64 `env:"OTEL_SAMPLING_RATE" envDefault:"1.0"`
}

// Enabled reports whether an OTLP endpoint is configured.
func (c OtelConfig) Enabled() bool {
	return c.ExporterEndpoint != ""
}

// IsProduction reports whether static assets come from the prebuilt directory.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("static_dir", cfg.Assets.StaticDir),
		slog.Bool("dev_proxy", cfg.Assets.DevServerURL != ""),
		slog.Bool("visitor_webhook", cfg.Visitors.Enabled()),
	)

	return cfg, nil
}
