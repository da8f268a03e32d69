package scheduler

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/robfig/cron/v3"
)

// Config holds scheduler configuration.
type Config struct {
	Enabled bool `env:"SCHEDULER_ENABLED" envDefault:"true"`

	// ContentRefreshInterval is how often a file-backed content store is
	// re-read in production.
	ContentRefreshInterval time.Duration `env:"CONTENT_REFRESH_INTERVAL" envDefault:"5m"`

	// ContentRefreshSchedule is a six-field cron expression (seconds first)
	// or descriptor such as "@hourly". It replaces the interval when set.
	ContentRefreshSchedule string `env:"CONTENT_REFRESH_SCHEDULE" envDefault:""`
}

// cronParser accepts what cron.New(cron.WithSeconds()) accepts.
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// NewConfig reads the scheduler settings and rejects a malformed schedule at
// startup rather than at registration.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scheduler config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ContentRefreshSchedule != "" {
		if _, err := cronParser.Parse(c.ContentRefreshSchedule); err != nil {
			return fmt.Errorf("CONTENT_REFRESH_SCHEDULE %q: %w", c.ContentRefreshSchedule, err)
		}
	} else if c.ContentRefreshInterval <= 0 {
		return fmt.Errorf("CONTENT_REFRESH_INTERVAL must be positive, got %s", c.ContentRefreshInterval)
	}
	return nil
}
