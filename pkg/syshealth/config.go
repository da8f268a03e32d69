package syshealth

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the scoring thresholds of the monitor. Each component scores
// 100 below its warning threshold and drops towards 0 at critical.
type Config struct {
	IOWaitWarningPercent  float64 `env:"HEALTH_IOWAIT_WARN_PCT" envDefault:"30"`
	IOWaitCriticalPercent float64 `env:"HEALTH_IOWAIT_CRIT_PCT" envDefault:"40"`

	// Load average as a multiple of the CPU count.
	CPULoadWarningFactor  float64 `env:"HEALTH_LOAD_WARN_FACTOR" envDefault:"2"`
	CPULoadCriticalFactor float64 `env:"HEALTH_LOAD_CRIT_FACTOR" envDefault:"3"`

	MemoryWarningPercent  float64 `env:"HEALTH_MEM_WARN_PCT" envDefault:"85"`
	MemoryCriticalPercent float64 `env:"HEALTH_MEM_CRIT_PCT" envDefault:"95"`

	// A sample older than this is reported as stale.
	StalenessThreshold time.Duration `env:"HEALTH_STALE_AFTER" envDefault:"2m"`
	CollectionTimeout  time.Duration `env:"HEALTH_COLLECT_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns the thresholds with every variable unset.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig reads thresholds from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse health monitor config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every warning threshold sits below its critical one.
func (c *Config) Validate() error {
	var errs []error
	check := func(name string, warn, crit float64) {
		if warn >= crit {
			errs = append(errs, fmt.Errorf("%s: warning %.1f must be below critical %.1f", name, warn, crit))
		}
	}
	check("iowait", c.IOWaitWarningPercent, c.IOWaitCriticalPercent)
	check("load", c.CPULoadWarningFactor, c.CPULoadCriticalFactor)
	check("memory", c.MemoryWarningPercent, c.MemoryCriticalPercent)
	if c.CollectionTimeout <= 0 {
		errs = append(errs, errors.New("collection timeout must be positive"))
	}
	return errors.Join(errs...)
}
