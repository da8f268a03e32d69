package syshealth

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module provides the host health Monitor. Sampling is driven by the scheduler.
var Module = fx.Module("syshealth",
	fx.Provide(
		LoadConfig,
		func(cfg *Config, reg prometheus.Registerer, log *slog.Logger) Monitor {
			return NewMonitor(cfg, reg, log)
		},
	),
)
