package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Pritam6569/portfr/domain/access"
	"github.com/Pritam6569/portfr/domain/health"
	"github.com/Pritam6569/portfr/domain/scheduler"
	"github.com/Pritam6569/portfr/domain/site"
	"github.com/Pritam6569/portfr/domain/tracing"
	"github.com/Pritam6569/portfr/domain/visitors"
	"github.com/Pritam6569/portfr/internal/config"
	"github.com/Pritam6569/portfr/internal/metrics"
	"github.com/Pritam6569/portfr/internal/server"
	"github.com/Pritam6569/portfr/pkg/logger"
	"github.com/Pritam6569/portfr/pkg/syshealth"
)

// loadEnv reads .env files if present. .env.local takes precedence.
func loadEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// modules is the full application graph.
func modules() fx.Option {
	return fx.Options(
		// Infrastructure
		logger.Module,
		config.Module,
		tracing.Module,
		metrics.Module,
		server.Module,

		// Host diagnostics, sampled by the scheduler
		syshealth.Module,

		// Domain
		site.Module,
		visitors.Module,
		health.Module,
		access.Module,

		// Scheduled tasks (health sampling, content refresh)
		scheduler.Module,
	)
}

func newApp(extra ...fx.Option) *fx.App {
	opts := []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		modules(),
	}
	return fx.New(append(opts, extra...)...)
}
