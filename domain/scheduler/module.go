package scheduler

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Pritam6569/portfr/domain/site/content"
	"github.com/Pritam6569/portfr/internal/config"
	"github.com/Pritam6569/portfr/pkg/logger"
	"github.com/Pritam6569/portfr/pkg/syshealth"
)

// Module provides scheduled task functionality
var Module = fx.Module("scheduler",
	fx.Provide(
		NewConfig,
		NewScheduler,
	),
	fx.Invoke(
		RegisterTasks,
		RegisterSchedulerLifecycle,
	),
)

const (
	taskHealthSample   = "health_sample"
	taskContentRefresh = "content_refresh"
)

// TaskParams contains dependencies for creating scheduled tasks
type TaskParams struct {
	fx.In
	Scheduler *Scheduler
	Log       *slog.Logger
	Cfg       *Config
	AppCfg    *config.Config
	Monitor   syshealth.Monitor `optional:"true"`
	Content   *content.Store    `optional:"true"`
}

// RegisterTasks registers all scheduled tasks
func RegisterTasks(p TaskParams) error {
	if !p.Cfg.Enabled {
		p.Log.Info("scheduler disabled, skipping task registration")
		return nil
	}

	if p.Monitor != nil && p.AppCfg.Monitor.Enabled {
		task := NewHealthSampleTask(p.Monitor, p.Log)
		if err := p.Scheduler.AddIntervalTask(taskHealthSample, p.AppCfg.Monitor.Interval, task.Run); err != nil {
			p.Log.Error("failed to register health sample task", logger.Error(err))
		}
	}

	// In development the file watcher already reloads content.
	if p.Content != nil && p.Content.Path() != "" && p.AppCfg.IsProduction() {
		task := NewContentRefreshTask(p.Content, p.Log)
		var err error
		if p.Cfg.ContentRefreshSchedule != "" {
			err = p.Scheduler.AddCronTask(taskContentRefresh, p.Cfg.ContentRefreshSchedule, task.Run)
		} else {
			err = p.Scheduler.AddIntervalTask(taskContentRefresh, p.Cfg.ContentRefreshInterval, task.Run)
		}
		if err != nil {
			p.Log.Error("failed to register content refresh task", logger.Error(err))
		}
	}

	p.Log.Info("registered scheduled tasks",
		slog.Any("tasks", p.Scheduler.ListTasks()))
	return nil
}

// LifecycleParams contains dependencies for the scheduler lifecycle
type LifecycleParams struct {
	fx.In
	Lc        fx.Lifecycle
	Scheduler *Scheduler
	Cfg       *Config
	AppCfg    *config.Config
	Monitor   syshealth.Monitor `optional:"true"`
}

// RegisterSchedulerLifecycle registers the scheduler with fx lifecycle.
// The first health sample is taken on start so diagnostics are never empty.
func RegisterSchedulerLifecycle(p LifecycleParams) {
	if !p.Cfg.Enabled {
		return
	}

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if p.Monitor != nil && p.AppCfg.Monitor.Enabled {
				// Failures are logged by the scheduler; the next tick retries.
				_ = p.Scheduler.RunNow(taskHealthSample)
			}
			return p.Scheduler.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return p.Scheduler.Stop(ctx)
		},
	})
}
