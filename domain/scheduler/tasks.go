package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/Pritam6569/portfr/pkg/logger"
	"github.com/Pritam6569/portfr/pkg/syshealth"
)

// HealthSampleTask takes one host health sample.
type HealthSampleTask struct {
	monitor syshealth.Monitor
	log     *slog.Logger
}

// NewHealthSampleTask creates a new health sample task
func NewHealthSampleTask(monitor syshealth.Monitor, log *slog.Logger) *HealthSampleTask {
	return &HealthSampleTask{
		monitor: monitor,
		log:     log.With(logger.Scope("scheduler.health_sample")),
	}
}

// Run executes the health sample
func (t *HealthSampleTask) Run(ctx context.Context) error {
	if err := t.monitor.Collect(ctx); err != nil {
		return err
	}
	h := t.monitor.GetHealth()
	t.log.Debug("health sampled",
		slog.Int("score", h.Score),
		slog.String("zone", string(h.Zone)))
	return nil
}

// ContentReloader re-reads site content from its source.
type ContentReloader interface {
	Reload(ctx context.Context) error
}

// ContentRefreshTask re-reads the on-disk content file.
type ContentRefreshTask struct {
	content ContentReloader
	log     *slog.Logger
}

// NewContentRefreshTask creates a new content refresh task
func NewContentRefreshTask(content ContentReloader, log *slog.Logger) *ContentRefreshTask {
	return &ContentRefreshTask{
		content: content,
		log:     log.With(logger.Scope("scheduler.content_refresh")),
	}
}

// Run executes the content refresh
func (t *ContentRefreshTask) Run(ctx context.Context) error {
	start := time.Now()
	if err := t.content.Reload(ctx); err != nil {
		return err
	}
	t.log.Debug("content refreshed", slog.Duration("duration", time.Since(start)))
	return nil
}
