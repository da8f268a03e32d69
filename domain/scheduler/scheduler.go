// Package scheduler runs the server's background jobs: host health sampling
// and, in production, re-reading a file-backed content store.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Pritam6569/portfr/pkg/logger"
	"github.com/Pritam6569/portfr/pkg/tracing"
)

const taskTimeout = time.Minute

// TaskFunc is one run of a scheduled task.
type TaskFunc func(ctx context.Context) error

// Scheduler runs named tasks on cron or interval schedules. A run that is
// still going when the next one is due is skipped.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
	now  func() time.Time

	mu      sync.RWMutex
	tasks   map[string]*task
	running bool
}

type task struct {
	id       cron.EntryID
	schedule string
	fn       TaskFunc

	// guarded by Scheduler.mu
	runs         int
	failures     int
	lastErr      string
	lastDuration time.Duration
}

// NewScheduler creates a scheduler with seconds precision.
func NewScheduler(log *slog.Logger) *Scheduler {
	log = log.With(logger.Scope("scheduler"))
	cl := cronLogger{log}
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		log:   log,
		now:   time.Now,
		tasks: make(map[string]*task),
	}
}

// Start begins firing schedules. It is a no-op when already running.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}
	s.cron.Start()
	s.running = true
	s.log.Info("scheduler started", slog.Int("tasks", len(s.tasks)))
	return nil
}

// Stop waits for running tasks to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	// Tasks take the lock to record results, so wait without holding it.
	select {
	case <-s.cron.Stop().Done():
		s.log.Info("scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("scheduler stop timeout")
	}
	return nil
}

// AddCronTask schedules fn with a six-field cron expression (seconds first)
// or a descriptor such as "@hourly".
func (s *Scheduler) AddCronTask(name, schedule string, fn TaskFunc) error {
	if err := s.add(name, schedule, fn); err != nil {
		return err
	}
	s.log.Info("added cron task", slog.String("name", name), slog.String("schedule", schedule))
	return nil
}

// AddIntervalTask schedules fn every interval.
func (s *Scheduler) AddIntervalTask(name string, interval time.Duration, fn TaskFunc) error {
	if interval <= 0 {
		return fmt.Errorf("task %s: interval must be positive", name)
	}
	if err := s.add(name, "@every "+interval.String(), fn); err != nil {
		return err
	}
	s.log.Info("added interval task", slog.String("name", name), slog.Duration("interval", interval))
	return nil
}

// add replaces any task registered under the same name.
func (s *Scheduler) add(name, schedule string, fn TaskFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &task{schedule: schedule, fn: fn}
	id, err := s.cron.AddFunc(schedule, func() { s.run(name, t) })
	if err != nil {
		return fmt.Errorf("task %s: %w", name, err)
	}
	if old, ok := s.tasks[name]; ok {
		s.cron.Remove(old.id)
	}
	t.id = id
	s.tasks[name] = t
	return nil
}

// RemoveTask unschedules name. Unknown names are ignored.
func (s *Scheduler) RemoveTask(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[name]; ok {
		s.cron.Remove(t.id)
		delete(s.tasks, name)
		s.log.Info("removed task", slog.String("name", name))
	}
}

// RunNow runs a registered task synchronously, outside its schedule, and
// returns its error.
func (s *Scheduler) RunNow(name string) error {
	s.mu.RLock()
	t, ok := s.tasks[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown task %q", name)
	}
	return s.run(name, t)
}

func (s *Scheduler) run(name string, t *task) error {
	start := s.now()

	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	defer cancel()
	ctx, span := tracing.Start(ctx, "scheduler.task", attribute.String("portfr.task.name", name))
	defer span.End()

	err := t.fn(ctx)
	elapsed := s.now().Sub(start)

	s.mu.Lock()
	t.runs++
	t.lastDuration = elapsed
	t.lastErr = ""
	if err != nil {
		t.failures++
		t.lastErr = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Error("scheduled task failed",
			slog.String("name", name),
			slog.Duration("duration", elapsed),
			logger.Error(err))
		return tracing.Fail(span, err, "task failed")
	}
	s.log.Debug("scheduled task completed", slog.String("name", name), slog.Duration("duration", elapsed))
	return nil
}

// ListTasks returns the sorted task names.
func (s *Scheduler) ListTasks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TaskInfo describes a scheduled task for diagnostics.
type TaskInfo struct {
	Name         string    `json:"name"`
	Schedule     string    `json:"schedule"`
	NextRun      time.Time `json:"nextRun"`
	PrevRun      time.Time `json:"prevRun,omitzero"`
	Runs         int       `json:"runs"`
	Failures     int       `json:"failures"`
	LastError    string    `json:"lastError,omitempty"`
	LastDuration string    `json:"lastDuration,omitempty"`
}

// GetTaskInfo returns every task sorted by name. NextRun is zero until the
// scheduler has started.
func (s *Scheduler) GetTaskInfo() []TaskInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := make([]TaskInfo, 0, len(s.tasks))
	for name, t := range s.tasks {
		ti := TaskInfo{
			Name:      name,
			Schedule:  t.schedule,
			Runs:      t.runs,
			Failures:  t.failures,
			LastError: t.lastErr,
		}
		if t.runs > 0 {
			ti.LastDuration = t.lastDuration.String()
		}
		if e := s.cron.Entry(t.id); e.Valid() {
			ti.NextRun, ti.PrevRun = e.Next, e.Prev
		}
		info = append(info, ti)
	}
	slices.SortFunc(info, func(a, b TaskInfo) int { return strings.Compare(a.Name, b.Name) })
	return info
}

// IsRunning reports whether schedules are firing.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// cronLogger routes robfig/cron's logging to slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append([]any{logger.Error(err)}, keysAndValues...)...)
}
