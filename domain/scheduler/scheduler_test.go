package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(slog.Default())

	if s.IsRunning() {
		t.Fatal("New scheduler should not be running")
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if !s.IsRunning() {
		t.Error("Scheduler should be running after Start")
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if s.IsRunning() {
		t.Error("Scheduler should not be running after Stop")
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func TestScheduler_AddAndRemoveTasks(t *testing.T) {
	s := NewScheduler(slog.Default())
	noop := func(ctx context.Context) error { return nil }

	if err := s.AddIntervalTask("b_task", time.Minute, noop); err != nil {
		t.Fatalf("AddIntervalTask: %v", err)
	}
	if err := s.AddCronTask("a_task", "0 */5 * * * *", noop); err != nil {
		t.Fatalf("AddCronTask: %v", err)
	}
	// Re-adding replaces instead of duplicating.
	if err := s.AddIntervalTask("b_task", 2*time.Minute, noop); err != nil {
		t.Fatalf("AddIntervalTask replace: %v", err)
	}

	tasks := s.ListTasks()
	if len(tasks) != 2 || tasks[0] != "a_task" || tasks[1] != "b_task" {
		t.Fatalf("ListTasks = %v, want [a_task b_task]", tasks)
	}

	s.RemoveTask("a_task")
	s.RemoveTask("missing")
	if tasks := s.ListTasks(); len(tasks) != 1 || tasks[0] != "b_task" {
		t.Fatalf("ListTasks after remove = %v", tasks)
	}
}

func TestScheduler_InvalidCronExpression(t *testing.T) {
	s := NewScheduler(slog.Default())
	err := s.AddCronTask("bad", "not a schedule", func(ctx context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
	if len(s.ListTasks()) != 0 {
		t.Error("invalid task should not be registered")
	}
}

func TestScheduler_GetTaskInfo(t *testing.T) {
	s := NewScheduler(slog.Default())
	if err := s.AddIntervalTask("sample", time.Hour, func(ctx context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer s.Stop(context.Background())

	deadline := time.Now().Add(time.Second)
	var info []TaskInfo
	for time.Now().Before(deadline) {
		info = s.GetTaskInfo()
		if len(info) == 1 && !info[0].NextRun.IsZero() {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if len(info) != 1 || info[0].Name != "sample" {
		t.Fatalf("GetTaskInfo = %+v", info)
	}
	if info[0].NextRun.Before(time.Now()) {
		t.Errorf("NextRun %v should be in the future", info[0].NextRun)
	}
}

func TestScheduler_RunsCronTask(t *testing.T) {
	s := NewScheduler(slog.Default())
	var runs atomic.Int32
	if err := s.AddCronTask("every_second", "* * * * * *", func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("task context should carry a deadline")
		}
		runs.Add(1)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer s.Stop(context.Background())

	deadline := time.Now().Add(3 * time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if runs.Load() == 0 {
		t.Fatal("cron task never ran")
	}
}

func TestScheduler_RunNowRecordsResult(t *testing.T) {
	s := NewScheduler(slog.Default())
	fail := true
	if err := s.AddIntervalTask("flaky", time.Hour, func(ctx context.Context) error {
		if fail {
			return errors.New("boom")
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	if err := s.RunNow("flaky"); err == nil || err.Error() != "boom" {
		t.Fatalf("RunNow err = %v, want boom", err)
	}
	info := s.GetTaskInfo()
	if len(info) != 1 || info[0].Runs != 1 || info[0].Failures != 1 || info[0].LastError != "boom" {
		t.Fatalf("after failure: %+v", info)
	}

	fail = false
	if err := s.RunNow("flaky"); err != nil {
		t.Fatalf("RunNow: %v", err)
	}
	info = s.GetTaskInfo()
	if info[0].Runs != 2 || info[0].Failures != 1 || info[0].LastError != "" {
		t.Fatalf("after success: %+v", info)
	}
	if info[0].Schedule != "@every 1h0m0s" {
		t.Errorf("Schedule = %q", info[0].Schedule)
	}
}

func TestScheduler_RunNowUnknownTask(t *testing.T) {
	s := NewScheduler(slog.Default())
	if err := s.RunNow("missing"); err == nil {
		t.Fatal("expected error for unknown task")
	}
}

func TestScheduler_RejectsNonPositiveInterval(t *testing.T) {
	s := NewScheduler(slog.Default())
	if err := s.AddIntervalTask("zero", 0, func(ctx context.Context) error { return nil }); err == nil {
		t.Fatal("expected error for zero interval")
	}
}

func TestScheduler_RecoversPanickingTask(t *testing.T) {
	s := NewScheduler(slog.Default())
	var runs atomic.Int32
	if err := s.AddCronTask("panics", "* * * * * *", func(ctx context.Context) error {
		runs.Add(1)
		panic("kaboom")
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer s.Stop(context.Background())

	deadline := time.Now().Add(3 * time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if runs.Load() == 0 {
		t.Fatal("task never ran")
	}
	if !s.IsRunning() {
		t.Error("scheduler should survive a panicking task")
	}
}
