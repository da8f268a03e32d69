package syshealth

import (
	"context"
	"time"
)

// HealthZone represents the current health status zone (safe, warning, or critical).
type HealthZone string

const (
	// HealthZoneCritical indicates severe resource pressure (score 0-33).
	HealthZoneCritical HealthZone = "critical"
	// HealthZoneWarning indicates moderate resource pressure (score 34-66).
	HealthZoneWarning HealthZone = "warning"
	// HealthZoneSafe indicates healthy resource utilization (score 67-100).
	HealthZoneSafe HealthZone = "safe"
)

// HealthMetrics holds the current system health metrics and calculated score.
type HealthMetrics struct {
	Score int        `json:"score"`
	Zone  HealthZone `json:"zone"`

	CPULoadAvg    float64 `json:"cpu_load_avg"`
	IOWaitPercent float64 `json:"io_wait_percent"`
	MemoryPercent float64 `json:"memory_percent"`

	Timestamp time.Time `json:"timestamp"`
	// Stale is set when the last sample is older than the staleness threshold.
	Stale bool `json:"stale"`
}

// ProcessInfo describes the serving process itself.
type ProcessInfo struct {
	PID        int32     `json:"pid"`
	RSSBytes   uint64    `json:"rss_bytes"`
	VMSBytes   uint64    `json:"vms_bytes"`
	NumThreads int32     `json:"num_threads"`
	NumFDs     int32     `json:"num_fds,omitempty"`
	CPUPercent float64   `json:"cpu_percent"`
	StartedAt  time.Time `json:"started_at"`
}

// HostInfo describes the machine the process runs on.
type HostInfo struct {
	Hostname      string `json:"hostname"`
	OS            string `json:"os"`
	Platform      string `json:"platform"`
	KernelVersion string `json:"kernel_version"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
}

// Monitor samples host health on demand.
type Monitor interface {
	// Collect takes one sample and updates the published metrics.
	Collect(ctx context.Context) error

	// GetHealth returns the latest collected health metrics.
	GetHealth() *HealthMetrics

	// Process describes the current process.
	Process(ctx context.Context) (*ProcessInfo, error)

	// Host describes the current host.
	Host(ctx context.Context) (*HostInfo, error)
}
