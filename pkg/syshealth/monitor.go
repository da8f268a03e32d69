package syshealth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/Pritam6569/portfr/pkg/logger"
)

type sysHealthMonitor struct {
	cfg     *Config
	log     *slog.Logger
	gauges  *Gauges
	metrics *HealthMetrics
	mu      sync.RWMutex

	lastCPUTimes   *cpu.TimesStat
	consecFailures int

	// Collection functions for mocking
	getLoadAvg  func(context.Context) (*load.AvgStat, error)
	getCPUTimes func(context.Context, bool) ([]cpu.TimesStat, error)
	getMemStats func(context.Context) (*mem.VirtualMemoryStat, error)
	getCPUCores func() int
	getHostInfo func(context.Context) (*host.InfoStat, error)
	getProcess  func(context.Context, int32) (*process.Process, error)
}

// NewMonitor creates a new system health monitor.
// cfg: Configuration for the monitor (uses DefaultConfig if nil).
// reg: Registerer the health gauges are published to.
// log: Logger for health events.
func NewMonitor(cfg *Config, reg prometheus.Registerer, log *slog.Logger) Monitor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &sysHealthMonitor{
		cfg:    cfg,
		log:    log.With(logger.Scope("syshealth.monitor")),
		gauges: NewGauges(reg),
		metrics: &HealthMetrics{
			Score: 100,
			Zone:  HealthZoneSafe,
		},
		getLoadAvg:  load.AvgWithContext,
		getCPUTimes: cpu.TimesWithContext,
		getMemStats: mem.VirtualMemoryWithContext,
		getCPUCores: runtime.NumCPU,
		getHostInfo: host.InfoWithContext,
		getProcess:  process.NewProcessWithContext,
	}
}

func (m *sysHealthMonitor) GetHealth() *HealthMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := *m.metrics
	if time.Since(snapshot.Timestamp) > m.cfg.StalenessThreshold {
		snapshot.Stale = true
	}
	return &snapshot
}

func (m *sysHealthMonitor) Collect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.CollectionTimeout)
	defer cancel()

	var (
		errs       []error
		loadAvg    float64
		ioWait     float64
		memPercent float64
		haveLoad   bool
		haveIOWait bool
		haveMem    bool
	)

	if l, err := m.getLoadAvg(ctx); err == nil {
		loadAvg, haveLoad = l.Load1, true
	} else {
		errs = append(errs, fmt.Errorf("load average: %w", err))
	}

	if times, err := m.getCPUTimes(ctx, false); err != nil {
		errs = append(errs, fmt.Errorf("cpu times: %w", err))
	} else if len(times) == 0 {
		errs = append(errs, errors.New("cpu times: no data returned"))
	} else {
		t := times[0]
		m.mu.RLock()
		last := m.lastCPUTimes
		m.mu.RUnlock()
		if last != nil {
			deltaTotal := t.Total() - last.Total()
			if deltaTotal > 0 {
				ioWait = (t.Iowait - last.Iowait) / deltaTotal * 100.0
			}
		}
		haveIOWait = true
		m.mu.Lock()
		m.lastCPUTimes = &t
		m.mu.Unlock()
	}

	if v, err := m.getMemStats(ctx); err == nil {
		memPercent, haveMem = v.UsedPercent, true
	} else {
		errs = append(errs, fmt.Errorf("memory: %w", err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(errs) > 0 {
		m.consecFailures++
		for _, err := range errs {
			m.log.Error("failed to collect system metric", logger.Error(err))
		}
		if m.consecFailures >= 3 {
			m.log.Error("persistent metric collection failures", slog.Int("failures", m.consecFailures))
		}
	} else {
		m.consecFailures = 0
	}

	// Failed components keep their last known value.
	if !haveLoad {
		loadAvg = m.metrics.CPULoadAvg
	}
	if !haveIOWait {
		ioWait = m.metrics.IOWaitPercent
	}
	if !haveMem {
		memPercent = m.metrics.MemoryPercent
	}

	cpuCores := float64(m.getCPUCores())
	if cpuCores == 0 {
		cpuCores = 1
	}

	ioScore := calculateComponentScore(ioWait, m.cfg.IOWaitWarningPercent, m.cfg.IOWaitCriticalPercent)
	cpuScore := calculateComponentScore(loadAvg/cpuCores*100.0, m.cfg.CPULoadWarningFactor*100.0, m.cfg.CPULoadCriticalFactor*100.0)
	memScore := calculateComponentScore(memPercent, m.cfg.MemoryWarningPercent, m.cfg.MemoryCriticalPercent)

	penalty := (ioScore * 0.40) + (cpuScore * 0.40) + (memScore * 0.20)
	finalScore := 100 - int(penalty)
	if finalScore < 0 {
		finalScore = 0
	}
	newZone := zoneFor(finalScore)

	if newZone != m.metrics.Zone {
		m.log.Warn("system health zone transition",
			slog.String("old_zone", string(m.metrics.Zone)),
			slog.String("new_zone", string(newZone)),
			slog.Int("score", finalScore))
	}

	m.metrics.Score = finalScore
	m.metrics.Zone = newZone
	m.metrics.CPULoadAvg = loadAvg
	m.metrics.IOWaitPercent = ioWait
	m.metrics.MemoryPercent = memPercent
	m.metrics.Timestamp = time.Now()
	m.metrics.Stale = false

	m.gauges.HealthScore.Reset()
	m.gauges.HealthScore.WithLabelValues(string(newZone)).Set(float64(finalScore))
	m.gauges.IOWaitPercent.Set(ioWait)
	m.gauges.CPULoadAvg.WithLabelValues("1m").Set(loadAvg)
	m.gauges.MemoryUtilization.Set(memPercent)

	m.log.Debug("system health metrics collected",
		slog.Int("score", finalScore),
		slog.String("zone", string(newZone)),
		slog.Float64("io_wait", ioWait),
		slog.Float64("cpu_load", loadAvg),
		slog.Float64("mem", memPercent))

	return errors.Join(errs...)
}

func (m *sysHealthMonitor) Process(ctx context.Context) (*ProcessInfo, error) {
	pid := int32(os.Getpid())
	p, err := m.getProcess(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("inspect process %d: %w", pid, err)
	}

	info := &ProcessInfo{PID: pid}
	if mi, err := p.MemoryInfoWithContext(ctx); err == nil {
		info.RSSBytes = mi.RSS
		info.VMSBytes = mi.VMS
	}
	if n, err := p.NumThreadsWithContext(ctx); err == nil {
		info.NumThreads = n
	}
	// Not every platform exposes descriptor counts.
	if n, err := p.NumFDsWithContext(ctx); err == nil {
		info.NumFDs = n
	}
	if pct, err := p.CPUPercentWithContext(ctx); err == nil {
		info.CPUPercent = pct
	}
	if ms, err := p.CreateTimeWithContext(ctx); err == nil {
		info.StartedAt = time.UnixMilli(ms).UTC()
	}
	return info, nil
}

func (m *sysHealthMonitor) Host(ctx context.Context) (*HostInfo, error) {
	h, err := m.getHostInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("inspect host: %w", err)
	}
	return &HostInfo{
		Hostname:      h.Hostname,
		OS:            h.OS,
		Platform:      h.Platform,
		KernelVersion: h.KernelVersion,
		UptimeSeconds: h.Uptime,
	}, nil
}

func zoneFor(score int) HealthZone {
	switch {
	case score <= 33:
		return HealthZoneCritical
	case score <= 66:
		return HealthZoneWarning
	default:
		return HealthZoneSafe
	}
}

// Helper to calculate 0-100 penalty for a component
func calculateComponentScore(value, warning, critical float64) float64 {
	if value >= critical {
		return 100.0
	}
	if value >= warning {
		return 50.0
	}
	return 0.0
}
