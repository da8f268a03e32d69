package syshealth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gauges publishes the latest sample to Prometheus.
type Gauges struct {
	HealthScore       *prometheus.GaugeVec
	IOWaitPercent     prometheus.Gauge
	CPULoadAvg        *prometheus.GaugeVec
	MemoryUtilization prometheus.Gauge
}

// NewGauges registers the health gauges with reg.
func NewGauges(reg prometheus.Registerer) *Gauges {
	factory := promauto.With(reg)
	return &Gauges{
		HealthScore: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "system_health_score",
			Help: "Overall system health score (0-100)",
		}, []string{"zone"}),
		IOWaitPercent: factory.NewGauge(prometheus.GaugeOpts{
			Name: "system_io_wait_percent",
			Help: "System I/O wait percentage",
		}),
		CPULoadAvg: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "system_cpu_load_avg",
			Help: "System CPU load average",
		}, []string{"period"}),
		MemoryUtilization: factory.NewGauge(prometheus.GaugeOpts{
			Name: "system_memory_utilization_percent",
			Help: "System memory utilization percentage",
		}),
	}
}
