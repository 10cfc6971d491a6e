package dashboard

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the runner's Prometheus instrumentation.
type Metrics struct {
	// ChecksTotal counts completed checks by principle and verdict level.
	ChecksTotal *prometheus.CounterVec

	// NamespacesChecked is the number of namespaces covered by the last run.
	NamespacesChecked prometheus.Gauge

	// RunDurationSeconds is the wall time of the last run.
	RunDurationSeconds prometheus.Gauge
}

// NewMetrics creates and registers the runner metrics on reg. A nil
// registerer leaves the metrics unregistered, which tests use to avoid
// duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ontodash_checks_total",
			Help: "Completed principle checks by principle and verdict level.",
		}, []string{"principle", "level"}),
		NamespacesChecked: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ontodash_namespaces_checked",
			Help: "Namespaces covered by the last dashboard run.",
		}),
		RunDurationSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ontodash_run_duration_seconds",
			Help: "Wall time of the last dashboard run.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.ChecksTotal, m.NamespacesChecked, m.RunDurationSeconds)
	}
	return m
}
