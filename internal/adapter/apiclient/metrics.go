package apiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts and times marketplace API requests.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the API client collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emerald_console",
			Subsystem: "marketplace_api",
			Name:      "requests_total",
			Help:      "Marketplace API requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "emerald_console",
			Subsystem: "marketplace_api",
			Name:      "request_duration_seconds",
			Help:      "Marketplace API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// observe is nil-safe so a Client works without metrics.
func (m *Metrics) observe(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
