// Package metrics provides observability for the rate limiter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for rate limit decisions.
type Metrics struct {
	// Decisions by outcome (allowed, blocked).
	Decisions *prometheus.CounterVec
}

// New creates a Metrics instance with all rate limiter metrics registered.
func New() *Metrics {
	return &Metrics{
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bizform_ratelimit_decisions_total",
			Help: "Rate limit decisions by outcome",
		}, []string{"outcome"}),
	}
}

// IncrementDecision records one rate limit decision.
func (m *Metrics) IncrementDecision(outcome string) {
	if m != nil {
		m.Decisions.WithLabelValues(outcome).Inc()
	}
}
