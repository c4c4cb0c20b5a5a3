// Package metrics provides observability for the taxes module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for tax calculations.
type Metrics struct {
	// Calculations by operation (npd, usn, simulate) and outcome (ok, invalid).
	Calculations *prometheus.CounterVec

	// Results that crossed a statutory limit, by limit name.
	LimitWarnings *prometheus.CounterVec

	// Calculation latency by operation.
	CalculateLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all taxes module metrics registered.
func New() *Metrics {
	return &Metrics{
		Calculations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bizform_tax_calculations_total",
			Help: "Total tax calculations by operation and outcome",
		}, []string{"operation", "outcome"}),

		LimitWarnings: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bizform_tax_limit_warnings_total",
			Help: "Calculations whose input crossed a statutory limit",
		}, []string{"limit"}),

		CalculateLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bizform_tax_calculate_duration_seconds",
			Help:    "Duration of tax calculations by operation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"operation"}),
	}
}

// IncrementCalculation records one calculation outcome.
func (m *Metrics) IncrementCalculation(operation, outcome string) {
	if m != nil {
		m.Calculations.WithLabelValues(operation, outcome).Inc()
	}
}

// IncrementLimitWarning records a result that crossed a statutory limit.
func (m *Metrics) IncrementLimitWarning(limit string) {
	if m != nil {
		m.LimitWarnings.WithLabelValues(limit).Inc()
	}
}

// ObserveCalculateLatency records the duration of one calculation.
func (m *Metrics) ObserveCalculateLatency(operation string, d time.Duration) {
	if m != nil {
		m.CalculateLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
