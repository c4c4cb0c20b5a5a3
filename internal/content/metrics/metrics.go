// Package metrics provides observability for the content module.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for knowledge-base reads.
type Metrics struct {
	// Reads by operation (list, get, overview) and source (primary, fallback).
	Reads *prometheus.CounterVec

	// Primary store failures that triggered the fallback.
	FallbackHits *prometheus.CounterVec
}

// New creates a Metrics instance with all content module metrics registered.
func New() *Metrics {
	return &Metrics{
		Reads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bizform_content_reads_total",
			Help: "Knowledge-base reads by operation and source",
		}, []string{"operation", "source"}),

		FallbackHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bizform_content_fallback_total",
			Help: "Primary store failures answered from the seeded fallback",
		}, []string{"operation"}),
	}
}

// IncrementRead records one read by operation and source.
func (m *Metrics) IncrementRead(operation, source string) {
	if m != nil {
		m.Reads.WithLabelValues(operation, source).Inc()
	}
}

// IncrementFallback records a primary failure served from the fallback.
func (m *Metrics) IncrementFallback(operation string) {
	if m != nil {
		m.FallbackHits.WithLabelValues(operation).Inc()
	}
}
