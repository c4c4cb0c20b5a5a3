// Package metrics provides observability for the assistant module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for assistant chats.
type Metrics struct {
	// Chat requests by source (provider, cache, coalesced, fallback).
	Chats *prometheus.CounterVec

	// Provider call latency by outcome (ok, error).
	ProviderLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all assistant module metrics registered.
func New() *Metrics {
	return &Metrics{
		Chats: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bizform_assistant_chats_total",
			Help: "Chat requests by reply source",
		}, []string{"source"}),

		ProviderLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bizform_assistant_provider_duration_seconds",
			Help:    "LLM provider call duration by outcome",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"outcome"}),
	}
}

// IncrementChat records one chat request by reply source.
func (m *Metrics) IncrementChat(source string) {
	if m != nil {
		m.Chats.WithLabelValues(source).Inc()
	}
}

// ObserveProviderLatency records the duration of one provider call.
func (m *Metrics) ObserveProviderLatency(outcome string, d time.Duration) {
	if m != nil {
		m.ProviderLatency.WithLabelValues(outcome).Observe(d.Seconds())
	}
}
