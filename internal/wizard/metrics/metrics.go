// Package metrics provides observability for the wizard module.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for questionnaire runs.
type Metrics struct {
	// Runs started, by mode (eligibility, scored).
	RunsStarted *prometheus.CounterVec

	// Runs that reached a terminal state, by mode and outcome
	// (eligible, disqualified, npd, ip, ooo).
	RunsFinished *prometheus.CounterVec

	// Answers accepted, by mode.
	Answers *prometheus.CounterVec

	// Live runs currently held in the store.
	ActiveRuns prometheus.Gauge
}

// New creates a Metrics instance with all wizard module metrics registered.
func New() *Metrics {
	return &Metrics{
		RunsStarted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bizform_wizard_runs_started_total",
			Help: "Questionnaire runs started by mode",
		}, []string{"mode"}),

		RunsFinished: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bizform_wizard_runs_finished_total",
			Help: "Questionnaire runs finished by mode and outcome",
		}, []string{"mode", "outcome"}),

		Answers: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bizform_wizard_answers_total",
			Help: "Answers accepted by mode",
		}, []string{"mode"}),

		ActiveRuns: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bizform_wizard_active_runs",
			Help: "Runs currently held in the run store",
		}),
	}
}

// IncrementRunStarted records a new run.
func (m *Metrics) IncrementRunStarted(mode string) {
	if m != nil {
		m.RunsStarted.WithLabelValues(mode).Inc()
	}
}

// IncrementRunFinished records a run that reached a terminal state.
func (m *Metrics) IncrementRunFinished(mode, outcome string) {
	if m != nil {
		m.RunsFinished.WithLabelValues(mode, outcome).Inc()
	}
}

// IncrementAnswer records an accepted answer.
func (m *Metrics) IncrementAnswer(mode string) {
	if m != nil {
		m.Answers.WithLabelValues(mode).Inc()
	}
}

// SetActiveRuns records the current number of live runs.
func (m *Metrics) SetActiveRuns(n int) {
	if m != nil {
		m.ActiveRuns.Set(float64(n))
	}
}
