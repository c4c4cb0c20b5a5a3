package wizard

import (
	"context"
	"log/slog"

	"bizform/internal/wizard/metrics"
	id "bizform/pkg/domain"
	dErrors "bizform/pkg/domain-errors"
	"bizform/pkg/requestcontext"
)

// Snapshot is a point-in-time copy of a run, taken under the store lock so
// handlers can render it without racing later mutations.
type Snapshot struct {
	RunID        string
	Mode         Mode
	State        State
	Step         int
	TotalSteps   int
	Question     *Question
	Answers      []Answer
	Scores       map[id.FormID]int
	Eligible     *EligibleResult
	Disqualified *DisqualifiedResult
	Scored       *ScoredResult
}

// Service manages questionnaire runs: it creates them from the static
// configurations and applies answer, back, and reset operations through the
// store's per-run locking.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs a wizard service with its dependencies.
func NewService(store Store, logger *slog.Logger, metrics *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// StartRun creates a run for the given mode and returns its first snapshot.
func (s *Service) StartRun(ctx context.Context, mode Mode) (*Snapshot, error) {
	var cfg *Config
	switch mode {
	case ModeEligibility:
		cfg = EligibilityConfig()
	case ModeScored:
		cfg = ScoredConfig()
	default:
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "unknown wizard mode %q", mode)
	}

	run := NewRun(cfg)
	runID, err := s.store.Create(ctx, run)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "create wizard run")
	}

	s.metrics.IncrementRunStarted(string(mode))
	s.updateActiveRuns()
	s.logger.InfoContext(ctx, "wizard run started",
		"request_id", requestcontext.RequestID(ctx),
		"run_id", runID,
		"mode", mode,
	)
	return snapshot(runID, run), nil
}

// GetRun returns the current snapshot of a run.
func (s *Service) GetRun(ctx context.Context, runID string) (*Snapshot, error) {
	var snap *Snapshot
	err := s.store.With(ctx, runID, func(run *Run) error {
		snap = snapshot(runID, run)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// SubmitAnswer applies the option chosen for the question at stepIndex.
func (s *Service) SubmitAnswer(ctx context.Context, runID string, stepIndex int, optionID string) (*Snapshot, error) {
	var snap *Snapshot
	err := s.store.With(ctx, runID, func(run *Run) error {
		if err := run.SubmitAnswer(stepIndex, optionID); err != nil {
			return err
		}
		snap = snapshot(runID, run)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementAnswer(string(snap.Mode))
	if snap.State.Terminal() {
		outcome := s.outcomeLabel(snap)
		s.metrics.IncrementRunFinished(string(snap.Mode), outcome)
		s.logger.InfoContext(ctx, "wizard run finished",
			"request_id", requestcontext.RequestID(ctx),
			"run_id", runID,
			"mode", snap.Mode,
			"outcome", outcome,
		)
	}
	return snap, nil
}

// GoBack withdraws the most recent answer.
func (s *Service) GoBack(ctx context.Context, runID string) (*Snapshot, error) {
	var snap *Snapshot
	err := s.store.With(ctx, runID, func(run *Run) error {
		if err := run.GoBack(); err != nil {
			return err
		}
		snap = snapshot(runID, run)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// ResetRun returns a run to its first question.
func (s *Service) ResetRun(ctx context.Context, runID string) (*Snapshot, error) {
	var snap *Snapshot
	err := s.store.With(ctx, runID, func(run *Run) error {
		run.Reset()
		snap = snapshot(runID, run)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "wizard run reset",
		"request_id", requestcontext.RequestID(ctx),
		"run_id", runID,
	)
	return snap, nil
}

func (s *Service) outcomeLabel(snap *Snapshot) string {
	switch {
	case snap.Disqualified != nil:
		return "disqualified"
	case snap.Eligible != nil:
		return "eligible"
	case snap.Scored != nil:
		return string(snap.Scored.Form)
	default:
		return "unknown"
	}
}

func (s *Service) updateActiveRuns() {
	if counter, ok := s.store.(interface{ Len() int }); ok {
		s.metrics.SetActiveRuns(counter.Len())
	}
}

// snapshot copies the parts of a run that handlers render. Must be called
// while the store lock is held.
func snapshot(runID string, run *Run) *Snapshot {
	snap := &Snapshot{
		RunID:        runID,
		Mode:         run.Mode(),
		State:        run.State(),
		Step:         run.Step(),
		TotalSteps:   run.TotalSteps(),
		Answers:      append([]Answer(nil), run.Answers()...),
		Eligible:     run.Eligible(),
		Disqualified: run.Disqualified(),
		Scored:       run.Scored(),
	}
	if q, ok := run.CurrentQuestion(); ok {
		snap.Question = &q
	}
	if run.Mode() == ModeScored {
		snap.Scores = make(map[id.FormID]int, len(run.Scores()))
		for form, score := range run.Scores() {
			snap.Scores[form] = score
		}
	}
	return snap
}
