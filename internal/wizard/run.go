package wizard

import (
	id "bizform/pkg/domain"
	dErrors "bizform/pkg/domain-errors"
)

// Contract errors. Submitting answers out of sequence or past a terminal
// state indicates a caller bug, not bad user input, so these fail loudly.
var (
	ErrInvalidStep   = dErrors.New(dErrors.CodeInvariantViolation, "answer does not match the current step")
	ErrUnknownOption = dErrors.New(dErrors.CodeInvalidInput, "unknown option for this question")
	ErrAtStart       = dErrors.New(dErrors.CodeInvariantViolation, "already at the first question")
	ErrRunFinished   = dErrors.New(dErrors.CodeInvariantViolation, "run has finished; reset to start over")
)

// Run is a single in-progress questionnaire. It owns its answers and score
// state exclusively; nothing is shared across runs, so a Run is safe for
// concurrent use only through an external store that serializes access.
type Run struct {
	cfg *Config

	state   State
	step    int
	answers []Answer
	scores  *ScoreState

	eligible     *EligibleResult
	disqualified *DisqualifiedResult
	scored       *ScoredResult
}

// NewRun creates a fresh run over the given configuration.
func NewRun(cfg *Config) *Run {
	return &Run{
		cfg:    cfg,
		state:  StateNotStarted,
		scores: newScoreState(),
	}
}

// State returns the current lifecycle phase.
func (r *Run) State() State { return r.state }

// Step returns the index of the question currently being asked.
func (r *Run) Step() int { return r.step }

// Mode returns the configured mode.
func (r *Run) Mode() Mode { return r.cfg.Mode }

// Answers returns the recorded answers in order.
func (r *Run) Answers() []Answer { return r.answers }

// CurrentQuestion returns the question awaiting an answer, or false once the
// run is terminal.
func (r *Run) CurrentQuestion() (Question, bool) {
	if r.state.Terminal() || r.step >= len(r.cfg.Questions) {
		return Question{}, false
	}
	return r.cfg.Questions[r.step], true
}

// TotalSteps returns the number of configured questions.
func (r *Run) TotalSteps() int { return len(r.cfg.Questions) }

// Eligible returns the eligibility outcome once the run reached StateResult
// in eligibility mode.
func (r *Run) Eligible() *EligibleResult { return r.eligible }

// Disqualified returns the terminal disqualification, if any.
func (r *Run) Disqualified() *DisqualifiedResult { return r.disqualified }

// Scored returns the ranked outcome once the run reached StateResult in
// scored mode.
func (r *Run) Scored() *ScoredResult { return r.scored }

// Scores exposes the running score state for display.
func (r *Run) Scores() map[id.FormID]int { return r.scores.Scores }

// SubmitAnswer records the option chosen for the question at stepIndex.
//
// stepIndex must equal the current step; optionID must belong to the current
// question. In eligibility mode a disqualifying option moves the run straight
// to StateDisqualified. After the last question the run derives its result.
func (r *Run) SubmitAnswer(stepIndex int, optionID string) error {
	if r.state.Terminal() {
		return ErrRunFinished
	}
	if stepIndex != r.step || stepIndex >= len(r.cfg.Questions) {
		return ErrInvalidStep
	}

	question := r.cfg.Questions[r.step]
	option, ok := question.Option(optionID)
	if !ok {
		return ErrUnknownOption
	}

	if r.cfg.Mode == ModeEligibility {
		// A disqualifying answer ends the run without being recorded:
		// recorded answers are the ones that advanced the run, and the
		// outcome already carries the reason.
		if d, ok := option.Effect.(Disqualifying); ok {
			r.state = StateDisqualified
			r.disqualified = &DisqualifiedResult{
				Form:        r.cfg.Subject,
				Reason:      d.Reason,
				Alternative: d.Alternative,
			}
			return nil
		}
	}

	r.answers = append(r.answers, Answer{
		Step:       r.step,
		QuestionID: question.ID,
		OptionID:   option.ID,
		Label:      option.Label,
	})

	if r.cfg.Mode == ModeScored {
		switch effect := option.Effect.(type) {
		case ScoreDelta:
			r.scores.apply(effect)
		case Disqualifying:
			// Scored mode steers around hard stops: the sentinel delta
			// removes the form from contention without ending the run.
			r.scores.penalize(r.cfg.Subject, effect.Reason)
		}
	}

	if r.step == len(r.cfg.Questions)-1 {
		r.finish()
		return nil
	}

	r.state = StateInProgress
	r.step++
	return nil
}

// GoBack removes the most recent answer and returns to the previous question,
// reversing any score effect so a resubmitted step is never scored twice.
func (r *Run) GoBack() error {
	if r.state.Terminal() {
		return ErrRunFinished
	}
	if r.step == 0 || len(r.answers) == 0 {
		return ErrAtStart
	}

	last := r.answers[len(r.answers)-1]
	r.answers = r.answers[:len(r.answers)-1]
	r.step--

	question := r.cfg.Questions[last.Step]
	if option, ok := question.Option(last.OptionID); ok && r.cfg.Mode == ModeScored {
		switch effect := option.Effect.(type) {
		case ScoreDelta:
			r.scores.reverse(effect)
		case Disqualifying:
			r.scores.unpenalize(r.cfg.Subject)
		}
	}

	if r.step == 0 && len(r.answers) == 0 {
		r.state = StateNotStarted
	}
	return nil
}

// Reset returns the run to the beginning, discarding answers, scores, and any
// terminal outcome. This is the only way out of a terminal state.
func (r *Run) Reset() {
	r.state = StateNotStarted
	r.step = 0
	r.answers = nil
	r.scores = newScoreState()
	r.eligible = nil
	r.disqualified = nil
	r.scored = nil
}

func (r *Run) finish() {
	r.state = StateResult
	switch r.cfg.Mode {
	case ModeEligibility:
		r.eligible = deriveEligibleResult(r.cfg, r.answers)
	case ModeScored:
		r.scored = deriveScoredResult(r.scores)
	}
}
