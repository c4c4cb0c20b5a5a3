// Package wizard drives the sequential business-form questionnaires. A Run is
// a per-caller state machine over a fixed question list; depending on the
// configuration it either checks eligibility for one form (short-circuiting
// on the first disqualifying answer) or scores all three forms and ranks them
// once every question is answered.
package wizard

import (
	id "bizform/pkg/domain"
)

// Mode selects how a configuration treats disqualifying options.
type Mode string

const (
	// ModeEligibility stops the run on the first disqualifying option.
	ModeEligibility Mode = "eligibility"
	// ModeScored never stops early; disqualifying options instead apply the
	// ScoreDisqualify delta so the form drops out of contention by score.
	ModeScored Mode = "scored"
)

// Score sentinels. A disqualifying answer pushes a form's score far below the
// viability threshold, so the ranking in deriveScoredResult never selects it.
// Keep the delta comfortably below the threshold.
const (
	// ScoreDisqualify is the delta applied by options that rule a form out.
	ScoreDisqualify = -100
	// NPDViabilityThreshold is the score below which NPD leaves contention.
	NPDViabilityThreshold = -50
)

// Effect is the tagged behavior of an option. Exactly one variant applies:
// Neutral options record the answer only, ScoreDelta options shift the running
// scores, Disqualifying options end an eligibility run.
type Effect interface {
	isEffect()
}

// Neutral marks an option with no scoring consequence.
type Neutral struct{}

func (Neutral) isEffect() {}

// ScoreDelta shifts the running score of each listed form.
type ScoreDelta map[id.FormID]int

func (ScoreDelta) isEffect() {}

// Disqualifying marks an option that rules the subject form out.
type Disqualifying struct {
	Reason      string
	Alternative id.FormID
}

func (Disqualifying) isEffect() {}

// Option is one selectable answer to a Question. Static, defined at
// configuration time.
type Option struct {
	ID          string
	Label       string
	Explanation string
	Effect      Effect
}

// Question is one step of a questionnaire. Static.
type Question struct {
	ID      string
	Prompt  string
	Options []Option
}

// Option returns the option with the given ID, or false.
func (q Question) Option(optionID string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == optionID {
			return opt, true
		}
	}
	return Option{}, false
}

// Config is a complete questionnaire definition, fixed at construction.
type Config struct {
	Mode      Mode
	Subject   id.FormID // the form checked in eligibility mode
	Questions []Question
}

// Answer records one response. The full answer sequence belongs to a single
// run and is discarded on reset.
type Answer struct {
	Step       int
	QuestionID string
	OptionID   string
	Label      string
}

// ScoreState tracks the running score and accumulated disqualification
// reasons per form for one scored run. Never shared across runs.
type ScoreState struct {
	Scores  map[id.FormID]int
	Reasons map[id.FormID][]string
}

func newScoreState() *ScoreState {
	return &ScoreState{
		Scores:  map[id.FormID]int{id.FormNPD: 0, id.FormIP: 0, id.FormOOO: 0},
		Reasons: map[id.FormID][]string{},
	}
}

func (s *ScoreState) apply(delta ScoreDelta) {
	for form, d := range delta {
		s.Scores[form] += d
	}
}

func (s *ScoreState) reverse(delta ScoreDelta) {
	for form, d := range delta {
		s.Scores[form] -= d
	}
}

func (s *ScoreState) penalize(form id.FormID, reason string) {
	s.Scores[form] += ScoreDisqualify
	s.Reasons[form] = append(s.Reasons[form], reason)
}

func (s *ScoreState) unpenalize(form id.FormID) {
	s.Scores[form] -= ScoreDisqualify
	if n := len(s.Reasons[form]); n > 0 {
		s.Reasons[form] = s.Reasons[form][:n-1]
	}
}

// State is the lifecycle phase of a Run.
type State string

const (
	StateNotStarted   State = "not_started"
	StateInProgress   State = "in_progress"
	StateDisqualified State = "disqualified"
	StateResult       State = "result"
)

// Terminal reports whether no further answers are accepted without a reset.
func (s State) Terminal() bool {
	return s == StateDisqualified || s == StateResult
}

// EligibleResult is the positive outcome of an eligibility run.
type EligibleResult struct {
	Form        id.FormID
	Title       string
	Rate        string // "4%", "6%", or "4-6%"
	ClientLabel string
	Details     []string
	NextSteps   []string
}

// DisqualifiedResult is the terminal outcome of an eligibility run that hit a
// disqualifying option.
type DisqualifiedResult struct {
	Form        id.FormID
	Reason      string
	Alternative id.FormID
}

// ScoredResult is the ranked outcome of a scored run.
type ScoredResult struct {
	Form        id.FormID
	Title       string
	Description string
	Reasons     []string
	Scores      map[id.FormID]int
}
