package handler

import (
	"bizform/internal/wizard"
)

// RunResponse is the HTTP representation of a wizard run snapshot. Exactly
// one of question, eligible, disqualified, or recommendation is set,
// depending on the run state.
type RunResponse struct {
	RunID      string `json:"runId"`
	Mode       string `json:"mode"`
	State      string `json:"state"`
	Step       int    `json:"step"`
	TotalSteps int    `json:"totalSteps"`

	Question       *QuestionResponse       `json:"question,omitempty"`
	Answers        []AnswerResponse        `json:"answers"`
	Scores         map[string]int          `json:"scores,omitempty"`
	Eligible       *EligibleResponse       `json:"eligible,omitempty"`
	Disqualified   *DisqualifiedResponse   `json:"disqualified,omitempty"`
	Recommendation *RecommendationResponse `json:"recommendation,omitempty"`
}

// QuestionResponse is one question with its selectable options.
type QuestionResponse struct {
	ID      string           `json:"id"`
	Prompt  string           `json:"prompt"`
	Options []OptionResponse `json:"options"`
}

// OptionResponse is one selectable answer.
type OptionResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Explanation string `json:"explanation,omitempty"`
}

// AnswerResponse is one recorded answer.
type AnswerResponse struct {
	Step       int    `json:"step"`
	QuestionID string `json:"questionId"`
	OptionID   string `json:"optionId"`
	Label      string `json:"label"`
}

// EligibleResponse is the positive eligibility outcome.
type EligibleResponse struct {
	Form        string   `json:"form"`
	Title       string   `json:"title"`
	Rate        string   `json:"rate"`
	ClientLabel string   `json:"clientLabel"`
	Details     []string `json:"details"`
	NextSteps   []string `json:"nextSteps"`
}

// DisqualifiedResponse is the terminal eligibility failure.
type DisqualifiedResponse struct {
	Form        string `json:"form"`
	Reason      string `json:"reason"`
	Alternative string `json:"alternative"`
}

// RecommendationResponse is the ranked scored-mode outcome.
type RecommendationResponse struct {
	Form        string   `json:"form"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Reasons     []string `json:"reasons"`
}

// FromSnapshot converts a run snapshot to its HTTP representation.
func FromSnapshot(snap *wizard.Snapshot) RunResponse {
	resp := RunResponse{
		RunID:      snap.RunID,
		Mode:       string(snap.Mode),
		State:      string(snap.State),
		Step:       snap.Step,
		TotalSteps: snap.TotalSteps,
		Answers:    make([]AnswerResponse, 0, len(snap.Answers)),
	}

	for _, a := range snap.Answers {
		resp.Answers = append(resp.Answers, AnswerResponse{
			Step:       a.Step,
			QuestionID: a.QuestionID,
			OptionID:   a.OptionID,
			Label:      a.Label,
		})
	}

	if snap.Question != nil {
		q := QuestionResponse{
			ID:      snap.Question.ID,
			Prompt:  snap.Question.Prompt,
			Options: make([]OptionResponse, 0, len(snap.Question.Options)),
		}
		for _, opt := range snap.Question.Options {
			q.Options = append(q.Options, OptionResponse{
				ID:          opt.ID,
				Label:       opt.Label,
				Explanation: opt.Explanation,
			})
		}
		resp.Question = &q
	}

	if len(snap.Scores) > 0 {
		resp.Scores = make(map[string]int, len(snap.Scores))
		for form, score := range snap.Scores {
			resp.Scores[form.String()] = score
		}
	}

	if snap.Eligible != nil {
		resp.Eligible = &EligibleResponse{
			Form:        snap.Eligible.Form.String(),
			Title:       snap.Eligible.Title,
			Rate:        snap.Eligible.Rate,
			ClientLabel: snap.Eligible.ClientLabel,
			Details:     snap.Eligible.Details,
			NextSteps:   snap.Eligible.NextSteps,
		}
	}

	if snap.Disqualified != nil {
		resp.Disqualified = &DisqualifiedResponse{
			Form:        snap.Disqualified.Form.String(),
			Reason:      snap.Disqualified.Reason,
			Alternative: snap.Disqualified.Alternative.String(),
		}
	}

	if snap.Scored != nil {
		resp.Recommendation = &RecommendationResponse{
			Form:        snap.Scored.Form.String(),
			Title:       snap.Scored.Title,
			Description: snap.Scored.Description,
			Reasons:     snap.Scored.Reasons,
		}
	}

	return resp
}
