package handler

import (
	"bizform/internal/wizard"
	dErrors "bizform/pkg/domain-errors"
)

// StartRequest is the HTTP request body for POST /api/wizard/start.
type StartRequest struct {
	Mode string `json:"mode"`

	// Parsed values (populated by Validate)
	parsedMode wizard.Mode
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *StartRequest) Validate() error {
	switch wizard.Mode(r.Mode) {
	case wizard.ModeEligibility:
		r.parsedMode = wizard.ModeEligibility
	case wizard.ModeScored:
		r.parsedMode = wizard.ModeScored
	case "":
		return dErrors.New(dErrors.CodeValidation, "mode is required")
	default:
		return dErrors.New(dErrors.CodeValidation, "mode must be eligibility or scored")
	}
	return nil
}

// ParsedMode returns the validated wizard mode.
func (r *StartRequest) ParsedMode() wizard.Mode {
	return r.parsedMode
}

// AnswerRequest is the HTTP request body for POST /api/wizard/{runID}/answer.
type AnswerRequest struct {
	StepIndex *int   `json:"stepIndex"`
	OptionID  string `json:"optionId"`
}

// Validate validates the request.
func (r *AnswerRequest) Validate() error {
	if r.StepIndex == nil {
		return dErrors.New(dErrors.CodeValidation, "stepIndex is required")
	}
	if *r.StepIndex < 0 {
		return dErrors.New(dErrors.CodeValidation, "stepIndex must be non-negative")
	}
	if r.OptionID == "" {
		return dErrors.New(dErrors.CodeValidation, "optionId is required")
	}
	return nil
}
