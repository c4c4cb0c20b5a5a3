package domain

import dErrors "bizform/pkg/domain-errors"

// FormID is a domain value that identifies a Russian legal business form.
// Invariant: the value must be one of the supported forms.
//
// Usage: construct via ParseFormID at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type FormID string

// Supported legal business forms.
const (
	FormNPD FormID = "npd" // self-employment under the professional income tax
	FormIP  FormID = "ip"  // sole proprietor
	FormOOO FormID = "ooo" // limited liability company
)

// validForms is the single source of truth for valid legal forms.
var validForms = map[FormID]bool{
	FormNPD: true,
	FormIP:  true,
	FormOOO: true,
}

// ParseFormID constructs a FormID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseFormID(s string) (FormID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "form cannot be empty")
	}
	f := FormID(s)
	if !f.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid legal form")
	}
	return f, nil
}

// IsValid checks if the form is one of the supported enum values.
func (f FormID) IsValid() bool {
	return validForms[f]
}

// String returns the string representation of the form.
func (f FormID) String() string {
	return string(f)
}

// Title returns the human-readable name of the form.
func (f FormID) Title() string {
	switch f {
	case FormNPD:
		return "Self-employment (NPD)"
	case FormIP:
		return "Sole proprietor (IP)"
	case FormOOO:
		return "Limited liability company (OOO)"
	default:
		return string(f)
	}
}
