package domain

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound is returned when a template name is absent from the
// template set. This is a configuration defect, never retried.
var ErrTemplateNotFound = errors.New("template not found")

// ErrInvalidState is returned when a client-supplied state is not a legal
// input for the requested transition.
var ErrInvalidState = errors.New("invalid conversation state")

// ErrMissingCorePrompt is returned when a state past the initial stage
// arrives without its core prompt.
var ErrMissingCorePrompt = errors.New("core prompt is missing from state")

// MissingFieldError reports a template placeholder with no matching field.
type MissingFieldError struct {
	Template string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("template %q references field %q which was not provided", e.Template, e.Field)
}

// AnswerCountMismatchError reports answers that do not line up one-to-one
// with the clarifying questions held in the state.
type AnswerCountMismatchError struct {
	Want int
	Got  int
}

func (e *AnswerCountMismatchError) Error() string {
	return fmt.Sprintf("expected %d answers, got %d", e.Want, e.Got)
}

// IsClientFault reports whether err is a contract violation by the caller
// (stale state, mismatched answers) rather than a server or model fault.
// Transports use this to pick between a rejected-input status and a 5xx.
func IsClientFault(err error) bool {
	var mismatch *AnswerCountMismatchError
	return errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrMissingCorePrompt) ||
		errors.As(err, &mismatch)
}
