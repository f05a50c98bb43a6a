package form

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound covers both unknown and expired session ids.
	ErrSessionNotFound = errors.New("form session not found or expired")
	// ErrUnknownPage means the requested page slug is not registered.
	ErrUnknownPage = errors.New("unknown form page")
	// ErrNotSubmittable means at least one required field is missing or invalid.
	ErrNotSubmittable = errors.New("form is not complete")
	// ErrSubmitInFlight means another submission for the session is pending.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	// ErrAlreadyCompleted means the session reached the terminal step.
	ErrAlreadyCompleted = errors.New("form session already completed")
	// ErrInvalidStep means the requested transition is not allowed.
	ErrInvalidStep = errors.New("invalid step transition")
)

// SubmitError carries the user-facing message for a failed submission.
type SubmitError struct {
	Code    string
	Message string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSubmitError(msg string) error {
	return &SubmitError{
		Code:    "submitError",
		Message: msg,
	}
}
