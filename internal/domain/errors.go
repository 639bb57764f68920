package domain

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every *Error unwraps to exactly one of them.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)

// Reasons reported next to the error message.
const (
	ReasonNotFound   = "The required object was not found."
	ReasonConflict   = "For the requested operation the conditions are not met."
	ReasonIntegrity  = "Integrity constraint has been violated."
	ReasonValidation = "Incorrectly made request."
)

// Error is a domain failure with a human readable reason, message and details.
type Error struct {
	Kind    error
	Reason  string
	Message string
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFoundf returns a NotFound error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Reason: ReasonNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict returns a Conflict error.
func Conflict(reason, message string) *Error {
	return &Error{Kind: ErrConflict, Reason: reason, Message: message}
}

// Validation returns a Validation error with optional detail strings.
func Validation(message string, details ...string) *Error {
	return &Error{Kind: ErrValidation, Reason: ReasonValidation, Message: message, Details: details}
}
