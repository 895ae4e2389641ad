package booking

import (
	"errors"
	"fmt"
	"strings"

	"glowbook/models"
)

// Error codes classifying every failure the engine can surface.
const (
	CodeValidation = "validation"
	CodeNotFound   = "notFound"
	CodeForbidden  = "forbidden"
	CodeConflict   = "conflict"
	CodeInternal   = "internal"
)

// BookingError is the engine's typed error. Conflict errors carry enough
// detail (ForcedStep, Missing) for the caller to self-correct instead of
// retrying blindly.
type BookingError struct {
	Code    string
	Message string
	// Field names the input at fault for validation errors.
	Field string
	// ForcedStep is the session step the booking was reset to, when a guard
	// recovered the booking into a known-good state.
	ForcedStep models.SessionStep
	// Missing itemizes unmet prerequisites for a rejected transition.
	Missing []string
	cause   error
}

func (e *BookingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %s)", e.Code, e.Message, e.Field)
	}
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: %s (missing: %s)", e.Code, e.Message, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error { return e.cause }

func NewValidationError(field, message string) *BookingError {
	return &BookingError{Code: CodeValidation, Field: field, Message: message}
}

func NewNotFoundError(message string) *BookingError {
	return &BookingError{Code: CodeNotFound, Message: message}
}

func NewForbiddenError(message string) *BookingError {
	return &BookingError{Code: CodeForbidden, Message: message}
}

func NewConflictError(message string) *BookingError {
	return &BookingError{Code: CodeConflict, Message: message}
}

// NewInternalError wraps an unexpected failure. The cause is logged, never
// leaked to the caller.
func NewInternalError(message string, cause error) *BookingError {
	return &BookingError{Code: CodeInternal, Message: message, cause: cause}
}

func (e *BookingError) WithForcedStep(step models.SessionStep) *BookingError {
	e.ForcedStep = step
	return e
}

func (e *BookingError) WithMissing(items ...string) *BookingError {
	e.Missing = append(e.Missing, items...)
	return e
}

// AsBookingError extracts a *BookingError from an error chain.
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
