package model

import "errors"

var (
	// ErrNotFound is returned when no record exists for the requested id.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a create or update would give two
	// records the same normalized email.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrStoreFailed is returned when the record write failed after the
	// email slot was already reserved. The reservation is rolled back
	// before the error is reported.
	ErrStoreFailed = errors.New("could not add user")
)

// ValidationError reports the first field check a candidate user failed.
// Reason is used verbatim as the client-visible message.
type ValidationError struct {
	Reason string
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return "invalid user data: " + e.Reason
}
