package model

import "errors"

// ErrNotFound is returned by stores when the requested entity does not
// exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports missing or malformed required input.
type ValidationError struct {
	msg string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	msg string
}

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(msg string) *ConflictError {
	return &ConflictError{msg: msg}
}

func (e *ConflictError) Error() string {
	return e.msg
}

// AuthenticationError reports a missing or invalid session. Callers keep
// the message generic so the failed check is not revealed.
type AuthenticationError struct {
	msg string
}

// NewAuthenticationError creates an AuthenticationError with the given
// message.
func NewAuthenticationError(msg string) *AuthenticationError {
	return &AuthenticationError{msg: msg}
}

func (e *AuthenticationError) Error() string {
	return e.msg
}
