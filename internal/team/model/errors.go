package model

import "errors"

// ErrTeamNotFound indicates that the requested team does not exist.
var ErrTeamNotFound = errors.New("team not found")

// ValidationError describes why a registration payload was rejected.
// The message is user-facing and returned verbatim to the caller.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given user-facing
// message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
