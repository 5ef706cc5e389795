// Package service implements the reservation core: the availability
// engine that computes which tables are free for a slot, and the
// lifecycle manager that owns reservation status transitions and the
// table-status side effects they imply.
package service

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a status update is not adjacent
// in the reservation state machine (pending -> confirmed|cancelled,
// confirmed -> seated|cancelled, seated -> completed|cancelled).
// Handlers should translate this into an HTTP 409 response.
var ErrInvalidTransition = errors.New("invalid status transition")

// ValidationError reports a missing or malformed request field. Handlers
// should translate it into an HTTP 400 response carrying the message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
