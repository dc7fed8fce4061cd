package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCorruptRecord     = errors.New("operation record is corrupt")
	ErrLockHeld          = errors.New("another process holds the operation lock")
	ErrNoOperation       = errors.New("no operation in progress")
	ErrNothingMatched    = errors.New("no pull requests matched the selection")
	ErrOperationActive   = errors.New("an operation is still in progress")
	ErrOperationTerminal = errors.New("operation already finished")
	ErrUnsupportedSchema = errors.New("unsupported record schema version")
	ErrWrongPhase        = errors.New("operation is not in the required phase")
)

// ValidationError reports a record field that failed validation. It unwraps
// to ErrCorruptRecord so callers can treat all validation failures alike.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrCorruptRecord
}

// PhaseError reports a command or transition attempted in the wrong phase
type PhaseError struct {
	Actual    Phase
	Attempted Phase
}

func (e *PhaseError) Error() string {
	if e.Attempted != "" {
		return fmt.Sprintf("cannot move from %s to %s", e.Actual, e.Attempted)
	}
	return fmt.Sprintf("not allowed while %s", e.Actual)
}

func (e *PhaseError) Unwrap() error {
	return ErrWrongPhase
}
