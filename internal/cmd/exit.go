package cmd

import (
	"errors"
	"fmt"

	"github.com/renato0307/cereja/internal/domain"
	"github.com/renato0307/cereja/internal/engine"
	"github.com/renato0307/cereja/internal/services"
)

// Exit codes form a stable contract for scripts driving cereja
const (
	ExitOK             = 0
	ExitGeneral        = 1
	ExitConflict       = 2
	ExitPartial        = 3
	ExitNoOperation    = 4
	ExitWrongPhase     = 5
	ExitNothingMatched = 6
	ExitLockHeld       = 7
)

// ExitError carries a specific exit code out of a command. A nil Err means
// the command already reported everything and just needs the code.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap exposes the underlying error to errors.Is/As
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Silent reports whether main should suppress the error message
func (e *ExitError) Silent() bool {
	return e.Err == nil
}

// ExitCode maps an error to the exit code contract. Unrecognized errors are
// general failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, domain.ErrNoOperation):
		return ExitNoOperation
	case errors.Is(err, domain.ErrWrongPhase), errors.Is(err, domain.ErrOperationTerminal):
		return ExitWrongPhase
	case errors.Is(err, domain.ErrNothingMatched):
		return ExitNothingMatched
	case errors.Is(err, domain.ErrLockHeld):
		return ExitLockHeld
	default:
		return ExitGeneral
	}
}

// outcomeExit converts a successful run's outcome into its exit status:
// conflicts want resolution, failed or skipped items mark partial success.
func outcomeExit(outcome *services.Outcome) error {
	if outcome.Result == engine.OutcomeConflict {
		return &ExitError{Code: ExitConflict}
	}
	progress := outcome.Snapshot.Progress
	if progress.Failed > 0 || progress.Skipped > 0 {
		return &ExitError{Code: ExitPartial}
	}
	return nil
}
