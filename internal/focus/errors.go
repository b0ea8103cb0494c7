package focus

import (
	"fmt"

	"github.com/trssantos/wellness-tracker-sub005/internal/apperr"
)

var (
	// ErrInvalidTransition is the sentinel for operations attempted in a state
	// that does not allow them.
	ErrInvalidTransition = &apperr.Error{
		Message: "invalid session state transition",
	}

	errInvalidRating = &apperr.Error{
		Message: "%s rating must be between 1 and 5, got %d",
	}

	errMissingDuration = &apperr.Error{
		Message: "a focus duration is required for the %s technique",
	}

	errUnknownMode = &apperr.Error{
		Message: "unknown timer mode: %s",
	}

	errCommitFailed = &apperr.Error{
		Message: "unable to save focus session",
	}
)

// TransitionError reports an operation that is not valid in the current
// state of the session.
type TransitionError struct {
	Op   string
	From State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a session that is %s", e.Op, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
