package app

import (
	"github.com/trssantos/wellness-tracker-sub005/ai"
	"github.com/trssantos/wellness-tracker-sub005/internal/apperr"
)

var (
	errMissingArg = &apperr.Error{
		Message: "missing argument: %s",
	}

	errUnknownTechnique = &apperr.Error{
		Message: "unknown focus technique %q: run the techniques command to see the options",
	}

	errInvalidEnergy = &apperr.Error{
		Message: "energy level must be between 1 and %d, got %d",
	}

	// The cause is logged rather than shown.
	errGenerateTasks = &apperr.Error{
		Message: ai.UserMessage,
	}
)
