package config

import "github.com/trssantos/wellness-tracker-sub005/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownTechnique = &apperr.Error{
		Message: "unknown focus technique: %s",
	}

	errInvalidMinRecordTime = &apperr.Error{
		Message: "minimum record time must be between %v and %v",
	}

	errUnknownProvider = &apperr.Error{
		Message: "unknown AI provider: %s (must be openai or gemini)",
	}

	errInvalidTimeout = &apperr.Error{
		Message: "AI timeout must be between %v and %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "invalid log level: %s (must be debug, info, warn, or error)",
	}

	errInvalidLogSize = &apperr.Error{
		Message: "log max size must be at least 1 megabyte",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid duration %q: %v",
	}

	errInvalidCLITime = &apperr.Error{
		Message: "invalid %s time %q",
	}

	errInvalidDate = &apperr.Error{
		Message: "invalid date %q: expected YYYY-MM-DD",
	}
)
