package config

import "github.com/rehabtrack/rehab/internal/apperr"

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

	errDecodeConfig = &apperr.Error{
		Message: "decoding config file failed",
	}

	errInvalidRange = &apperr.Error{
		Message: "%s must be between %v and %v, got %v",
	}

	errInvalidURL = &apperr.Error{
		Message: "%s must be an absolute http(s) URL, got %q",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of debug, info, warn or error, got %q",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period (one of %s)",
	}

	errSinceInFuture = &apperr.Error{
		Message: "the start date %s is in the future",
	}

	errInvalidSeed = &apperr.Error{
		Message: "seed must fit in 32 bits, got %d",
	}
)
