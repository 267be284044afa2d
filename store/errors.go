package store

import "github.com/rehabtrack/rehab/internal/apperr"

var (
	errRehabRunning = &apperr.Error{
		Message: "is rehab already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open the progress database",
	}

	errEncodeLogs = &apperr.Error{
		Message: "unable to encode exercise logs",
	}

	errSaveLogs = &apperr.Error{
		Message: "unable to save exercise logs",
	}
)
