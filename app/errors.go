package app

import "github.com/rehabtrack/rehab/internal/apperr"

var (
	errInitPaths = &apperr.Error{
		Message: "unable to locate the rehab data directories",
	}

	errMissingID = &apperr.Error{
		Message: "please provide an exercise ID (see 'rehab phases --ids')",
	}

	errUnknownPhase = &apperr.Error{
		Message: "phase %d does not exist (the programme has %d phases)",
	}

	errUnknownSession = &apperr.Error{
		Message: "session %d does not exist in %s (it has %d sessions)",
	}

	errEncodeJSON = &apperr.Error{
		Message: "unable to encode output as JSON",
	}

	errOpenEditor = &apperr.Error{
		Message: "unable to open the config file with %q",
	}
)
