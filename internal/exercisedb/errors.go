package exercisedb

import "github.com/rehabtrack/rehab/internal/apperr"

var (
	errDecode = &apperr.Error{
		Message: "exercise db payload is not a valid exercise list",
	}

	errFetch = &apperr.Error{
		Message: "fetching exercise db failed",
	}

	errNoCache = &apperr.Error{
		Message: "no exercise db cache configured",
	}
)
