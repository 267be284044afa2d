package tracker

import "github.com/rehabtrack/rehab/internal/apperr"

var (
	errPainRange = &apperr.Error{
		Message: "pain level %d is out of range (0-%d)",
	}

	errDifficultyRange = &apperr.Error{
		Message: "effort level %d is out of range (0-%d)",
	}

	// ErrUnknownExercise is returned for an exercise ID missing from the
	// program.
	ErrUnknownExercise = &apperr.Error{
		Message: "unknown exercise: %s",
	}
)
