package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errUnknown = &Error{Message: "unknown exercise: %s"}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errUnknown.Fmt("p1-bridge")

	assert.Equal(t, "unknown exercise: p1-bridge", err.Error())
	assert.ErrorIs(t, err, errUnknown)
	assert.ErrorIs(t, fmt.Errorf("check: %w", err), errUnknown)
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	errSave := &Error{Message: "saving log"}

	err := errSave.Wrap(cause)

	assert.Equal(t, "saving log: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errSave)
	assert.NotErrorIs(t, err, errUnknown)
}
