// Package tracker holds the application state and the operations that move
// it forward. State transitions are pure; operations that touch the log
// store take the current time as an argument.
package tracker

import (
	"time"

	"github.com/rehabtrack/rehab/internal/program"
)

// View is a top-level screen.
type View string

const (
	ViewToday   View = "today"
	ViewPhases  View = "phases"
	ViewHistory View = "history"
)

// Views lists the screens in navigation order.
var Views = []View{ViewToday, ViewPhases, ViewHistory}

// State is the navigation and draw state of a running tracker.
type State struct {
	View     View   `json:"view"`
	Expanded string `json:"expanded,omitempty"`
	Phase    int    `json:"phase"`
	Session  int    `json:"session"`
	Cursor   int    `json:"cursor"`
	// BonusSeed drives the daily draw. It is set once when the process starts
	// and changes only on Shuffle.
	BonusSeed uint32 `json:"bonus_seed"`
}

// NewState returns the initial state for a process started at now.
func NewState(now time.Time) State {
	return State{
		View:      ViewToday,
		BonusSeed: program.InitialSeed(now),
	}
}

// SelectPhase switches phase and resets the session and expansion.
func (s State) SelectPhase(i int) State {
	s.Phase = i
	s.Session = 0
	s.Cursor = 0
	s.Expanded = ""

	return s
}

// SelectPhaseAndGo selects a phase and shows its exercises.
func (s State) SelectPhaseAndGo(i int) State {
	s = s.SelectPhase(i)
	s.View = ViewToday

	return s
}

// SelectSession switches session within the current phase.
func (s State) SelectSession(i int) State {
	s.Session = i
	s.Cursor = 0
	s.Expanded = ""

	return s
}

// ToggleExpand opens the detail panel for id, or closes it if already open.
func (s State) ToggleExpand(id string) State {
	if s.Expanded == id {
		s.Expanded = ""
	} else {
		s.Expanded = id
	}

	return s
}

// SetView switches screen.
func (s State) SetView(v View) State {
	s.View = v
	s.Cursor = 0

	return s
}

// NextView cycles through the screens.
func (s State) NextView(delta int) State {
	idx := 0

	for i, v := range Views {
		if v == s.View {
			idx = i
			break
		}
	}

	n := len(Views)

	return s.SetView(Views[((idx+delta)%n+n)%n])
}

// Shuffle replaces the bonus seed and closes any open panel.
func (s State) Shuffle(seed uint32) State {
	s.BonusSeed = seed
	s.Cursor = 0
	s.Expanded = ""

	return s
}

// MoveCursor moves the selection by delta within a list of n items.
func (s State) MoveCursor(delta, n int) State {
	if n <= 0 {
		s.Cursor = 0
		return s
	}

	s.Cursor = max(0, min(s.Cursor+delta, n-1))

	return s
}
