// Package program describes the rehabilitation program: its phases, sessions,
// exercises and the rotating bonus pool drawn from each day
package program

import (
	"math/rand/v2"
	"time"

	"github.com/rehabtrack/rehab/internal/picker"
)

// maxShuffleOffset bounds the random offset added to the clock when the
// bonus draw is reshuffled.
const maxShuffleOffset = 99999

type (
	// Exercise is an immutable catalog entry.
	Exercise struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		// Reps may be a range such as "10-12" or a hold like "30s"
		Reps string `json:"reps"`
		Tip  string `json:"tip"`
		Sets int    `json:"sets"`
	}

	// Session groups the exercises performed together.
	Session struct {
		Name      string     `json:"name"`
		Emoji     string     `json:"emoji"`
		Exercises []Exercise `json:"exercises"`
	}

	// Phase is one stage of the program. BonusPool holds the rotating
	// exercises a phase draws from instead of a fixed list.
	Phase struct {
		Name      string     `json:"name"`
		Subtitle  string     `json:"subtitle"`
		Weeks     string     `json:"weeks"`
		Emoji     string     `json:"emoji"`
		Color     string     `json:"color"`
		Sessions  []Session  `json:"sessions"`
		BonusPool []Exercise `json:"bonus_pool,omitempty"`
		ID        int        `json:"id"`
	}

	// Program is the full set of phases along with the daily draw settings.
	Program struct {
		Videos     map[string]Video
		Phases     []Phase
		BonusPhase int
		BonusQuota int
	}

	// Option customises a Program.
	Option func(*Program)
)

// WithBonus sets the phase that draws from its bonus pool and the number of
// exercises drawn each day. A quota below 1 keeps the default.
func WithBonus(phaseID, quota int) Option {
	return func(p *Program) {
		p.BonusPhase = phaseID

		if quota > 0 {
			p.BonusQuota = quota
		}
	}
}

// New returns a program over phases. The default draw is 3 exercises from
// the bonus pool of phase 2.
func New(phases []Phase, videos map[string]Video, opts ...Option) *Program {
	p := &Program{
		Phases:     phases,
		Videos:     videos,
		BonusPhase: 2,
		BonusQuota: 3,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Default returns the built-in rehabilitation program.
func Default(opts ...Option) *Program {
	return New(catalog, videos, opts...)
}

// Phase returns the phase at index i, clamped to the valid range.
func (p *Program) Phase(i int) *Phase {
	if len(p.Phases) == 0 {
		return nil
	}

	i = max(0, min(i, len(p.Phases)-1))

	return &p.Phases[i]
}

// Find looks up an exercise by ID across every session and bonus pool.
func (p *Program) Find(id string) (Exercise, *Phase, bool) {
	for i := range p.Phases {
		ph := &p.Phases[i]
		for _, s := range ph.Sessions {
			for _, e := range s.Exercises {
				if e.ID == id {
					return e, ph, true
				}
			}
		}
	}

	for i := range p.Phases {
		ph := &p.Phases[i]
		for _, e := range ph.BonusPool {
			if e.ID == id {
				return e, ph, true
			}
		}
	}

	return Exercise{}, nil, false
}

// IsBonus reports whether ph shows the daily draw instead of its fixed list.
func (p *Program) IsBonus(ph *Phase) bool {
	return ph != nil && ph.ID == p.BonusPhase && len(ph.BonusPool) > 0
}

// DailySession returns the day's draw from the bonus phase's pool. The draw
// depends on seed only, so it stays fixed until the seed changes.
func (p *Program) DailySession(seed uint32) []Exercise {
	for i := range p.Phases {
		ph := &p.Phases[i]
		if ph.ID == p.BonusPhase {
			return picker.Pick(ph.BonusPool, p.BonusQuota, seed)
		}
	}

	return []Exercise{}
}

// Exercises returns the list shown for the given phase and session.
func (p *Program) Exercises(phaseIdx, sessionIdx int, seed uint32) []Exercise {
	ph := p.Phase(phaseIdx)
	if ph == nil {
		return nil
	}

	if p.IsBonus(ph) {
		return p.DailySession(seed)
	}

	if len(ph.Sessions) == 0 {
		return nil
	}

	sessionIdx = max(0, min(sessionIdx, len(ph.Sessions)-1))

	return ph.Sessions[sessionIdx].Exercises
}

// TotalExercises counts the fixed exercises across all sessions of ph.
func (ph *Phase) TotalExercises() int {
	var n int
	for _, s := range ph.Sessions {
		n += len(s.Exercises)
	}

	return n
}

// InitialSeed derives the process-wide bonus seed from the clock.
func InitialSeed(now time.Time) uint32 {
	return picker.SeedFrom(now.UnixMilli())
}

// ShuffleSeed returns a new bonus seed: the clock in milliseconds plus a
// random offset.
func ShuffleSeed(now time.Time, r *rand.Rand) uint32 {
	return picker.SeedFrom(now.UnixMilli() + r.Int64N(maxShuffleOffset))
}
