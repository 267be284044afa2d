package tracker

import (
	"math"
	"slices"
	"time"

	"github.com/maruel/natural"

	"github.com/rehabtrack/rehab/internal/models"
	"github.com/rehabtrack/rehab/internal/program"
	"github.com/rehabtrack/rehab/store"
)

// EffortLabels names the effort levels 1 to 5.
var EffortLabels = []string{"Easy", "Light", "Mod", "Hard", "Max"}

// EffortLabel returns the name of an effort level, or "" when unset.
func EffortLabel(d int) string {
	if d < 1 || d > len(EffortLabels) {
		return ""
	}

	return EffortLabels[d-1]
}

type (
	// Item is an exercise as shown on the today screen.
	Item struct {
		Video    *program.Video    `json:"video,omitempty"`
		Log      *models.LogRecord `json:"log,omitempty"`
		Exercise program.Exercise  `json:"exercise"`
		Expanded bool              `json:"-"`
	}

	// Progress summarises completion of the current list.
	Progress struct {
		Done    int `json:"done"`
		Total   int `json:"total"`
		Percent int `json:"percent"`
	}

	// TodayView is the projection rendered on the today screen.
	TodayView struct {
		Phase    *program.Phase  `json:"-"`
		Date     string          `json:"date"`
		Session  program.Session `json:"-"`
		Items    []Item          `json:"items"`
		Progress Progress        `json:"progress"`
		PoolSize int             `json:"pool_size,omitempty"`
		Seed     uint32          `json:"seed,omitempty"`
		Bonus    bool            `json:"bonus"`
	}
)

// Checked reports whether the item has a record for the day.
func (i Item) Checked() bool {
	return i.Log != nil
}

// Complete reports whether every exercise of a non-empty list is checked.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Done == p.Total
}

// Today projects the state onto the exercises of the selected phase and
// session for the day of now.
func Today(
	prog *program.Program,
	s State,
	logs store.LogStore,
	now time.Time,
) TodayView {
	ph := prog.Phase(s.Phase)
	if ph == nil {
		return TodayView{Date: models.DateKey(now)}
	}

	v := TodayView{
		Phase: ph,
		Date:  models.DateKey(now),
		Bonus: prog.IsBonus(ph),
	}

	if len(ph.Sessions) > 0 {
		v.Session = ph.Sessions[max(0, min(s.Session, len(ph.Sessions)-1))]
	}

	if v.Bonus {
		v.PoolSize = len(ph.BonusPool)
		v.Seed = s.BonusSeed
	}

	exercises := prog.Exercises(s.Phase, s.Session, s.BonusSeed)

	v.Items = make([]Item, len(exercises))

	for i, ex := range exercises {
		item := Item{
			Exercise: ex,
			Expanded: s.Expanded == ex.ID,
		}

		if rec, ok := logs.Get(models.LogKey(now, ex.ID)); ok {
			item.Log = &rec
			v.Progress.Done++
		}

		if vid, ok := prog.Video(ex.ID); ok {
			item.Video = &vid
		}

		v.Items[i] = item
	}

	v.Progress.Total = len(exercises)

	if v.Progress.Total > 0 {
		v.Progress.Percent = int(math.Round(
			float64(v.Progress.Done) / float64(v.Progress.Total) * 100,
		))
	}

	return v
}

// PhaseSummary is a row of the phases overview.
type PhaseSummary struct {
	Phase    *program.Phase `json:"phase"`
	Total    int            `json:"total"`
	Sessions int            `json:"sessions"`
	Current  bool           `json:"current"`
}

// Phases projects the program onto the phases overview.
func Phases(prog *program.Program, s State) []PhaseSummary {
	out := make([]PhaseSummary, len(prog.Phases))

	for i := range prog.Phases {
		ph := &prog.Phases[i]

		out[i] = PhaseSummary{
			Phase:    ph,
			Total:    ph.TotalExercises(),
			Sessions: len(ph.Sessions),
			Current:  i == s.Phase,
		}
	}

	return out
}

// ExerciseIDs returns every exercise ID of the program in natural order.
func ExerciseIDs(prog *program.Program) []string {
	var ids []string

	for _, ph := range prog.Phases {
		for _, s := range ph.Sessions {
			for _, e := range s.Exercises {
				ids = append(ids, e.ID)
			}
		}

		for _, e := range ph.BonusPool {
			ids = append(ids, e.ID)
		}
	}

	slices.SortFunc(ids, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	return ids
}
