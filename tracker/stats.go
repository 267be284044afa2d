package tracker

import (
	"slices"
	"time"

	"github.com/maruel/natural"

	"github.com/rehabtrack/rehab/internal/models"
	"github.com/rehabtrack/rehab/internal/program"
	"github.com/rehabtrack/rehab/store"
)

type (
	// ExerciseCount is how often an exercise was done in a period.
	ExerciseCount struct {
		Exercise program.Exercise `json:"exercise"`
		Count    int              `json:"count"`
	}

	// PhaseCount is how many records belong to a phase in a period.
	PhaseCount struct {
		Phase *program.Phase `json:"phase"`
		Count int            `json:"count"`
	}

	// Stats summarises the records of a reporting period.
	Stats struct {
		From          string          `json:"from"`
		To            string          `json:"to"`
		ByExercise    []ExerciseCount `json:"by_exercise"`
		ByPhase       []PhaseCount    `json:"by_phase"`
		ByWeekday     [7]int          `json:"by_weekday"`
		Days          int             `json:"days"`
		Completed     int             `json:"completed"`
		ActiveDays    int             `json:"active_days"`
		Streak        int             `json:"streak"`
		LongestStreak int             `json:"longest_streak"`
		PainSamples   int             `json:"pain_samples"`
		AvgPain       float64         `json:"avg_pain"`
	}
)

// Summarize computes statistics over the days days ending on the day of now.
// Streak counts consecutive active days up to today, or up to yesterday if
// nothing has been done yet today.
func Summarize(
	prog *program.Program,
	logs store.LogStore,
	now time.Time,
	days int,
) Stats {
	days = max(days, 1)

	st := Stats{
		From: models.DateKey(now.AddDate(0, 0, -(days - 1))),
		To:   models.DateKey(now),
		Days: days,
	}

	active := make(map[string]bool)
	exercises := make(map[string]int)
	phases := make(map[int]int)

	var painTotal int

	for _, kr := range logs.All() {
		date, id, ok := models.SplitKey(kr.Key)
		if !ok {
			continue
		}

		active[date] = true

		if date < st.From || date > st.To {
			continue
		}

		st.Completed++
		exercises[id]++

		if d, err := time.ParseInLocation(models.DateLayout, date, now.Location()); err == nil {
			st.ByWeekday[d.Weekday()]++
		}

		if _, ph, found := prog.Find(id); found {
			phases[ph.ID]++
		}

		if kr.Record.Pain > 0 {
			painTotal += kr.Record.Pain
			st.PainSamples++
		}
	}

	if st.PainSamples > 0 {
		st.AvgPain = float64(painTotal) / float64(st.PainSamples)
	}

	var run int

	for i := days - 1; i >= 0; i-- {
		if !active[models.DateKey(now.AddDate(0, 0, -i))] {
			run = 0
			continue
		}

		st.ActiveDays++
		run++
		st.LongestStreak = max(st.LongestStreak, run)
	}

	d := now
	if !active[models.DateKey(d)] {
		d = d.AddDate(0, 0, -1)
	}

	for active[models.DateKey(d)] {
		st.Streak++
		d = d.AddDate(0, 0, -1)
	}

	for i := range prog.Phases {
		ph := &prog.Phases[i]
		if n := phases[ph.ID]; n > 0 {
			st.ByPhase = append(st.ByPhase, PhaseCount{Phase: ph, Count: n})
		}
	}

	for id, n := range exercises {
		ex, _, found := prog.Find(id)
		if !found {
			continue
		}

		st.ByExercise = append(st.ByExercise, ExerciseCount{Exercise: ex, Count: n})
	}

	slices.SortFunc(st.ByExercise, func(a, b ExerciseCount) int {
		switch {
		case a.Count != b.Count:
			return b.Count - a.Count
		case natural.Less(a.Exercise.ID, b.Exercise.ID):
			return -1
		case natural.Less(b.Exercise.ID, a.Exercise.ID):
			return 1
		default:
			return 0
		}
	})

	return st
}
