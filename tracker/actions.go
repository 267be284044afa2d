package tracker

import (
	"strings"
	"time"

	"github.com/rehabtrack/rehab/internal/models"
	"github.com/rehabtrack/rehab/store"
)

const (
	MaxPain       = 10
	MaxDifficulty = 5
)

// Entry is the detail captured by the log form.
type Entry struct {
	Sets       string `json:"sets"`
	Reps       string `json:"reps"`
	Notes      string `json:"notes"`
	Pain       int    `json:"pain"`
	Difficulty int    `json:"difficulty"`
}

// Validate checks the pain and effort ranges.
func (e Entry) Validate() error {
	if e.Pain < 0 || e.Pain > MaxPain {
		return errPainRange.Fmt(e.Pain, MaxPain)
	}

	if e.Difficulty < 0 || e.Difficulty > MaxDifficulty {
		return errDifficultyRange.Fmt(e.Difficulty, MaxDifficulty)
	}

	return nil
}

// ToggleCheck marks the exercise done for the day of now, or clears the day's
// record if one exists. It reports whether the exercise is now checked.
func ToggleCheck(logs store.LogStore, now time.Time, exerciseID string) (bool, error) {
	key := models.LogKey(now, exerciseID)

	if _, ok := logs.Get(key); ok {
		return false, logs.Delete(key)
	}

	err := logs.Set(key, models.LogRecord{
		Done: true,
		TS:   now.UnixMilli(),
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// SaveLog stores a detailed record for the day of now, replacing any record
// already there.
func SaveLog(logs store.LogStore, now time.Time, exerciseID string, e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	return logs.Set(models.LogKey(now, exerciseID), models.LogRecord{
		Done:       true,
		TS:         now.UnixMilli(),
		Sets:       strings.TrimSpace(e.Sets),
		Reps:       strings.TrimSpace(e.Reps),
		Pain:       e.Pain,
		Difficulty: e.Difficulty,
		Notes:      strings.TrimSpace(e.Notes),
	})
}

// Draft returns the form values for the day's existing record, if any.
func Draft(logs store.LogStore, now time.Time, exerciseID string) Entry {
	rec, ok := logs.Get(models.LogKey(now, exerciseID))
	if !ok {
		return Entry{}
	}

	return Entry{
		Sets:       rec.Sets,
		Reps:       rec.Reps,
		Notes:      rec.Notes,
		Pain:       rec.Pain,
		Difficulty: rec.Difficulty,
	}
}
