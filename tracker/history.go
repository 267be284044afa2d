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
	// Day is a cell of the calendar strip.
	Day struct {
		Date    time.Time `json:"-"`
		Key     string    `json:"date"`
		Count   int       `json:"count"`
		IsToday bool      `json:"today"`
	}

	// HistoryEntry is a past record resolved against the program.
	HistoryEntry struct {
		Phase    *program.Phase   `json:"-"`
		Date     string           `json:"date"`
		Exercise program.Exercise `json:"exercise"`
		Record   models.LogRecord `json:"record"`
	}

	// HistoryView is the projection rendered on the history screen.
	HistoryView struct {
		Days   []Day          `json:"days"`
		Recent []HistoryEntry `json:"recent"`
	}
)

// History builds the calendar strip of the last days days ending on the day
// of now and the limit most recently saved records. Records whose exercise is
// no longer part of the program are left out of the recent list.
func History(
	prog *program.Program,
	logs store.LogStore,
	now time.Time,
	days, limit int,
) HistoryView {
	all := logs.All()

	counts := make(map[string]int)

	for _, kr := range all {
		if date, _, ok := models.SplitKey(kr.Key); ok {
			counts[date]++
		}
	}

	today := models.DateKey(now)

	v := HistoryView{
		Days: make([]Day, 0, max(days, 0)),
	}

	for i := days - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		k := models.DateKey(d)

		v.Days = append(v.Days, Day{
			Date:    d,
			Key:     k,
			Count:   counts[k],
			IsToday: k == today,
		})
	}

	slices.SortStableFunc(all, func(a, b models.KeyedRecord) int {
		switch {
		case a.Record.TS > b.Record.TS:
			return -1
		case a.Record.TS < b.Record.TS:
			return 1
		case natural.Less(a.Key, b.Key):
			return -1
		case natural.Less(b.Key, a.Key):
			return 1
		default:
			return 0
		}
	})

	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}

	for _, kr := range all {
		date, id, ok := models.SplitKey(kr.Key)
		if !ok {
			continue
		}

		ex, ph, found := prog.Find(id)
		if !found {
			continue
		}

		v.Recent = append(v.Recent, HistoryEntry{
			Phase:    ph,
			Date:     date,
			Exercise: ex,
			Record:   kr.Record,
		})
	}

	return v
}
