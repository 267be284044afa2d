package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehabtrack/rehab/internal/models"
	"github.com/rehabtrack/rehab/internal/program"
	"github.com/rehabtrack/rehab/store"
)

var now = time.Date(2026, 10, 17, 9, 15, 0, 0, time.UTC)

func testProgram() *program.Program {
	pool := []program.Exercise{
		{ID: "a", Name: "Side Plank"},
		{ID: "b", Name: "Clam Shell"},
		{ID: "c", Name: "Wall Sit"},
		{ID: "d", Name: "Superman"},
		{ID: "e", Name: "Pallof Press"},
		{ID: "f", Name: "Goblet Squat"},
		{ID: "g", Name: "Band Pull Apart"},
	}

	phases := []program.Phase{
		{
			ID:   1,
			Name: "Phase 1",
			Sessions: []program.Session{
				{
					Name: "Morning",
					Exercises: []program.Exercise{
						{ID: "p1-tilt", Name: "Pelvic Tilt", Sets: 2, Reps: "10"},
						{ID: "p1-bridge", Name: "Glute Bridge", Sets: 3, Reps: "10"},
						{ID: "p1-bug", Name: "Dead Bug", Sets: 2, Reps: "8"},
					},
				},
				{
					Name:      "Evening",
					Exercises: []program.Exercise{{ID: "p1-dog", Name: "Bird Dog"}},
				},
			},
		},
		{
			ID:        2,
			Name:      "Phase 2",
			Sessions:  []program.Session{{Name: "Daily draw"}},
			BonusPool: pool,
		},
	}

	videos := map[string]program.Video{
		"p1-bridge": {Query: "glute bridge", Label: "Glute bridge"},
	}

	return program.New(phases, videos)
}

func newLogs(t *testing.T) *store.Logs {
	t.Helper()

	c, err := store.NewClient(filepath.Join(t.TempDir(), "rehab.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return store.OpenLogs(c.Slot(store.LogSlot))
}

func TestToggleCheckIsIdempotentOverTwoCalls(t *testing.T) {
	logs := newLogs(t)
	key := models.LogKey(now, "p1-bridge")

	checked, err := ToggleCheck(logs, now, "p1-bridge")
	require.NoError(t, err)
	assert.True(t, checked)

	rec, ok := logs.Get(key)
	require.True(t, ok)
	assert.Equal(t, models.LogRecord{Done: true, TS: now.UnixMilli()}, rec)

	checked, err = ToggleCheck(logs, now.Add(time.Minute), "p1-bridge")
	require.NoError(t, err)
	assert.False(t, checked)

	_, ok = logs.Get(key)
	assert.False(t, ok)
	assert.Empty(t, logs.All())
}

func TestToggleCheckUsesInjectedDate(t *testing.T) {
	logs := newLogs(t)

	_, err := ToggleCheck(logs, now.AddDate(0, 0, -1), "p1-bridge")
	require.NoError(t, err)

	_, ok := logs.Get("2026-10-16__p1-bridge")
	assert.True(t, ok)

	// a new day starts unchecked
	checked, err := ToggleCheck(logs, now, "p1-bridge")
	require.NoError(t, err)
	assert.True(t, checked)
	assert.Len(t, logs.All(), 2)
}

func TestSaveLogOverwrites(t *testing.T) {
	logs := newLogs(t)

	require.NoError(t, SaveLog(logs, now, "p1-bug", Entry{
		Sets:  " 3 ",
		Reps:  "8",
		Pain:  4,
		Notes: "left side tight",
	}))

	later := now.Add(2 * time.Hour)

	require.NoError(t, SaveLog(logs, later, "p1-bug", Entry{Difficulty: 2}))

	rec, ok := logs.Get(models.LogKey(now, "p1-bug"))
	require.True(t, ok)
	assert.Equal(t, models.LogRecord{Done: true, TS: later.UnixMilli(), Difficulty: 2}, rec)
}

func TestSaveLogValidates(t *testing.T) {
	logs := newLogs(t)

	err := SaveLog(logs, now, "p1-bug", Entry{Pain: 11})
	assert.ErrorIs(t, err, errPainRange)

	err = SaveLog(logs, now, "p1-bug", Entry{Difficulty: -1})
	assert.ErrorIs(t, err, errDifficultyRange)

	assert.Empty(t, logs.All())
}

func TestDraft(t *testing.T) {
	logs := newLogs(t)

	assert.Equal(t, Entry{}, Draft(logs, now, "p1-bug"))

	e := Entry{Sets: "3", Reps: "8", Pain: 1, Difficulty: 4, Notes: "ok"}
	require.NoError(t, SaveLog(logs, now, "p1-bug", e))

	assert.Equal(t, e, Draft(logs, now, "p1-bug"))
	assert.Equal(t, Entry{}, Draft(logs, now.AddDate(0, 0, 1), "p1-bug"))
}

func TestStateTransitions(t *testing.T) {
	s := NewState(now)
	assert.Equal(t, ViewToday, s.View)
	assert.Equal(t, program.InitialSeed(now), s.BonusSeed)

	s = s.SelectSession(1).ToggleExpand("p1-dog").MoveCursor(3, 5)
	assert.Equal(t, 1, s.Session)
	assert.Equal(t, "p1-dog", s.Expanded)
	assert.Equal(t, 3, s.Cursor)

	s = s.ToggleExpand("p1-dog")
	assert.Empty(t, s.Expanded)

	s = s.ToggleExpand("p1-dog").SelectPhase(1)
	assert.Equal(t, State{View: ViewToday, Phase: 1, BonusSeed: s.BonusSeed}, s)

	s = s.SetView(ViewHistory).SelectPhaseAndGo(0)
	assert.Equal(t, ViewToday, s.View)
	assert.Equal(t, 0, s.Phase)

	s = s.ToggleExpand("x").Shuffle(99)
	assert.Equal(t, uint32(99), s.BonusSeed)
	assert.Empty(t, s.Expanded)

	assert.Equal(t, ViewPhases, s.NextView(1).View)
	assert.Equal(t, ViewHistory, s.NextView(-1).View)

	assert.Equal(t, 4, s.MoveCursor(10, 5).Cursor)
	assert.Equal(t, 0, s.MoveCursor(-10, 5).Cursor)
	assert.Equal(t, 0, s.MoveCursor(1, 0).Cursor)
}

func TestTodayProgress(t *testing.T) {
	prog := testProgram()
	logs := newLogs(t)
	s := NewState(now)

	_, err := ToggleCheck(logs, now, "p1-bridge")
	require.NoError(t, err)

	// yesterday's record does not count today
	_, err = ToggleCheck(logs, now.AddDate(0, 0, -1), "p1-tilt")
	require.NoError(t, err)

	v := Today(prog, s.ToggleExpand("p1-bug"), logs, now)

	assert.Equal(t, "2026-10-17", v.Date)
	assert.Equal(t, "Morning", v.Session.Name)
	assert.False(t, v.Bonus)
	assert.Equal(t, Progress{Done: 1, Total: 3, Percent: 33}, v.Progress)
	assert.False(t, v.Progress.Complete())

	require.Len(t, v.Items, 3)
	assert.False(t, v.Items[0].Checked())
	assert.True(t, v.Items[1].Checked())
	assert.NotNil(t, v.Items[1].Video)
	assert.Nil(t, v.Items[0].Video)
	assert.True(t, v.Items[2].Expanded)

	for _, id := range []string{"p1-tilt", "p1-bug"} {
		_, err = ToggleCheck(logs, now, id)
		require.NoError(t, err)
	}

	v = Today(prog, s, logs, now)
	assert.Equal(t, Progress{Done: 3, Total: 3, Percent: 100}, v.Progress)
	assert.True(t, v.Progress.Complete())
}

func TestTodayBonusDraw(t *testing.T) {
	prog := testProgram()
	logs := newLogs(t)

	s := NewState(now).SelectPhase(1).Shuffle(42)

	v := Today(prog, s, logs, now)

	ids := make([]string, len(v.Items))
	for i, it := range v.Items {
		ids[i] = it.Exercise.ID
	}

	assert.True(t, v.Bonus)
	assert.Equal(t, 7, v.PoolSize)
	assert.Equal(t, uint32(42), v.Seed)
	assert.Equal(t, []string{"e", "c", "g"}, ids)

	// re-rendering with the same state gives the same draw
	again := Today(prog, s, logs, now)
	assert.Equal(t, v.Items, again.Items)
}

func TestHistory(t *testing.T) {
	prog := testProgram()
	logs := newLogs(t)

	require.NoError(t, logs.Set("2026-10-15__p1-bridge", models.LogRecord{Done: true, TS: 100}))
	require.NoError(t, logs.Set("2026-10-15__p1-tilt", models.LogRecord{Done: true, TS: 300}))
	require.NoError(t, logs.Set("2026-10-17__p1-bug", models.LogRecord{Done: true, TS: 500, Pain: 6}))
	require.NoError(t, logs.Set("2026-10-17__retired", models.LogRecord{Done: true, TS: 900}))
	require.NoError(t, logs.Set("2026-09-01__p1-dog", models.LogRecord{Done: true, TS: 50}))

	v := History(prog, logs, now, 3, 3)

	wantDays := []Day{
		{Key: "2026-10-15", Count: 2},
		{Key: "2026-10-16", Count: 0},
		{Key: "2026-10-17", Count: 2, IsToday: true},
	}

	if diff := cmp.Diff(wantDays, v.Days, cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Date"
	}, cmp.Ignore())); diff != "" {
		t.Errorf("days mismatch (-want +got):\n%s", diff)
	}

	// the limit applies before unknown exercises are dropped
	got := make([]string, len(v.Recent))
	for i, e := range v.Recent {
		got[i] = e.Date + " " + e.Exercise.ID
	}

	assert.Equal(t, []string{"2026-10-17 p1-bug", "2026-10-15 p1-tilt"}, got)
	assert.Equal(t, 1, v.Recent[0].Phase.ID)
}

func TestEffortLabel(t *testing.T) {
	assert.Equal(t, "", EffortLabel(0))
	assert.Equal(t, "Easy", EffortLabel(1))
	assert.Equal(t, "Max", EffortLabel(5))
	assert.Equal(t, "", EffortLabel(6))
}

func TestPhasesAndIDs(t *testing.T) {
	prog := testProgram()

	rows := Phases(prog, NewState(now).SelectPhase(1))

	require.Len(t, rows, 2)
	assert.Equal(t, 4, rows[0].Total)
	assert.Equal(t, 2, rows[0].Sessions)
	assert.False(t, rows[0].Current)
	assert.True(t, rows[1].Current)

	ids := ExerciseIDs(program.New([]program.Phase{{
		Sessions: []program.Session{{Exercises: []program.Exercise{
			{ID: "p10-x"}, {ID: "p2-x"}, {ID: "p1-x"},
		}}},
	}}, nil))

	assert.Equal(t, []string{"p1-x", "p2-x", "p10-x"}, ids)
}
