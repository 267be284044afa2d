package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehabtrack/rehab/internal/models"
)

func TestSummarize(t *testing.T) {
	prog := testProgram()
	logs := newLogs(t)

	records := map[string]models.LogRecord{
		"2026-10-17__p1-bridge": {Done: true, TS: 1, Pain: 2},
		"2026-10-17__p1-tilt":   {Done: true, TS: 2},
		"2026-10-16__p1-bridge": {Done: true, TS: 3, Pain: 4},
		"2026-10-15__e":         {Done: true, TS: 4},
		"2026-10-13__p1-bridge": {Done: true, TS: 5},
		"2026-10-12__retired":   {Done: true, TS: 6},
		"2026-09-01__p1-bug":    {Done: true, TS: 7, Pain: 9},
	}

	for k, r := range records {
		require.NoError(t, logs.Set(k, r))
	}

	st := Summarize(prog, logs, now, 7)

	assert.Equal(t, "2026-10-11", st.From)
	assert.Equal(t, "2026-10-17", st.To)
	assert.Equal(t, 6, st.Completed)
	assert.Equal(t, 5, st.ActiveDays)
	assert.Equal(t, 3, st.Streak)
	assert.Equal(t, 3, st.LongestStreak)
	assert.Equal(t, 2, st.PainSamples)
	assert.InDelta(t, 3.0, st.AvgPain, 1e-9)
	assert.Equal(t, 2, st.ByWeekday[time.Saturday])

	require.Len(t, st.ByPhase, 2)
	assert.Equal(t, 4, st.ByPhase[0].Count)
	assert.Equal(t, 1, st.ByPhase[1].Count)

	require.Len(t, st.ByExercise, 3)
	assert.Equal(t, "p1-bridge", st.ByExercise[0].Exercise.ID)
	assert.Equal(t, 3, st.ByExercise[0].Count)
	assert.Equal(t, "e", st.ByExercise[1].Exercise.ID)
	assert.Equal(t, "p1-tilt", st.ByExercise[2].Exercise.ID)
}

func TestSummarizeStreakFromYesterday(t *testing.T) {
	prog := testProgram()
	logs := newLogs(t)

	require.NoError(t, logs.Set("2026-10-16__p1-bridge", models.LogRecord{Done: true}))
	require.NoError(t, logs.Set("2026-10-15__p1-bridge", models.LogRecord{Done: true}))

	st := Summarize(prog, logs, now, 0)

	assert.Equal(t, 1, st.Days)
	assert.Equal(t, 0, st.Completed)
	assert.Equal(t, 2, st.Streak)
	assert.Zero(t, st.AvgPain)
}
