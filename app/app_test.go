package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehabtrack/rehab/internal/config"
	"github.com/rehabtrack/rehab/internal/models"
	"github.com/rehabtrack/rehab/internal/program"
	"github.com/rehabtrack/rehab/store"
	"github.com/rehabtrack/rehab/tracker"
)

var now = time.Date(2026, 10, 17, 9, 15, 0, 0, time.Local)

func newEnv(t *testing.T, cli config.CLIConfig) *env {
	t.Helper()

	client, err := store.NewClient(filepath.Join(t.TempDir(), "rehab.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})

	cfg := &config.Config{
		Program: config.ProgramConfig{StartPhase: 1, BonusPhase: 2, BonusQuota: 3},
		CLI:     cli,
	}

	return &env{
		cfg:    cfg,
		client: client,
		logs:   store.OpenLogs(client.Slot(store.LogSlot)),
		prog:   program.Default(program.WithBonus(2, 3)),
		now:    now,
	}
}

func TestEditorCommand(t *testing.T) {
	args, err := editorCommand(`code --wait`, "/tmp/config.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", "/tmp/config.yml"}, args)

	args, err = editorCommand(`"/opt/my editor/bin/ed" -n`, "c.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/my editor/bin/ed", "-n", "c.yml"}, args)

	_, err = editorCommand(`vim "unterminated`, "c.yml")
	assert.Error(t, err)

	_, err = editorCommand("  ", "c.yml")
	assert.Error(t, err)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Empty(t, firstNonEmptyString("", ""))
}

func TestEnvState(t *testing.T) {
	e := newEnv(t, config.CLIConfig{})

	s, err := e.state()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Phase)

	e = newEnv(t, config.CLIConfig{Phase: 2, Seed: 42, HasSeed: true})

	s, err = e.state()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Phase)
	assert.Equal(t, uint32(42), s.BonusSeed)

	e = newEnv(t, config.CLIConfig{Phase: 99})

	_, err = e.state()
	assert.ErrorIs(t, err, errUnknownPhase)

	e = newEnv(t, config.CLIConfig{Phase: 1, Session: 9})

	_, err = e.state()
	assert.ErrorIs(t, err, errUnknownSession)
}

func TestRecordsOnAndDelete(t *testing.T) {
	e := newEnv(t, config.CLIConfig{})
	ids := tracker.ExerciseIDs(e.prog)
	require.GreaterOrEqual(t, len(ids), 2)

	require.NoError(t, e.logs.Set("2026-10-16__"+ids[0], models.LogRecord{Done: true, TS: 1}))
	require.NoError(t, e.logs.Set("2026-10-17__"+ids[0], models.LogRecord{Done: true, TS: 2}))
	require.NoError(t, e.logs.Set("2026-10-17__"+ids[1], models.LogRecord{Done: true, TS: 3}))

	assert.Len(t, recordsOn(e.logs, "2026-10-17", nil), 2)
	assert.Len(t, recordsOn(e.logs, "2026-10-17", []string{ids[1]}), 1)
	assert.Empty(t, recordsOn(e.logs, "2026-10-15", nil))
	assert.Empty(t, recordsOn(e.logs, "2026-10-1", nil))

	var out bytes.Buffer

	records := recordsOn(e.logs, "2026-10-17", nil)
	err := delRecords(e.logs, records, nil, strings.NewReader("\n"), &out, true)
	require.NoError(t, err)

	assert.Len(t, e.logs.All(), 1)
	assert.Empty(t, out.String())
}

func TestSaveLogUsesSaveTime(t *testing.T) {
	e := newEnv(t, config.CLIConfig{})
	id := tracker.ExerciseIDs(e.prog)[0]

	saved := time.Date(2026, 10, 18, 0, 5, 0, 0, time.Local)
	e.clock = func() time.Time { return saved }

	require.NoError(t, e.saveLog(id, tracker.Entry{Sets: "3", Pain: 2}))

	_, ok := e.logs.Get(models.LogKey(e.now, id))
	assert.False(t, ok)

	rec, ok := e.logs.Get("2026-10-18__" + id)
	require.True(t, ok)
	assert.Equal(t, saved.UnixMilli(), rec.TS)
	assert.Equal(t, "3", rec.Sets)
}

func TestPrintToday(t *testing.T) {
	e := newEnv(t, config.CLIConfig{})

	s, err := e.state()
	require.NoError(t, err)

	v := tracker.Today(e.prog, s, e.logs, e.now)
	require.NotEmpty(t, v.Items)

	_, err = tracker.ToggleCheck(e.logs, e.now, v.Items[0].Exercise.ID)
	require.NoError(t, err)

	var out bytes.Buffer

	printToday(&out, tracker.Today(e.prog, s, e.logs, e.now))

	assert.Contains(t, out.String(), v.Items[0].Exercise.Name)
	assert.Contains(t, out.String(), "2026-10-17")
	assert.Contains(t, out.String(), "done")
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printJSON(&out, tracker.Progress{Done: 1, Total: 3, Percent: 33}))
	assert.JSONEq(t, `{"done":1,"total":3,"percent":33}`, out.String())
}

func TestPrintStats(t *testing.T) {
	e := newEnv(t, config.CLIConfig{})
	ids := tracker.ExerciseIDs(e.prog)

	require.NoError(t, e.logs.Set("2026-10-17__"+ids[0], models.LogRecord{Done: true, TS: 1, Pain: 3}))
	require.NoError(t, e.logs.Set("2026-10-16__"+ids[0], models.LogRecord{Done: true, TS: 2}))

	var out bytes.Buffer

	printStats(&out, tracker.Summarize(e.prog, e.logs, e.now, 7))

	assert.Contains(t, out.String(), "2026-10-11 - 2026-10-17")
	assert.Contains(t, out.String(), "Weekday breakdown")
	assert.Contains(t, out.String(), "Current streak:")
}
