// Package tui implements the interactive tracker screen.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/rehabtrack/rehab/internal/exercisedb"
	"github.com/rehabtrack/rehab/internal/notify"
	"github.com/rehabtrack/rehab/internal/program"
	"github.com/rehabtrack/rehab/store"
	"github.com/rehabtrack/rehab/tracker"
)

// Options configures a Model.
type Options struct {
	Program     *program.Program
	Logs        store.LogStore
	Loader      DBLoader
	Notifier    *notify.Notifier
	Now         func() time.Time
	Rand        *rand.Rand
	State       tracker.State
	HistoryDays int
	RecentLimit int
	DarkTheme   bool
}

// Model is the bubbletea model of the tracker.
type Model struct {
	ctx      context.Context
	prog     *program.Program
	logs     store.LogStore
	loader   DBLoader
	notifier *notify.Notifier
	now      func() time.Time
	rng      *rand.Rand
	db       *exercisedb.Table
	form     *huh.Form
	draft    *tracker.Entry
	err      error
	help     help.Model
	progress progress.Model
	style    Style
	formFor  string
	state    tracker.State
	days     int
	limit    int
	loading  bool
	dark     bool
}

// New returns a Model ready to be passed to tea.NewProgram.
func New(ctx context.Context, opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Rand == nil {
		//nolint:gosec // shuffling exercises needs no crypto randomness
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	m := &Model{
		ctx:      ctx,
		prog:     opts.Program,
		logs:     opts.Logs,
		loader:   opts.Loader,
		notifier: opts.Notifier,
		now:      opts.Now,
		rng:      opts.Rand,
		db:       exercisedb.NewTable(),
		state:    opts.State,
		days:     max(opts.HistoryDays, 1),
		limit:    opts.RecentLimit,
		dark:     opts.DarkTheme,
		help:     help.New(),
		loading:  opts.Loader != nil,
	}

	m.restyle()

	return m
}

// State returns the current tracker state.
func (m *Model) State() tracker.State {
	return m.state
}

// Table returns the exercise table currently in use.
func (m *Model) Table() *exercisedb.Table {
	return m.db
}

func (m *Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}

	return LoadCmd(m.ctx, m.loader)
}

// restyle picks up the colour of the selected phase.
func (m *Model) restyle() {
	color := "#4A9B8E"
	if ph := m.prog.Phase(m.state.Phase); ph != nil && ph.Color != "" {
		color = ph.Color
	}

	m.style = newStyle(color, m.dark)

	width := m.progress.Width
	if width == 0 {
		width = maxWidth - padding*2 - 4
	}

	m.progress = progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(width),
	)
}

func (m *Model) today() tracker.TodayView {
	return tracker.Today(m.prog, m.state, m.logs, m.now())
}

// sessionKey identifies the day's list for completion notifications.
func (m *Model) sessionKey(v tracker.TodayView) string {
	if v.Bonus {
		return fmt.Sprintf("%s/%d/draw/%d", v.Date, v.Phase.ID, v.Seed)
	}

	return fmt.Sprintf("%s/%d/%d", v.Date, m.state.Phase, m.state.Session)
}

func (m *Model) toggle(id string) {
	checked, err := tracker.ToggleCheck(m.logs, m.now(), id)
	if err != nil {
		m.err = err
		return
	}

	slog.Debug(
		"toggled exercise",
		slog.String("exercise", id),
		slog.Bool("checked", checked),
	)

	v := m.today()
	if v.Phase == nil {
		return
	}

	if v.Progress.Complete() {
		m.notifier.SessionComplete(
			m.sessionKey(v),
			v.Phase.Name,
			v.Session.Name,
			v.Progress.Total,
		)

		return
	}

	m.notifier.Reset(m.sessionKey(v))
}

// openForm embeds the log form for ex, pre-filled from today's record.
func (m *Model) openForm(ex program.Exercise) tea.Cmd {
	draft := tracker.Draft(m.logs, m.now(), ex.ID)
	m.draft = &draft
	m.formFor = ex.ID
	m.form = NewLogForm(ex, m.draft)

	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.draft = nil
	m.formFor = ""
}

func (m *Model) saveForm() {
	defer m.closeForm()

	if m.draft == nil {
		return
	}

	if err := tracker.SaveLog(m.logs, m.now(), m.formFor, *m.draft); err != nil {
		m.err = err
		return
	}

	slog.Info("saved log", slog.String("exercise", m.formFor))
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok &&
		key.Matches(keyMsg, defaultKeymap.esc) {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.saveForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	case huh.StateNormal:
	}

	return m, cmd
}

func (m *Model) handleTodayKey(msg tea.KeyMsg) tea.Cmd {
	v := m.today()

	var current *tracker.Item
	if m.state.Cursor < len(v.Items) {
		current = &v.Items[m.state.Cursor]
	}

	switch {
	case key.Matches(msg, defaultKeymap.up):
		m.state = m.state.MoveCursor(-1, len(v.Items))
	case key.Matches(msg, defaultKeymap.down):
		m.state = m.state.MoveCursor(1, len(v.Items))
	case key.Matches(msg, defaultKeymap.check):
		if current != nil {
			m.toggle(current.Exercise.ID)
		}
	case key.Matches(msg, defaultKeymap.expand):
		if current != nil {
			cursor := m.state.Cursor
			m.state = m.state.ToggleExpand(current.Exercise.ID)
			m.state.Cursor = cursor
		}
	case key.Matches(msg, defaultKeymap.log):
		if current != nil {
			return m.openForm(current.Exercise)
		}
	case key.Matches(msg, defaultKeymap.shuffle):
		if v.Bonus {
			m.state = m.state.Shuffle(program.ShuffleSeed(m.now(), m.rng))
			slog.Info("shuffled daily draw", slog.Any("seed", m.state.BonusSeed))
		}
	case key.Matches(msg, defaultKeymap.session):
		if v.Phase != nil && len(v.Phase.Sessions) > 1 {
			next := (m.state.Session + 1) % len(v.Phase.Sessions)
			m.state = m.state.SelectSession(next)
		}
	}

	return nil
}

func (m *Model) handlePhasesKey(msg tea.KeyMsg) {
	n := len(m.prog.Phases)

	switch {
	case key.Matches(msg, defaultKeymap.up):
		m.state = m.state.MoveCursor(-1, n)
	case key.Matches(msg, defaultKeymap.down):
		m.state = m.state.MoveCursor(1, n)
	case key.Matches(msg, defaultKeymap.expand):
		m.state = m.state.SelectPhaseAndGo(m.state.Cursor)
		m.restyle()
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.next):
		m.state = m.state.NextView(1)
		return m, nil

	case key.Matches(msg, defaultKeymap.prev):
		m.state = m.state.NextView(-1)
		return m, nil

	case key.Matches(msg, defaultKeymap.phase):
		idx := int(msg.Runes[0] - '1')
		if idx < len(m.prog.Phases) {
			m.state = m.state.SelectPhaseAndGo(idx)
			m.restyle()
		}

		return m, nil
	}

	switch m.state.View {
	case tracker.ViewToday:
		return m, m.handleTodayKey(msg)
	case tracker.ViewPhases:
		m.handlePhasesKey(msg)
	case tracker.ViewHistory:
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(m.ctx, slog.LevelDebug) {
		slog.Debug(spew.Sdump(msg))
	}

	if msg, ok := msg.(DBLoadedMsg); ok {
		m.loading = false
		if msg.Table != nil {
			m.db = msg.Table
		}

		slog.Info("exercise database ready", slog.Int("entries", m.db.Len()))

		return m, nil
	}

	if m.form != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}

// lookup returns the database entry matching an exercise name.
func (m *Model) lookup(name string) (exercisedb.Entry, bool) {
	return m.db.Lookup(name)
}
