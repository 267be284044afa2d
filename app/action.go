package app

import (
	"context"
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/rehabtrack/rehab/internal/config"
	"github.com/rehabtrack/rehab/internal/exercisedb"
	"github.com/rehabtrack/rehab/internal/models"
	"github.com/rehabtrack/rehab/internal/notify"
	"github.com/rehabtrack/rehab/internal/pathutil"
	"github.com/rehabtrack/rehab/internal/program"
	"github.com/rehabtrack/rehab/internal/static"
	"github.com/rehabtrack/rehab/tracker"
	"github.com/rehabtrack/rehab/tui"
)

func (e *env) notifier() *notify.Notifier {
	if err := static.CopyToDataDir(pathutil.Dir()); err != nil {
		slog.Warn("unable to install notification icon", slog.Any("error", err))
	}

	return notify.New(
		e.cfg.Notifications.Enabled,
		static.IconPath(pathutil.Dir()),
	)
}

// defaultAction opens the interactive tracker.
func defaultAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	s, err := e.state()
	if err != nil {
		return err
	}

	opts := tui.Options{
		Program:     e.prog,
		Logs:        e.logs,
		Notifier:    e.notifier(),
		State:       s,
		HistoryDays: e.cfg.Display.HistoryDays,
		RecentLimit: e.cfg.Display.RecentLimit,
		DarkTheme:   e.cfg.Display.DarkTheme,
	}

	if l := e.loader(); l != nil {
		opts.Loader = l
	}

	p := tea.NewProgram(tui.New(ctx.Context, opts), tea.WithAltScreen())

	_, err = p.Run()

	return err
}

// todayAction prints the current session or daily draw.
func todayAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	s, err := e.state()
	if err != nil {
		return err
	}

	v := tracker.Today(e.prog, s, e.logs, e.now)

	if ctx.Bool("json") {
		return printJSON(config.Stdout, v)
	}

	printToday(config.Stdout, v)

	return nil
}

// checkAction toggles today's record for an exercise.
func checkAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	ex, _, err := e.find(ctx)
	if err != nil {
		return err
	}

	checked, err := tracker.ToggleCheck(e.logs, e.now, ex.ID)
	if err != nil {
		return err
	}

	if !checked {
		pterm.Info.Printfln("%s unchecked for today", ex.Name)
		return nil
	}

	pterm.Success.Printfln("%s done for today", ex.Name)

	e.notifyIfComplete(ex.ID)

	return nil
}

// notifyIfComplete sends a notification when id completes the current list.
func (e *env) notifyIfComplete(id string) {
	s, err := e.state()
	if err != nil {
		return
	}

	v := tracker.Today(e.prog, s, e.logs, e.now)

	listed := slices.ContainsFunc(v.Items, func(it tracker.Item) bool {
		return it.Exercise.ID == id
	})

	if !listed || !v.Progress.Complete() {
		return
	}

	e.notifier().SessionComplete(v.Date, v.Phase.Name, v.Session.Name, v.Progress.Total)
}

// logAction records the detail of an exercise, from flags or the log form.
func logAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	ex, _, err := e.find(ctx)
	if err != nil {
		return err
	}

	entry := tracker.Draft(e.logs, e.now, ex.ID)

	fromFlags := slices.ContainsFunc(logFlags, ctx.IsSet)
	if fromFlags {
		applyLogFlags(ctx, &entry)
	} else {
		if err := tui.NewLogForm(ex, &entry).Run(); err != nil {
			return err
		}
	}

	if err := e.saveLog(ex.ID, entry); err != nil {
		return err
	}

	pterm.Success.Printfln("Logged %s", ex.Name)

	return nil
}

// saveLog stores entry under the day it is saved on, which is later than
// e.now when the log form stays open.
func (e *env) saveLog(id string, entry tracker.Entry) error {
	clock := e.clock
	if clock == nil {
		clock = time.Now
	}

	return tracker.SaveLog(e.logs, clock(), id, entry)
}

func applyLogFlags(ctx *cli.Context, entry *tracker.Entry) {
	if ctx.IsSet("sets") {
		entry.Sets = ctx.String("sets")
	}

	if ctx.IsSet("reps") {
		entry.Reps = ctx.String("reps")
	}

	if ctx.IsSet("pain") {
		entry.Pain = ctx.Int("pain")
	}

	if ctx.IsSet("difficulty") {
		entry.Difficulty = ctx.Int("difficulty")
	}

	if ctx.IsSet("notes") {
		entry.Notes = ctx.String("notes")
	}
}

// showAction prints the details of an exercise along with its database
// entry and video.
func showAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	ex, ph, err := e.find(ctx)
	if err != nil {
		return err
	}

	table := e.table(ctx.Context)

	var entry *exercisedb.Entry
	if found, ok := table.Lookup(ex.Name); ok {
		entry = &found
	}

	var rec *models.LogRecord
	if r, ok := e.logs.Get(models.LogKey(e.now, ex.ID)); ok {
		rec = &r
	}

	var video *program.Video
	if v, ok := e.prog.Video(ex.ID); ok {
		video = &v
	}

	printExercise(config.Stdout, ex, ph, rec, entry, video)

	return nil
}

// table loads the exercise database with a spinner, or reads the cache when
// fetching is disabled.
func (e *env) table(ctx context.Context) *exercisedb.Table {
	l := e.loader()
	if l == nil {
		return e.cached()
	}

	spinner, _ := pterm.DefaultSpinner.Start("Loading exercise database...")

	t := l.Load(ctx)

	if spinner != nil {
		_ = spinner.Stop()
	}

	return t
}

// historyAction prints the calendar strip and recent records.
func historyAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	f, err := e.cfg.Filter(ctx, e.now)
	if err != nil {
		return err
	}

	v := tracker.History(e.prog, e.logs, e.now, f.Days, f.Limit)

	if ctx.Bool("json") {
		return printJSON(config.Stdout, v)
	}

	printHistory(config.Stdout, v)

	return nil
}

// phasesAction prints the programme overview or every exercise ID.
func phasesAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	if ctx.Bool("ids") {
		ids := tracker.ExerciseIDs(e.prog)

		if ctx.Bool("json") {
			return printJSON(config.Stdout, ids)
		}

		for _, id := range ids {
			ex, _, _ := e.prog.Find(id)
			pterm.Fprintln(config.Stdout, id+"  "+ex.Name)
		}

		return nil
	}

	s, err := e.state()
	if err != nil {
		return err
	}

	rows := tracker.Phases(e.prog, s)

	if ctx.Bool("json") {
		return printJSON(config.Stdout, rows)
	}

	printPhases(config.Stdout, e.prog, rows)

	return nil
}
