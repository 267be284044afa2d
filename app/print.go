package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/rehabtrack/rehab/internal/exercisedb"
	"github.com/rehabtrack/rehab/internal/models"
	"github.com/rehabtrack/rehab/internal/program"
	"github.com/rehabtrack/rehab/internal/ui"
	"github.com/rehabtrack/rehab/tracker"
	"github.com/rehabtrack/rehab/tui"
)

const (
	noRecordsMsg   = "No exercises logged in the specified time range"
	noExercisesMsg = "Nothing scheduled for this session"
)

func printJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errEncodeJSON.Wrap(err)
	}

	fmt.Fprintln(w, string(b))

	return nil
}

func status(rec *models.LogRecord) string {
	if rec == nil {
		return ui.Faint("pending")
	}

	return ui.Green("done")
}

func detail(rec models.LogRecord) string {
	return ui.Pain(rec.Pain, tui.Detail(rec))
}

// printToday prints a header and a table of the day's exercises.
func printToday(w io.Writer, v tracker.TodayView) {
	if v.Phase == nil {
		pterm.Info.Println(noExercisesMsg)
		return
	}

	header := ui.Hex(v.Phase.Color, v.Phase.Emoji+" "+v.Phase.Name)

	if v.Bonus {
		header += fmt.Sprintf(" · daily draw of %d from %d (seed %d)", len(v.Items), v.PoolSize, v.Seed)
	} else {
		header += " · " + v.Session.Name
	}

	fmt.Fprintln(w, header+" · "+ui.Faint(v.Date))

	if len(v.Items) == 0 {
		pterm.Info.Println(noExercisesMsg)
		return
	}

	tableBody := make([][]string, len(v.Items))

	for i, it := range v.Items {
		var extra string
		if it.Log != nil {
			extra = detail(*it.Log)
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			it.Exercise.Name,
			it.Exercise.ID,
			tui.Target(it.Exercise),
			status(it.Log),
			extra,
		}
	}

	tableBody = append([][]string{
		{"#", "EXERCISE", "ID", "TARGET", "STATUS", "DETAIL"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)

	fmt.Fprintf(
		w,
		"%s %d/%d (%d%%)\n",
		ui.Bar(v.Progress.Percent, v.Phase.Color),
		v.Progress.Done,
		v.Progress.Total,
		v.Progress.Percent,
	)

	if v.Progress.Complete() {
		pterm.Success.Println("Session complete, well done!")
	}
}

// printHistory prints the calendar strip and a table of recent records.
func printHistory(w io.Writer, v tracker.HistoryView) {
	var days, marks strings.Builder

	for _, d := range v.Days {
		label := fmt.Sprintf("%3s", d.Date.Format("02"))
		if d.IsToday {
			label = ui.Highlight(label)
		}

		days.WriteString(label)

		mark := ui.Faint(fmt.Sprintf("%3s", "·"))
		if d.Count > 0 {
			mark = ui.Green(fmt.Sprintf("%3d", d.Count))
		}

		marks.WriteString(mark)
	}

	fmt.Fprintln(w, days.String())
	fmt.Fprintln(w, marks.String())
	fmt.Fprintln(w)

	if len(v.Recent) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return
	}

	printRecords(w, v.Recent)
}

func printRecords(w io.Writer, entries []tracker.HistoryEntry) {
	tableBody := make([][]string, len(entries))

	for i, e := range entries {
		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			e.Date,
			ui.Hex(e.Phase.Color, e.Phase.Name),
			e.Exercise.Name,
			e.Record.Time().Format("15:04"),
			detail(e.Record),
		}
	}

	tableBody = append([][]string{
		{"#", "DATE", "PHASE", "EXERCISE", "TIME", "DETAIL"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func printPhases(w io.Writer, prog *program.Program, rows []tracker.PhaseSummary) {
	tableBody := make([][]string, len(rows))

	for i, row := range rows {
		ph := row.Phase

		name := ui.Hex(ph.Color, ph.Emoji+" "+ph.Name)
		if row.Current {
			name += ui.Faint(" (current)")
		}

		content := fmt.Sprintf("%d exercises in %d sessions", row.Total, row.Sessions)
		if prog.IsBonus(ph) {
			content = fmt.Sprintf("daily draw of %d from %d", prog.BonusQuota, len(ph.BonusPool))
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", ph.ID),
			name,
			ph.Subtitle,
			ph.Weeks,
			content,
		}
	}

	tableBody = append([][]string{
		{"#", "PHASE", "FOCUS", "WEEKS", "CONTENT"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printExercise prints everything known about an exercise.
func printExercise(
	w io.Writer,
	ex program.Exercise,
	ph *program.Phase,
	rec *models.LogRecord,
	entry *exercisedb.Entry,
	video *program.Video,
) {
	fmt.Fprintln(w, ui.Hex(ph.Color, ex.Name)+" "+ui.Faint("("+ex.ID+")"))
	fmt.Fprintf(w, "%s %s %s\n", ui.Faint("Phase:"), ph.Emoji, ph.Name)

	if target := tui.Target(ex); target != "" {
		fmt.Fprintf(w, "%s %s\n", ui.Faint("Target:"), target)
	}

	if ex.Tip != "" {
		fmt.Fprintf(w, "%s %s\n", ui.Faint("Tip:"), ex.Tip)
	}

	fmt.Fprintf(w, "%s %s", ui.Faint("Today:"), status(rec))

	if rec != nil && rec.HasDetail() {
		fmt.Fprint(w, " "+detail(*rec))
	}

	fmt.Fprintln(w)

	if entry != nil {
		if entry.HasPoses() {
			start, end := entry.Poses()
			fmt.Fprintf(w, "%s %s\n", ui.Faint("Start:"), start)
			fmt.Fprintf(w, "%s %s\n", ui.Faint("End:"), end)
		}

		if len(entry.Instructions) > 0 {
			fmt.Fprintln(w)

			for i, step := range entry.Instructions {
				fmt.Fprintf(w, "%2d. %s\n", i+1, step)
			}
		}
	}

	if video != nil {
		fmt.Fprintf(w, "\n%s %s\n", ui.Cyan(video.Label), video.URL())
	}
}
