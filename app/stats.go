package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/rehabtrack/rehab/internal/config"
	"github.com/rehabtrack/rehab/internal/ui"
	"github.com/rehabtrack/rehab/tracker"
)

const (
	barChartChar = "▇"
	topExercises = 5
)

func statsBarChart(title string, bars pterm.Bars) string {
	if len(bars) == 0 {
		return ""
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return ui.Cyan("\n"+title) + "\n" + chart
}

func statsSummary(st tracker.Stats) string {
	var s strings.Builder

	s.WriteString(ui.Cyan("Summary") + "\n")
	fmt.Fprintln(&s, "Exercises done:", ui.Green(st.Completed))
	fmt.Fprintf(&s, "Active days: %s of %d\n", ui.Green(st.ActiveDays), st.Days)
	fmt.Fprintln(&s, "Current streak:", ui.Green(st.Streak))
	fmt.Fprintln(&s, "Longest streak:", ui.Green(st.LongestStreak))

	if st.PainSamples > 0 {
		avg := fmt.Sprintf("%.1f/%d", st.AvgPain, tracker.MaxPain)
		fmt.Fprintf(
			&s,
			"Average pain: %s over %d logs\n",
			ui.Pain(int(st.AvgPain+0.5), avg),
			st.PainSamples,
		)
	}

	return s.String()
}

// printStats prints the statistics of a reporting period.
func printStats(w io.Writer, st tracker.Stats) {
	timePeriod := "Reporting period: " + st.From + " - " + st.To

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	if st.Completed == 0 {
		fmt.Fprint(w, header)
		pterm.Info.Println(noRecordsMsg)

		return
	}

	var weekdays pterm.Bars

	for i := range 7 {
		// start the week on Monday
		d := time.Weekday((i + 1) % 7)
		weekdays = append(weekdays, pterm.Bar{
			Label: d.String(),
			Value: st.ByWeekday[d],
		})
	}

	var phases pterm.Bars

	for _, pc := range st.ByPhase {
		phases = append(phases, pterm.Bar{
			Label: pc.Phase.Name,
			Value: pc.Count,
		})
	}

	var exercises pterm.Bars

	for _, ec := range st.ByExercise[:min(topExercises, len(st.ByExercise))] {
		exercises = append(exercises, pterm.Bar{
			Label: ec.Exercise.Name,
			Value: ec.Count,
		})
	}

	output := fmt.Sprint(
		header,
		statsSummary(st),
		statsBarChart("Weekday breakdown", weekdays),
		statsBarChart("Phase breakdown", phases),
		statsBarChart("Most practised", exercises),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	f, err := e.cfg.Filter(ctx, e.now)
	if err != nil {
		return err
	}

	st := tracker.Summarize(e.prog, e.logs, e.now, f.Days)

	if ctx.Bool("json") {
		return printJSON(config.Stdout, st)
	}

	printStats(config.Stdout, st)

	return nil
}
