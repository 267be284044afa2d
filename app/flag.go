package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	offlineFlag = &cli.BoolFlag{
		Name:  "offline",
		Usage: "Do not fetch the exercise database (a cached copy is still used by 'show')",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a session is complete",
	}

	phaseFlag = &cli.IntFlag{
		Name:    "phase",
		Aliases: []string{"p"},
		Usage:   "Phase to show, starting from 1 (default: program.start_phase)",
	}

	sessionFlag = &cli.IntFlag{
		Name:    "session",
		Aliases: []string{"s"},
		Usage:   "Session within the phase, starting from 1",
	}

	seedFlag = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "Seed of the daily draw, to repeat a previous draw",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print output in JSON format",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Show history from this date (e.g. '2 weeks ago' or 2026-10-01)",
	}

	periodFlag = &cli.StringFlag{
		Name:  "period",
		Usage: "Show history for a period: today, yesterday, 7days, 14days, 30days, 90days",
	}

	limitFlag = &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of recent records (default: display.recent_limit)",
	}

	setsFlag = &cli.StringFlag{
		Name:  "sets",
		Usage: "Sets completed",
	}

	repsFlag = &cli.StringFlag{
		Name:  "reps",
		Usage: "Reps or hold time per set",
	}

	painFlag = &cli.IntFlag{
		Name:  "pain",
		Usage: "Pain felt from 0 (none) to 10",
	}

	difficultyFlag = &cli.IntFlag{
		Name:    "difficulty",
		Aliases: []string{"effort"},
		Usage:   "Effort from 1 (easy) to 5 (max)",
	}

	notesFlag = &cli.StringFlag{
		Name:  "notes",
		Usage: "Free-form notes",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Day whose records are deleted (e.g. yesterday or 2026-10-15)",
		Value: "today",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	idsFlag = &cli.BoolFlag{
		Name:  "ids",
		Usage: "List every exercise ID instead of the phase overview",
	}
)

// logFlags are the flags that fill in a detailed record.
var logFlags = []string{"sets", "reps", "pain", "difficulty", "notes"}
