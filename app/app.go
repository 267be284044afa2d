// Package app wires the command-line interface of rehab.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/rehabtrack/rehab/internal/config"
	"github.com/rehabtrack/rehab/internal/pathutil"
)

const (
	envNoColor      = "NO_COLOR"
	envRehabNoColor = "REHAB_NO_COLOR"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the rehab app instance.
func Get() *cli.App {
	rehabApp := &cli.App{
		Name: "rehab",
		Usage: `
		Rehab is a command-line tracker for a phased rehabilitation exercise
		programme. Check off the day's exercises, log sets, reps, pain and
		effort, and review your history.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "today",
				Usage: "Print today's exercises and progress",
				Flags: []cli.Flag{
					phaseFlag,
					sessionFlag,
					seedFlag,
					jsonFlag,
				},
				Action: todayAction,
			},
			{
				Name:      "check",
				Usage:     "Toggle today's completion of an exercise",
				ArgsUsage: "<exercise-id>",
				Action:    checkAction,
			},
			{
				Name:      "log",
				Usage:     "Record sets, reps, pain, effort and notes for an exercise",
				ArgsUsage: "<exercise-id>",
				Flags: []cli.Flag{
					setsFlag,
					repsFlag,
					painFlag,
					difficultyFlag,
					notesFlag,
				},
				Action: logAction,
			},
			{
				Name:      "show",
				Usage:     "Show the instructions, images and video for an exercise",
				ArgsUsage: "<exercise-id>",
				Action:    showAction,
			},
			{
				Name:  "history",
				Usage: "Print the calendar of completed exercises and recent records",
				Flags: []cli.Flag{
					sinceFlag,
					periodFlag,
					limitFlag,
					jsonFlag,
				},
				Action: historyAction,
			},
			{
				Name: "stats",
				Usage: `
				Summarise completed exercises, streaks and pain over a period.
				Defaults to display.history_days`,
				Flags: []cli.Flag{
					sinceFlag,
					periodFlag,
					jsonFlag,
				},
				Action: statsAction,
			},
			{
				Name:   "phases",
				Usage:  "Print an overview of the programme",
				Flags:  []cli.Flag{idsFlag, jsonFlag},
				Action: phasesAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete the records of a day",
				ArgsUsage: "[exercise-id...]",
				Flags:     []cli.Flag{dateFlag, yesFlag},
				Action:    deleteAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			phaseFlag,
			sessionFlag,
			seedFlag,
			offlineFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return rehabApp
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if REHAB_NO_COLOR is set
	if _, exists := os.LookupEnv(envRehabNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return fmt.Errorf("%w: %w", errInitPaths, err)
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting rehab")

	return nil
}
