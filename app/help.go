package app

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/rehabtrack/rehab/internal/pathutil"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("KEYS"),
		keysHelp(),
	)

	return description + usage + version + commands + options + env + keys
}

func envHelp() string {
	return fmt.Sprintf(`
REHAB_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

%s: use a separate set of config, database and log files (e.g. dev).

VISUAL, EDITOR: editor used by edit-config.`, pathutil.EnvName)
}

func keysHelp() string {
	return `
space/x check · enter details · l log · s shuffle the daily draw · n next session
1-9 pick a phase · tab/shift+tab switch view · q quit`
}
