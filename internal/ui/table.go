package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

const barWidth = 20

func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// Bar renders a fixed-width progress bar for percent in [0, 100].
func Bar(percent int, hex string) string {
	percent = min(max(percent, 0), 100)
	filled := percent * barWidth / 100

	return Hex(hex, strings.Repeat("█", filled)) +
		Faint(strings.Repeat("░", barWidth-filled))
}
