package ui

import (
	"github.com/pterm/pterm"

	"github.com/rehabtrack/rehab/internal/models"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Faint(a any) string {
	return pterm.Gray(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Hex colours a with a "#RRGGBB" phase colour, leaving it plain if the code
// does not parse.
func Hex(hex string, a any) string {
	rgb, err := pterm.NewRGBFromHEX(hex)
	if err != nil {
		return pterm.Sprint(a)
	}

	return rgb.Sprint(a)
}

// Pain colours a pain score by its band.
func Pain(pain int, a any) string {
	switch models.PainLevel(pain) {
	case models.PainLow:
		return Green(a)
	case models.PainMedium:
		return Yellow(a)
	case models.PainHigh:
		return Red(a)
	default:
		return Faint(a)
	}
}
