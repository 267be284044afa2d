package tui

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles of the current phase.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Accent    lipgloss.Style
	Hint      lipgloss.Style
	Done      lipgloss.Style
	Cursor    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Error     lipgloss.Style
}

func newStyle(color string, dark bool) Style {
	accent := lipgloss.Color(color)

	hint := lipgloss.Color("#5C5C5C")
	text := lipgloss.Color("#1A1A1A")

	if dark {
		hint = lipgloss.Color("#8A8A8A")
		text = lipgloss.Color("#F2F2F2")
	}

	return Style{
		Base:   lipgloss.NewStyle().Padding(1, padding),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Accent: lipgloss.NewStyle().Foreground(accent),
		Hint:   lipgloss.NewStyle().Foreground(hint),
		Done: lipgloss.NewStyle().
			Foreground(hint).
			Strikethrough(true),
		Cursor: lipgloss.NewStyle().Bold(true).Foreground(text),
		Tab:    lipgloss.NewStyle().Padding(0, 1).Foreground(hint),
		ActiveTab: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#C94F4F")),
	}
}

// painColor maps a pain score to the colour of its band.
func painColor(pain int) lipgloss.Color {
	switch {
	case pain <= 0:
		return lipgloss.Color("#8A8A8A")
	case pain <= 3:
		return lipgloss.Color("#4A9B8E")
	case pain <= 6:
		return lipgloss.Color("#E8A838")
	default:
		return lipgloss.Color("#C94F4F")
	}
}
