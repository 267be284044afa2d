package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	up      key.Binding
	down    key.Binding
	check   key.Binding
	expand  key.Binding
	log     key.Binding
	shuffle key.Binding
	session key.Binding
	phase   key.Binding
	next    key.Binding
	prev    key.Binding
	esc     key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	check: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "check"),
	),
	expand: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	log: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "log"),
	),
	shuffle: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "shuffle"),
	),
	session: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next session"),
	),
	phase: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "phase"),
	),
	next: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab", "next view"),
	),
	prev: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab", "prev view"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
