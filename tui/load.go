package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rehabtrack/rehab/internal/exercisedb"
)

// DBLoader fetches the exercise database. Load never fails; it returns an
// empty table when nothing is available.
type DBLoader interface {
	Load(ctx context.Context) *exercisedb.Table
}

// DBLoadedMsg carries a freshly loaded exercise table.
type DBLoadedMsg struct {
	Table *exercisedb.Table
}

// LoadCmd loads the exercise database in the background.
func LoadCmd(ctx context.Context, l DBLoader) tea.Cmd {
	return func() tea.Msg {
		return DBLoadedMsg{Table: l.Load(ctx)}
	}
}
