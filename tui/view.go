package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rehabtrack/rehab/internal/models"
	"github.com/rehabtrack/rehab/internal/program"
	"github.com/rehabtrack/rehab/tracker"
)

var viewTitles = map[tracker.View]string{
	tracker.ViewToday:   "Today",
	tracker.ViewPhases:  "Phases",
	tracker.ViewHistory: "History",
}

func (m *Model) tabsView() string {
	tabs := make([]string, 0, len(tracker.Views))

	for _, v := range tracker.Views {
		if v == m.state.View {
			tabs = append(tabs, m.style.ActiveTab.Render(viewTitles[v]))
			continue
		}

		tabs = append(tabs, m.style.Tab.Render(viewTitles[v]))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Target formats the prescribed sets and reps of ex.
func Target(ex program.Exercise) string {
	switch {
	case ex.Sets > 0 && ex.Reps != "":
		return fmt.Sprintf("%d × %s", ex.Sets, ex.Reps)
	case ex.Reps != "":
		return ex.Reps
	case ex.Sets > 0:
		return fmt.Sprintf("%d sets", ex.Sets)
	default:
		return ""
	}
}

// Detail summarises the detailed fields of a record, or "" if it has none.
func Detail(rec models.LogRecord) string {
	var parts []string

	if rec.Sets != "" {
		parts = append(parts, "sets "+rec.Sets)
	}

	if rec.Reps != "" {
		parts = append(parts, "reps "+rec.Reps)
	}

	if rec.Pain > 0 {
		parts = append(parts, fmt.Sprintf("pain %d/%d", rec.Pain, tracker.MaxPain))
	}

	if label := tracker.EffortLabel(rec.Difficulty); label != "" {
		parts = append(parts, label)
	}

	if rec.Notes != "" {
		parts = append(parts, fmt.Sprintf("%q", rec.Notes))
	}

	return strings.Join(parts, " · ")
}

func (m *Model) itemView(it tracker.Item, selected bool) string {
	var s strings.Builder

	cursor := "  "
	if selected {
		cursor = m.style.Accent.Render("› ")
	}

	box := "[ ]"
	name := it.Exercise.Name

	switch {
	case it.Checked():
		box = m.style.Accent.Render("[✓]")
		name = m.style.Done.Render(name)
	case selected:
		name = m.style.Cursor.Render(name)
	}

	s.WriteString(cursor + box + " " + name)

	if target := Target(it.Exercise); target != "" {
		s.WriteString("  " + m.style.Hint.Render(target))
	}

	if it.Log != nil && it.Log.HasDetail() {
		detail := lipgloss.NewStyle().
			Foreground(painColor(it.Log.Pain)).
			Render(Detail(*it.Log))

		s.WriteString("\n      " + detail)
	}

	if it.Expanded {
		s.WriteString(m.expandedView(it))
	}

	return s.String()
}

func (m *Model) expandedView(it tracker.Item) string {
	var s strings.Builder

	indent := "\n      "

	if it.Exercise.Tip != "" {
		s.WriteString(indent + m.style.Accent.Render("Tip: ") + it.Exercise.Tip)
	}

	if entry, ok := m.lookup(it.Exercise.Name); ok {
		if entry.HasPoses() {
			start, end := entry.Poses()
			s.WriteString(indent + m.style.Hint.Render("Start: "+start))
			s.WriteString(indent + m.style.Hint.Render("End:   "+end))
		}

		for i, step := range entry.Instructions {
			s.WriteString(fmt.Sprintf("%s%d. %s", indent, i+1, step))
		}
	} else if m.loading {
		s.WriteString(indent + m.style.Hint.Render("Loading exercise database…"))
	}

	if it.Video != nil {
		s.WriteString(indent + "▶ " + it.Video.Label + " " + m.style.Hint.Render(it.Video.URL()))
	}

	return s.String()
}

func (m *Model) todayView() string {
	var s strings.Builder

	v := m.today()
	if v.Phase == nil {
		return m.style.Hint.Render("No phases configured")
	}

	s.WriteString(m.style.Title.Render(v.Phase.Emoji + " " + v.Phase.Name))

	if v.Phase.Subtitle != "" {
		s.WriteString(" " + v.Phase.Subtitle)
	}

	s.WriteString("  " + m.style.Hint.Render(v.Phase.Weeks+" · "+v.Date))
	s.WriteString("\n")

	if v.Bonus {
		s.WriteString(m.style.Hint.Render(fmt.Sprintf(
			"Daily draw: %d of %d · seed %d",
			len(v.Items),
			v.PoolSize,
			v.Seed,
		)))
	} else if len(v.Phase.Sessions) > 0 {
		s.WriteString(m.style.Hint.Render(fmt.Sprintf(
			"%s %s (%d/%d)",
			v.Session.Emoji,
			v.Session.Name,
			min(m.state.Session, len(v.Phase.Sessions)-1)+1,
			len(v.Phase.Sessions),
		)))
	}

	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(float64(v.Progress.Percent) / 100))
	s.WriteString(fmt.Sprintf(" %d/%d", v.Progress.Done, v.Progress.Total))
	s.WriteString("\n\n")

	if len(v.Items) == 0 {
		s.WriteString(m.style.Hint.Render("Nothing scheduled"))
	}

	for i, it := range v.Items {
		s.WriteString(m.itemView(it, i == m.state.Cursor))
		s.WriteString("\n")
	}

	if v.Progress.Complete() {
		s.WriteString("\n" + m.style.Title.Render("Session complete, well done!"))
	}

	bindings := []key.Binding{
		defaultKeymap.check,
		defaultKeymap.expand,
		defaultKeymap.log,
	}

	if v.Bonus {
		bindings = append(bindings, defaultKeymap.shuffle)
	} else if len(v.Phase.Sessions) > 1 {
		bindings = append(bindings, defaultKeymap.session)
	}

	bindings = append(bindings, defaultKeymap.next, defaultKeymap.quit)

	s.WriteString("\n" + m.help.ShortHelpView(bindings))

	return s.String()
}

func (m *Model) phasesView() string {
	var s strings.Builder

	for i, row := range tracker.Phases(m.prog, m.state) {
		ph := row.Phase
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ph.Color))

		cursor := "  "
		if i == m.state.Cursor {
			cursor = style.Render("› ")
		}

		title := style.Bold(true).Render(ph.Emoji + " " + ph.Name)
		if row.Current {
			title += m.style.Hint.Render(" (current)")
		}

		s.WriteString(cursor + title + " " + ph.Subtitle + "\n")

		summary := fmt.Sprintf(
			"%s · %d exercises in %d sessions",
			ph.Weeks,
			row.Total,
			row.Sessions,
		)

		if m.prog.IsBonus(ph) {
			summary = fmt.Sprintf(
				"%s · daily draw of %d from %d",
				ph.Weeks,
				m.prog.BonusQuota,
				len(ph.BonusPool),
			)
		}

		s.WriteString("    " + m.style.Hint.Render(summary) + "\n\n")
	}

	s.WriteString(m.help.ShortHelpView([]key.Binding{
		defaultKeymap.up,
		defaultKeymap.down,
		defaultKeymap.expand,
		defaultKeymap.next,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (m *Model) historyView() string {
	var s strings.Builder

	v := tracker.History(m.prog, m.logs, m.now(), m.days, m.limit)

	cells := make([]string, 0, len(v.Days))

	for _, d := range v.Days {
		mark := m.style.Hint.Render("·")
		if d.Count > 0 {
			mark = m.style.Accent.Render("■")
		}

		label := d.Date.Format("02")
		if d.IsToday {
			label = m.style.Cursor.Render(label)
		}

		cells = append(cells, lipgloss.JoinVertical(
			lipgloss.Center,
			label,
			mark,
			m.style.Hint.Render(fmt.Sprint(d.Count)),
		))
	}

	s.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		intersperse(cells, " ")...,
	))
	s.WriteString("\n\n")

	if len(v.Recent) == 0 {
		s.WriteString(m.style.Hint.Render("No exercises logged yet"))
	}

	for _, e := range v.Recent {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Phase.Color))

		line := fmt.Sprintf(
			"%s %s %s",
			m.style.Hint.Render(e.Date),
			style.Render(e.Phase.Emoji),
			e.Exercise.Name,
		)

		if detail := Detail(e.Record); detail != "" {
			line += "  " + lipgloss.NewStyle().
				Foreground(painColor(e.Record.Pain)).
				Render(detail)
		}

		s.WriteString(line + "\n")
	}

	s.WriteString("\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.next,
		defaultKeymap.quit,
	}))

	return s.String()
}

func intersperse(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)

	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}

		out = append(out, it)
	}

	return out
}

func (m *Model) View() string {
	var body string

	switch {
	case m.form != nil:
		body = m.form.View()
	case m.state.View == tracker.ViewPhases:
		body = m.phasesView()
	case m.state.View == tracker.ViewHistory:
		body = m.historyView()
	default:
		body = m.todayView()
	}

	view := m.tabsView() + "\n\n" + body

	if m.err != nil {
		view += "\n\n" + m.style.Error.Render(m.err.Error())
	}

	return m.style.Base.Render(view)
}
