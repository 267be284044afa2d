package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/rehabtrack/rehab/internal/models"
	"github.com/rehabtrack/rehab/internal/program"
	"github.com/rehabtrack/rehab/tracker"
)

// NewLogForm builds the detailed log form for ex, bound to e. The caller
// either runs it standalone or embeds it in the TUI.
func NewLogForm(ex program.Exercise, e *tracker.Entry) *huh.Form {
	pain := make([]huh.Option[int], 0, tracker.MaxPain+1)
	for p := 0; p <= tracker.MaxPain; p++ {
		pain = append(pain, huh.NewOption(painOptionLabel(p), p))
	}

	effort := []huh.Option[int]{huh.NewOption("not set", 0)}
	for d := 1; d <= tracker.MaxDifficulty; d++ {
		effort = append(effort, huh.NewOption(
			fmt.Sprintf("%d %s", d, tracker.EffortLabel(d)), d,
		))
	}

	target := ex.Reps
	if ex.Sets > 0 {
		target = fmt.Sprintf("%d × %s", ex.Sets, ex.Reps)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(ex.Name).
				Description("Target: "+target),
			huh.NewInput().
				Title("Sets").
				Placeholder(fmt.Sprint(ex.Sets)).
				Value(&e.Sets),
			huh.NewInput().
				Title("Reps").
				Placeholder(ex.Reps).
				Value(&e.Reps),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Pain").
				Options(pain...).
				Value(&e.Pain),
			huh.NewSelect[int]().
				Title("Effort").
				Options(effort...).
				Value(&e.Difficulty),
			huh.NewText().
				Title("Notes").
				CharLimit(500).
				Value(&e.Notes),
		),
	)
}

func painOptionLabel(p int) string {
	switch models.PainLevel(p) {
	case models.PainNone:
		return "0 none"
	case models.PainLow:
		return fmt.Sprintf("%d low", p)
	case models.PainMedium:
		return fmt.Sprintf("%d moderate", p)
	default:
		return fmt.Sprintf("%d high", p)
	}
}
