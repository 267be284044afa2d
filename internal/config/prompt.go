package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/rehabtrack/rehab/internal/program"
)

const asciiLogo = `
██████╗ ███████╗██╗  ██╗ █████╗ ██████╗
██╔══██╗██╔════╝██║  ██║██╔══██╗██╔══██╗
██████╔╝█████╗  ███████║███████║██████╔╝
██╔══██╗██╔══╝  ██╔══██║██╔══██║██╔══██╗
██║  ██║███████╗██║  ██║██║  ██║██████╔╝
╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝`

// PromptOptions holds the user's responses to the first-run prompts.
type PromptOptions struct {
	StartPhase int
	BonusQuota int
}

// WithPromptConfig returns an Option that asks for the starting phase and the
// size of the daily draw when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser(program.Default())
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

func promptUser(prog *program.Program) (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to set up rehab for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'rehab edit-config' to change any settings.`, " ").
		Render()

	phases := make([]huh.Option[int], 0, len(prog.Phases))
	for i := range prog.Phases {
		ph := &prog.Phases[i]
		label := fmt.Sprintf("%s %s (%s)", ph.Emoji, ph.Name, ph.Weeks)
		phases = append(phases, huh.NewOption(label, ph.ID).Selected(i == 0))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which phase are you starting in?").
				Options(phases...).
				Value(&opts.StartPhase),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Exercises in the daily draw").
				Options(
					huh.NewOption("2 exercises", 2),
					huh.NewOption("3 exercises", 3).Selected(true),
					huh.NewOption("4 exercises", 4),
					huh.NewOption("5 exercises", 5),
				).
				Value(&opts.BonusQuota),
		),
	)

	if err := form.Run(); err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Program.StartPhase = opts.StartPhase
	c.Program.BonusQuota = opts.BonusQuota
}
