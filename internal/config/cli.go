package config

import (
	"math"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Phase         int
	Session       int
	Seed          uint64
	HasSeed       bool
	NoColor       bool
	Offline       bool
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Phase:         ctx.Int("phase"),
			Session:       ctx.Int("session"),
			Seed:          ctx.Uint64("seed"),
			HasSeed:       ctx.IsSet("seed"),
			NoColor:       ctx.Bool("no-color"),
			Offline:       ctx.Bool("offline"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Phase < 0 {
		return errInvalidRange.Fmt("phase", 1, "the last phase", opts.Phase)
	}

	if opts.Session < 0 {
		return errInvalidRange.Fmt("session", 1, "the last session", opts.Session)
	}

	if opts.HasSeed && opts.Seed > math.MaxUint32 {
		return errInvalidSeed.Fmt(opts.Seed)
	}

	c.CLI = CLIConfig{
		Phase:   opts.Phase,
		Session: opts.Session,
		Seed:    uint32(opts.Seed),
		HasSeed: opts.HasSeed,
		NoColor: opts.NoColor,
	}

	if opts.Offline {
		c.ExerciseDB.Enabled = false
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	return nil
}
