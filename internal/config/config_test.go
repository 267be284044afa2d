package config_test

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/rehabtrack/rehab/internal/apperr"
	"github.com/rehabtrack/rehab/internal/config"
	"github.com/rehabtrack/rehab/internal/exercisedb"
	"github.com/rehabtrack/rehab/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Program: config.ProgramConfig{
			StartPhase: 1,
			BonusPhase: 2,
			BonusQuota: 3,
		},
		ExerciseDB: config.ExerciseDBConfig{
			Enabled:   true,
			URL:       exercisedb.DefaultURL,
			ImageBase: exercisedb.DefaultImageBase,
			CacheTTL:  168 * time.Hour,
			Timeout:   15 * time.Second,
		},
		Display: config.DisplayConfig{
			DarkTheme:   true,
			HistoryDays: 14,
			RecentLimit: 20,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Settings: config.SettingsConfig{
			LogLevel: "info",
		},
	}
}

func cliContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("test", flag.ContinueOnError)

	for k, v := range flags {
		_ = f.String(k, "", "")

		require.NoError(t, f.Set(k, v))
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "defaults should be written on first run")

	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	testutil.CopyFixture(t, "modified_config.yml", configPath)

	want := defaultConfig()
	want.Program.StartPhase = 2
	want.Program.BonusQuota = 4
	want.ExerciseDB.Enabled = false
	want.ExerciseDB.CacheTTL = 24 * time.Hour
	want.Display.HistoryDays = 30
	want.Settings.LogLevel = "debug"

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
	assert.Equal(t, slog.LevelDebug, cfg.Settings.Level())
}

func TestViperRejectsInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("program:\n    bonus_quota: 99\n"), 0o600)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bonus quota must be between 1 and 20")
}

func TestViperRejectsZeroQuota(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("program:\n    bonus_quota: 0\n"), 0o600)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bonus quota must be between 1 and 20, got 0")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{
			name:    "quota too large",
			mutate:  func(c *config.Config) { c.Program.BonusQuota = 21 },
			wantErr: true,
		},
		{
			name:    "zero quota",
			mutate:  func(c *config.Config) { c.Program.BonusQuota = 0 },
			wantErr: true,
		},
		{
			name:    "negative bonus phase",
			mutate:  func(c *config.Config) { c.Program.BonusPhase = -1 },
			wantErr: true,
		},
		{
			name:    "relative db url",
			mutate:  func(c *config.Config) { c.ExerciseDB.URL = "exercises.json" },
			wantErr: true,
		},
		{
			name: "db url ignored when disabled",
			mutate: func(c *config.Config) {
				c.ExerciseDB.Enabled = false
				c.ExerciseDB.URL = ""
			},
		},
		{
			name:    "timeout too short",
			mutate:  func(c *config.Config) { c.ExerciseDB.Timeout = time.Millisecond },
			wantErr: true,
		},
		{
			name:    "history too long",
			mutate:  func(c *config.Config) { c.Display.HistoryDays = 365 },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *config.Config) { c.Settings.LogLevel = "loud" },
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()
			tc.mutate(c)

			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)

				var appErr *apperr.Error
				assert.ErrorAs(t, err, &appErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCLIConfig(t *testing.T) {
	ctx := cliContext(t, map[string]string{
		"phase":   "2",
		"session": "1",
		"seed":    "42",
		"offline": "true",
	})

	cfg, err := config.New(
		config.WithViperConfig(filepath.Join(t.TempDir(), "config.yml")),
		config.WithCLIConfig(ctx),
	)
	require.NoError(t, err)

	assert.Equal(t, config.CLIConfig{
		Phase:   2,
		Session: 1,
		Seed:    42,
		HasSeed: true,
	}, cfg.CLI)
	assert.False(t, cfg.ExerciseDB.Enabled)
	assert.True(t, cfg.Notifications.Enabled)
}

func TestCLIConfigRejectsWideSeed(t *testing.T) {
	ctx := cliContext(t, map[string]string{"seed": "4294967296"})

	_, err := config.New(config.WithCLIConfig(ctx))
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		flags   map[string]string
		want    config.HistoryFilter
		wantErr bool
	}{
		{
			name: "defaults from display settings",
			want: config.HistoryFilter{Days: 14, Limit: 20},
		},
		{
			name:  "valid period",
			flags: map[string]string{"period": "7days"},
			want:  config.HistoryFilter{Days: 7, Limit: 20},
		},
		{
			name:  "period wins over since",
			flags: map[string]string{"period": "today", "since": "2026-10-01"},
			want:  config.HistoryFilter{Days: 1, Limit: 20},
		},
		{
			name:  "absolute since",
			flags: map[string]string{"since": "2026-10-10", "limit": "5"},
			want:  config.HistoryFilter{Days: 8, Limit: 5},
		},
		{
			name:    "unknown period",
			flags:   map[string]string{"period": "fortnight"},
			wantErr: true,
		},
		{
			name:    "since in the future",
			flags:   map[string]string{"since": "2026-12-01"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := defaultConfig().Filter(cliContext(t, tc.flags), now)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
