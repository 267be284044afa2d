package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Program       ProgramConfig      `mapstructure:"program"`
		ExerciseDB    ExerciseDBConfig   `mapstructure:"exercisedb"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		CLI           CLIConfig
		System        SystemConfig
	}

	// ProgramConfig holds settings for the exercise programme.
	ProgramConfig struct {
		StartPhase int `mapstructure:"start_phase"`
		BonusPhase int `mapstructure:"bonus_phase"`
		BonusQuota int `mapstructure:"bonus_quota"`
	}

	// ExerciseDBConfig controls where exercise images and instructions come
	// from and how long a downloaded copy is trusted.
	ExerciseDBConfig struct {
		Enabled   bool          `mapstructure:"enabled"`
		URL       string        `mapstructure:"url"`
		ImageBase string        `mapstructure:"image_base"`
		CacheTTL  time.Duration `mapstructure:"cache_ttl"`
		Timeout   time.Duration `mapstructure:"timeout"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme   bool `mapstructure:"dark_theme"`
		HistoryDays int  `mapstructure:"history_days"`
		RecentLimit int  `mapstructure:"recent_limit"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	SettingsConfig struct {
		LogLevel string `mapstructure:"log_level"`
	}

	// CLIConfig holds per-invocation overrides. Phase and Session are
	// 1-based; zero means unset.
	CLIConfig struct {
		Phase   int
		Session int
		Seed    uint32
		HasSeed bool
		NoColor bool
	}

	// SystemConfig holds system-related settings.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.4.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", errConfigOption, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}

// WithSystemPaths records where the config, database and log files live.
func WithSystemPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath: configPath,
			DBPath:     dbPath,
			LogPath:    logPath,
		}

		return nil
	}
}

// Level maps the configured log level to a slog level.
func (s SettingsConfig) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(s.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
