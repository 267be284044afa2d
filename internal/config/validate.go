package config

import (
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	minBonusQuota = 1
	maxBonusQuota = 20

	minHistoryDays = 1
	maxHistoryDays = 90

	minRecentLimit = 1
	maxRecentLimit = 500

	minDBTimeout = time.Second
	maxDBTimeout = 2 * time.Minute
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateProgram(); err != nil {
		return err
	}

	if err := c.validateExerciseDB(); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	level := strings.ToLower(strings.TrimSpace(c.Settings.LogLevel))
	if level != "" && !slices.Contains(logLevels, level) {
		return errInvalidLogLevel.Fmt(c.Settings.LogLevel)
	}

	return nil
}

func (c *Config) validateProgram() error {
	p := c.Program

	if p.StartPhase < 0 {
		return errInvalidRange.Fmt("start phase", 1, "the last phase", p.StartPhase)
	}

	if p.BonusPhase < 0 {
		return errInvalidRange.Fmt("bonus phase", 1, "the last phase", p.BonusPhase)
	}

	if p.BonusQuota < minBonusQuota || p.BonusQuota > maxBonusQuota {
		return errInvalidRange.Fmt(
			"bonus quota",
			minBonusQuota,
			maxBonusQuota,
			p.BonusQuota,
		)
	}

	return nil
}

func (c *Config) validateExerciseDB() error {
	db := c.ExerciseDB
	if !db.Enabled {
		return nil
	}

	for _, u := range []struct{ name, value string }{
		{"exercise database url", db.URL},
		{"exercise image base", db.ImageBase},
	} {
		parsed, err := url.Parse(u.value)
		if err != nil ||
			(parsed.Scheme != "http" && parsed.Scheme != "https") ||
			parsed.Host == "" {
			return errInvalidURL.Fmt(u.name, u.value)
		}
	}

	if db.Timeout < minDBTimeout || db.Timeout > maxDBTimeout {
		return errInvalidRange.Fmt(
			"exercise database timeout",
			minDBTimeout,
			maxDBTimeout,
			db.Timeout,
		)
	}

	if db.CacheTTL < 0 {
		return errInvalidRange.Fmt("cache ttl", 0, "any positive duration", db.CacheTTL)
	}

	return nil
}

func (c *Config) validateDisplay() error {
	d := c.Display

	if d.HistoryDays != 0 &&
		(d.HistoryDays < minHistoryDays || d.HistoryDays > maxHistoryDays) {
		return errInvalidRange.Fmt(
			"history days",
			minHistoryDays,
			maxHistoryDays,
			d.HistoryDays,
		)
	}

	if d.RecentLimit != 0 &&
		(d.RecentLimit < minRecentLimit || d.RecentLimit > maxRecentLimit) {
		return errInvalidRange.Fmt(
			"recent limit",
			minRecentLimit,
			maxRecentLimit,
			d.RecentLimit,
		)
	}

	return nil
}
