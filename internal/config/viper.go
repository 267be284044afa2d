package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/rehabtrack/rehab/internal/exercisedb"
)

const (
	keyStartPhase           = "program.start_phase"
	keyBonusPhase           = "program.bonus_phase"
	keyBonusQuota           = "program.bonus_quota"
	keyDBEnabled            = "exercisedb.enabled"
	keyDBURL                = "exercisedb.url"
	keyDBImageBase          = "exercisedb.image_base"
	keyDBCacheTTL           = "exercisedb.cache_ttl"
	keyDBTimeout            = "exercisedb.timeout"
	keyDarkTheme            = "display.dark_theme"
	keyHistoryDays          = "display.history_days"
	keyRecentLimit          = "display.recent_limit"
	keyNotificationsEnabled = "notifications.enabled"
	keyLogLevel             = "settings.log_level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there first if it is missing.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers defaults and any values chosen at the first-run
// prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyStartPhase, 1)
	v.SetDefault(keyBonusPhase, 2)
	v.SetDefault(keyBonusQuota, 3)
	v.SetDefault(keyDBEnabled, true)
	v.SetDefault(keyDBURL, exercisedb.DefaultURL)
	v.SetDefault(keyDBImageBase, exercisedb.DefaultImageBase)
	v.SetDefault(keyDBCacheTTL, "168h")
	v.SetDefault(keyDBTimeout, "15s")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyHistoryDays, 14)
	v.SetDefault(keyRecentLimit, 20)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyLogLevel, "info")

	if c.Program.StartPhase != 0 {
		v.Set(keyStartPhase, c.Program.StartPhase)
	}

	if c.Program.BonusQuota != 0 {
		v.Set(keyBonusQuota, c.Program.BonusQuota)
	}
}

func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
