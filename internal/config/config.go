// Package config loads almanac settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	m "github.com/mouse-blink/almanac/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. ALMANAC_PARALLEL.
const EnvPrefix = "ALMANAC"

// HistoryConfig controls the solve history database.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// WatchConfig controls `solve --watch`.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all runtime configuration.
// Values are populated from .almanac.yaml, ALMANAC_* env vars, and CLI flags.
type Config struct {
	Mode        string        `mapstructure:"mode"`
	Parallel    int           `mapstructure:"parallel"`
	LogLevel    string        `mapstructure:"log_level"`
	LogFormat   string        `mapstructure:"log_format"`
	Strict      bool          `mapstructure:"strict"`
	AnySections bool          `mapstructure:"any_sections"`
	Sections    []string      `mapstructure:"sections"`
	History     HistoryConfig `mapstructure:"history"`
	Watch       WatchConfig   `mapstructure:"watch"`
}

// Init points viper at the config file and the environment. With an empty
// cfgFile it looks for .almanac.yaml in the working directory and then the
// home directory; a missing file is not an error in that case.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".almanac")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	bindEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	bindEnv()

	viper.SetDefault("mode", string(m.SeedRanges))
	viper.SetDefault("parallel", 1)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("strict", false)
	viper.SetDefault("any_sections", false)
	viper.SetDefault("sections", []string{})
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.path", defaultHistoryPath())
	viper.SetDefault("watch.debounce", 100*time.Millisecond)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := m.ParseSeedMode(c.Mode); err != nil {
		return fmt.Errorf("config mode: %w", err)
	}

	if c.Parallel < 1 {
		return fmt.Errorf("config parallel: must be at least 1, got %d", c.Parallel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config log_format: want text or json, got %q", c.LogFormat)
	}

	if c.History.Enabled && c.History.Path == "" {
		return errors.New("config history.path: must be set when history is enabled")
	}

	return nil
}

// SeedMode returns the parsed mode. Call after Validate.
func (c Config) SeedMode() m.SeedMode {
	mode, _ := m.ParseSeedMode(c.Mode)
	return mode
}

func bindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".almanac", "history.db")
	}

	return filepath.Join(home, ".almanac", "history.db")
}
