// Package config loads and saves duofin's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/duofin/internal/logging"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// DefaultProjectionHorizon is how many years ahead projections look when no
// projection year is configured.
const DefaultProjectionHorizon = 10

// Config holds all duofin configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds household preferences.
type GeneralConfig struct {
	ProjectionYear int    `toml:"projection_year,omitempty"`
	Partner1Name   string `toml:"partner1_name,omitempty"`
	Partner2Name   string `toml:"partner2_name,omitempty"`
	Workbook       string `toml:"workbook,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "duofin")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "duofin")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ProjectionYear returns the projection year from DUOFIN_PROJECTION_YEAR,
// the config file, or now + DefaultProjectionHorizon, in that order.
// An unparsable env value is logged and skipped.
func ProjectionYear(cfg Config, now time.Time) int {
	y, set, err := EnvProjectionYear()
	if err != nil {
		logging.Get().Warn("ignoring DUOFIN_PROJECTION_YEAR", zap.Error(err))
	}
	if set && err == nil {
		return y
	}
	if cfg.General.ProjectionYear > 0 {
		return cfg.General.ProjectionYear
	}
	return now.Year() + DefaultProjectionHorizon
}

// EnvProjectionYear parses DUOFIN_PROJECTION_YEAR. set reports whether the
// variable is non-empty.
func EnvProjectionYear() (year int, set bool, err error) {
	env := strings.TrimSpace(os.Getenv("DUOFIN_PROJECTION_YEAR"))
	if env == "" {
		return 0, false, nil
	}
	y, err := strconv.Atoi(env)
	if err != nil {
		return 0, true, fmt.Errorf("DUOFIN_PROJECTION_YEAR %q is not a year", env)
	}
	return y, true, nil
}

// Workbook returns the workbook path from DUOFIN_WORKBOOK or the config file.
// Empty means in memory.
func Workbook(cfg Config) string {
	if env := os.Getenv("DUOFIN_WORKBOOK"); env != "" {
		return env
	}
	return cfg.General.Workbook
}

// LoadEnv reads KEY=value files (default ".env") into the environment.
// Missing files are skipped and variables already set are left alone.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("reading %s: %w", p, err)
		}
	}
	return nil
}
