// Package config loads toolkit configuration from TOML files and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config validation errors.
var (
	// ErrBadLogLevel indicates an unknown log level name.
	ErrBadLogLevel = errors.New("unknown log level")

	// ErrBadFieldWidth indicates a non-positive edit field width.
	ErrBadFieldWidth = errors.New("field width must be positive")
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TUIKIT_"

// Config holds the toolkit settings a frame driver can tune.
type Config struct {
	// LogLevel is the minimum level written to the log sink
	// (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// LogFile is where logs go when debugging. Empty disables logging,
	// which is the default: a TUI owns the terminal, so stderr is useless.
	LogFile string `toml:"log_file"`

	// Theme is the path of a JSON theme file. Empty uses the built-in theme.
	Theme string `toml:"theme"`

	// FieldWidth is the fixed display width of edit fields, in columns.
	FieldWidth int `toml:"field_width"`

	// NextKeys lists characters that move focus forward when no widget has
	// captured input, in addition to Tab/Down.
	NextKeys string `toml:"next_keys"`

	// PrevKeys lists characters that move focus backward, in addition to
	// Shift-Tab/Up.
	PrevKeys string `toml:"prev_keys"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel:   "info",
		FieldWidth: 20,
	}
}

// Load reads a configuration file, overlays environment variables on top of
// it, and validates the result. An empty path skips the file and applies
// only defaults and environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays TUIKIT_* environment variables.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "THEME"); ok {
		c.Theme = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "FIELD_WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadFieldWidth, v)
		}
		c.FieldWidth = n
	}
	if v, ok := os.LookupEnv(EnvPrefix + "NEXT_KEYS"); ok {
		c.NextKeys = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PREV_KEYS"); ok {
		c.PrevKeys = v
	}
	return nil
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}
	if c.FieldWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrBadFieldWidth, c.FieldWidth)
	}
	return nil
}
