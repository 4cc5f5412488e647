// Package config loads the computor settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// EnvPath overrides the settings file location.
	EnvPath = "COMPUTOR_CONFIG"
	// EnvLogLevel overrides log_level from the file.
	EnvLogLevel = "COMPUTOR_LOG_LEVEL"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type Config struct {
	UseFractions bool   `toml:"use_fractions"`
	NoLabels     bool   `toml:"no_labels"`
	Quiet        bool   `toml:"quiet"`
	ShowSteps    bool   `toml:"show_steps"`
	Color        bool   `toml:"color"`
	LogLevel     string `toml:"log_level"`
	HistoryFile  string `toml:"history_file"`

	// file is where the settings were looked up, set by Load.
	file string
}

func Default() *Config {
	return &Config{
		Color:    true,
		LogLevel: "warn",
	}
}

// Path returns $COMPUTOR_CONFIG, else computor/config.toml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}

	return filepath.Join(dir, "computor", "config.toml"), nil
}

// Load reads the file at path on top of the defaults. An empty path means Path().
// A missing file yields the defaults. The log level environment override is applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return nil, err
		}

		path = p
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			cfg = Default()
		} else {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	cfg.file = path
	cfg.ApplyEnvOverrides()

	if _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) ApplyEnvOverrides() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.LogLevel = lvl
	}
}

// Level parses LogLevel. Empty means warn.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
}

// File returns the settings file Load read, or would have read had it existed.
func (c *Config) File() string { return c.file }

// History returns the REPL history file, defaulting to history next to the settings file.
func (c *Config) History() string {
	if c.HistoryFile != "" {
		return c.HistoryFile
	}

	file := c.file
	if file == "" {
		p, err := Path()
		if err != nil {
			return ""
		}

		file = p
	}

	return filepath.Join(filepath.Dir(file), "history")
}
