// Package config loads solver settings from an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jeandeducla/stickpath/internal/stickpath"
)

// Config is the top-level solver configuration.
type Config struct {
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
}

// LimitsConfig bounds the declared diagram dimensions.
type LimitsConfig struct {
	MinWidth  int `yaml:"min_width"`
	MaxHeight int `yaml:"max_height"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MinWidth:  stickpath.DefaultLimits.MinWidth,
			MaxHeight: stickpath.DefaultLimits.MaxHeight,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies STICKPATH_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv("STICKPATH_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v := os.Getenv("STICKPATH_MIN_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid STICKPATH_MIN_WIDTH %q: %w", v, err)
		}
		c.Limits.MinWidth = n
	}
	if v := os.Getenv("STICKPATH_MAX_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid STICKPATH_MAX_HEIGHT %q: %w", v, err)
		}
		c.Limits.MaxHeight = n
	}
	return nil
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Limits.MinWidth < 1 {
		return fmt.Errorf("limits.min_width must be at least 1, got %d", c.Limits.MinWidth)
	}
	if c.Limits.MaxHeight < 3 {
		return fmt.Errorf("limits.max_height must be at least 3, got %d", c.Limits.MaxHeight)
	}

	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
}

// GridLimits converts the limits section for the acceptance gate.
func (c *Config) GridLimits() stickpath.Limits {
	return stickpath.Limits{MinWidth: c.Limits.MinWidth, MaxHeight: c.Limits.MaxHeight}
}
