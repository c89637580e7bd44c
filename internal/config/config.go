// Package config loads tiny CLI settings from TINY_* environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "TINY"

// Config holds all CLI configuration. Nested struct fields extend the
// variable name, so Log.Level is read from TINY_LOG_LEVEL.
type Config struct {
	Debug  string // TINY_DEBUG: debug log file; empty disables logging
	Log    LogConfig
	Bundle BundleConfig
}

// LogConfig controls debug log formatting.
type LogConfig struct {
	Level string `default:"debug"` // TINY_LOG_LEVEL
	Dev   bool   `default:"false"` // TINY_LOG_DEV
}

// BundleConfig controls bundle lookups.
type BundleConfig struct {
	Cache   bool   `default:"true"` // TINY_BUNDLE_CACHE
	Pattern string `default:"**"`   // TINY_BUNDLE_PATTERN
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "debug",
		},
		Bundle: BundleConfig{
			Cache:   true,
			Pattern: "**",
		},
	}
}

// DebugEnabled reports whether a debug log path is configured.
func (c *Config) DebugEnabled() bool {
	return c.Debug != ""
}
