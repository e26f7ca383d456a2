// Package config resolves the tool's configuration from an optional YAML
// file and the environment. The environment always wins, which is also how
// the store's ambient credentials arrive (KVBACKUP_STORE carries the
// locator, token included for HTTP stores).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load.
const (
	EnvConfig   = "KVBACKUP_CONFIG"
	EnvStore    = "KVBACKUP_STORE"
	EnvOutput   = "KVBACKUP_OUTPUT"
	EnvLogLevel = "KVBACKUP_LOG_LEVEL"
)

// DefaultOutput is the backup filename used when nothing is configured.
const DefaultOutput = "database_backup.json"

// Config holds everything the CLI needs to run.
type Config struct {
	// Store is the store locator, e.g. sqlite:/var/lib/app/data.db or
	// https://kv.example.com/v0/<token>. No default; the environment or
	// the caller must supply one.
	Store string `yaml:"store"`

	// Output is the backup file path, relative to the working directory
	// unless absolute.
	Output string `yaml:"output"`

	// LogLevel controls diagnostics on stderr: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Load reads the YAML file at path (or $KVBACKUP_CONFIG when path is
// empty; no file at all is fine), applies environment overrides, then
// defaults. A configured path that cannot be read is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse configuration file %q: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvStore); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}
