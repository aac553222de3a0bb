// Package config loads dairydesk client configuration from
// ~/.dairydesk/config.yaml with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all dairydesk client settings.
type Config struct {
	// Backend REST API base URL.
	APIURL string `yaml:"api_url"`

	// Per-request timeout at the HTTP client boundary.
	Timeout time.Duration `yaml:"timeout"`

	// UI theme: "light", "dark" or "auto".
	Theme string `yaml:"theme"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the client log file.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the defaults used when no config file exists. The
// API URL points at a local development backend.
func DefaultConfig() *Config {
	return &Config{
		APIURL:  "http://localhost:8080",
		Timeout: 15 * time.Second,
		Theme:   "auto",
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// UnmarshalYAML decodes the config file form, where timeout is a duration
// string like "15s". Fields absent from the file keep their current values,
// which Load seeds with the defaults.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		APIURL  string        `yaml:"api_url"`
		Timeout string        `yaml:"timeout"`
		Theme   string        `yaml:"theme"`
		Logging LoggingConfig `yaml:"logging"`
	}
	raw.Logging = c.Logging
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.APIURL != "" {
		c.APIURL = raw.APIURL
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		c.Timeout = d
	}
	if raw.Theme != "" {
		c.Theme = raw.Theme
	}
	c.Logging = raw.Logging
	return nil
}

// DefaultPath returns the config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".dairydesk", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when it does
// not exist, then applies .env and environment overrides.
func Load(path string) (*Config, error) {
	// A .env in the working directory is a development convenience; missing
	// is the normal case.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file, matching how the
// backend address differs between dev and deployed setups.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DAIRYDESK_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("DAIRYDESK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("DAIRYDESK_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("DAIRYDESK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("DAIRYDESK_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}
