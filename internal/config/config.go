// Package config resolves client configuration for the heptuple CLI.
//
// The API base URL is resolved once at startup, in order of preference:
// environment override (HEPTUPLE_API_BASE or HEPTUPLE_API_URL), the config
// file (~/.heptuple/config.yaml, overridable with HEPTUPLE_CONFIG), then
// the hardcoded local default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/me/heptuple/pkg/heptuple"
)

const configFileName = "config.yaml"

// ClientConfig holds the resolved CLI configuration.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	LogLevel  string
	LogFormat string
}

// fileConfig is the YAML shape of the config file. Timeout is a Go
// duration string ("30s", "2m").
type fileConfig struct {
	BaseURL   string `yaml:"base_url"`
	Timeout   string `yaml:"timeout"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultClientConfig returns the built-in defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:   heptuple.DefaultBaseURL,
		Timeout:   heptuple.DefaultTimeout,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load resolves the client configuration from the environment and the
// config file. A missing config file is not an error; a malformed one is.
func Load() (ClientConfig, error) {
	cfg := DefaultClientConfig()

	path := os.Getenv("HEPTUPLE_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".heptuple", configFileName)
		}
	}

	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	// Environment overrides take precedence over the file.
	if base := os.Getenv("HEPTUPLE_API_BASE"); base != "" {
		cfg.BaseURL = base
	} else if base := os.Getenv("HEPTUPLE_API_URL"); base != "" {
		cfg.BaseURL = base
	}

	return cfg, nil
}

// mergeFile overlays the config file's values onto cfg. Unset fields keep
// their current values.
func mergeFile(cfg *ClientConfig, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.Timeout != "" {
		timeout, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("config file %s: invalid timeout %q: %w", path, fc.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	return nil
}
