// Package config loads prata settings from ~/.prata/config.yaml with
// environment overrides. The file mainly carries reasoning-service
// credentials, so it is written owner-only, like a credentials file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Config holds every tunable of the app.
type Config struct {
	// Provider picks the reasoning-service backend: "gemini" or
	// "anthropic". Empty means: whichever backend has a key configured,
	// Gemini first.
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Timeout  string `yaml:"timeout,omitempty"`
	Debug    bool   `yaml:"debug,omitempty"`
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".prata"), nil
}

func configFilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file when present and applies environment
// overrides on top. A missing file is not an error.
func Load() (Config, error) {
	var cfg Config

	p, err := configFilePath()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// first run, defaults + env only
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("PRATA_PROVIDER")); v != "" {
		c.Provider = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("PRATA_MODEL")); v != "" {
		c.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("PRATA_BASE_URL")); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("PRATA_API_KEY")); v != "" {
		c.APIKey = v
	}

	// Provider-specific keys fill the gaps and settle an unset provider.
	if c.APIKey == "" {
		if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" {
			c.APIKey = v
			if c.Provider == "" {
				c.Provider = "gemini"
			}
		} else if v := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); v != "" {
			c.APIKey = v
			if c.Provider == "" {
				c.Provider = "anthropic"
			}
		}
	}
}

// Save writes the config file with owner-only permissions.
func (c Config) Save() error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	p, err := configFilePath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// RequestTimeout returns the reasoning-service call timeout, defaulting to
// two minutes when unset or unparsable.
func (c Config) RequestTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
		return d
	}
	return 2 * time.Minute
}
