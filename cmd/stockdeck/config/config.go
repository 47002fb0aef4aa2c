// Package config loads user preferences for the stockdeck TUI.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences.
type Config struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	AgentID string `yaml:"agent_id"`
	Theme   string `yaml:"theme"` // "light" or "dark"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8080/api",
		AgentID: "inventory-agent",
		Theme:   "light",
	}
}

// ConfigDir returns the directory where config is stored.
func ConfigDir() (string, error) {
	// Prefer project-local .stockdeck directory if present or creatable
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".stockdeck")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	// Fallback to home-level config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stockdeck"), nil
}

// ConfigFile returns the full path to the config file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from disk and applies environment overrides.
// Environment variables always beat file values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigFile()
	if err != nil {
		return applyEnv(cfg), err
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return applyEnv(cfg), err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return applyEnv(DefaultConfig()), err
		}
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv("STOCKDECK_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("STOCKDECK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("STOCKDECK_AGENT_ID"); v != "" {
		cfg.AgentID = v
	}
	if v := os.Getenv("STOCKDECK_THEME"); v != "" {
		cfg.Theme = v
	}
	return cfg
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigFile()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
