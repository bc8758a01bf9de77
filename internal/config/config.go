// Package config handles reading and writing .saleslens/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .saleslens/config.yaml.
type Config struct {
	Version   int              `yaml:"version"`
	API       APIConfig        `yaml:"api"`
	Directory []DirectoryEntry `yaml:"directory"`
	Log       LogConfig        `yaml:"log"`
}

// APIConfig points the client at the SalesLens backend.
type APIConfig struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// DirectoryEntry maps a customer name to company and role. This replaces
// the hard-coded lookup table the dashboard shipped with; names missing
// from the directory resolve to "Unknown Company" and an empty role.
type DirectoryEntry struct {
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
	Role    string `yaml:"role,omitempty"`
}

// LogConfig controls the JSONL event log.
type LogConfig struct {
	Enabled bool `yaml:"enabled"`
}

// configFileName is the path relative to the base directory.
const configDir = ".saleslens"
const configFile = "config.yaml"

// Timeout returns the API timeout as a duration, or zero when unset so the
// api package can apply its own default.
func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutMS <= 0 {
		return 0
	}
	return time.Duration(a.TimeoutMS) * time.Millisecond
}

// ReadConfig reads .saleslens/config.yaml from the given base directory.
// dir is typically the user's home directory (not .saleslens/ itself).
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to .saleslens/config.yaml in the given base directory.
// Creates the .saleslens/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults,
// including the demo customer directory.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			BaseURL:   "http://localhost:8000",
			TimeoutMS: 15000,
		},
		Directory: []DirectoryEntry{
			{Name: "David Park", Company: "Park Retail Group", Role: "Director of Finance"},
			{Name: "James Chen", Company: "Nexus Technologies", Role: "CEO & Co-Founder"},
			{Name: "Maria Gonzalez", Company: "Sunrise Health Network", Role: "HR Director"},
			{Name: "Sarah Williams", Company: "Acme Enterprises", Role: "VP of Operations"},
		},
		Log: LogConfig{
			Enabled: true,
		},
	}
}
