// Package config manages graphol configuration with layered precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Check   CheckConfig   `yaml:"check"`
	Watch   WatchConfig   `yaml:"watch"`
}

// ProjectConfig locates the ontology project files
type ProjectConfig struct {
	// Paths are glob patterns for .graphol project files
	Paths []string `yaml:"paths"`
}

// CheckConfig configures check runs
type CheckConfig struct {
	// FailFast stops at the first file with diagnostics
	FailFast bool `yaml:"fail_fast"`
	// Profile is the OWL 2 profile name used for datatype lookups
	Profile string `yaml:"profile"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Debounce is how long to wait for more changes before re-checking,
	// as a duration string ("100ms", "1s")
	Debounce string `yaml:"debounce"`
}

// DefaultDebounce is used when no debounce is configured.
const DefaultDebounce = 100 * time.Millisecond

// GetDebounce parses the configured debounce, falling back to the default
// for empty or malformed values.
func (w WatchConfig) GetDebounce() time.Duration {
	if w.Debounce == "" {
		return DefaultDebounce
	}
	d, err := time.ParseDuration(w.Debounce)
	if err != nil {
		return DefaultDebounce
	}
	return d
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Paths: []string{"."},
		},
		Check: CheckConfig{
			FailFast: false,
			Profile:  "OWL 2",
		},
		Watch: WatchConfig{
			Debounce: "100ms",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Project.Paths) == 0 {
		return fmt.Errorf("project.paths is required")
	}
	if c.Check.Profile == "" {
		return fmt.Errorf("check.profile is required")
	}
	if c.Watch.Debounce != "" {
		d, err := time.ParseDuration(c.Watch.Debounce)
		if err != nil {
			return fmt.Errorf("watch.debounce is not a duration: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("watch.debounce must not be negative")
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Project.Paths) > 0 {
		c.Project.Paths = other.Project.Paths
	}

	if other.Check.FailFast {
		c.Check.FailFast = true
	}
	if other.Check.Profile != "" {
		c.Check.Profile = other.Check.Profile
	}

	if other.Watch.Debounce != "" {
		c.Watch.Debounce = other.Watch.Debounce
	}
}
