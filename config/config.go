// Package config provides configuration loading and management for the
// notagraph CLI. The library packages take no configuration; everything
// here shapes command output and lint strictness only.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/omrstudio/notagraph/export"
)

// Config represents the complete notagraph configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Lint   LintConfig   `yaml:"lint"`
}

// OutputConfig configures how class data is rendered
type OutputConfig struct {
	// Format is the default serialization format (json, yaml, turtle, names)
	Format string `yaml:"format"`
	// Verbose renders full descriptors where a bare name list would do
	Verbose bool `yaml:"verbose"`
}

// LintConfig configures data-quality checking
type LintConfig struct {
	// AllowFindings keeps the lint command's exit status zero even when
	// findings remain. The zero value is strict.
	AllowFindings bool `yaml:"allow_findings"`
	// Ignore lists class names whose findings are suppressed
	Ignore []string `yaml:"ignore"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:  string(export.FormatJSON),
			Verbose: false,
		},
		Lint: LintConfig{
			AllowFindings: false,
			Ignore:        nil,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	for _, name := range c.Lint.Ignore {
		if name == "" {
			return fmt.Errorf("lint.ignore entries must be class names, got an empty string")
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

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
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

// Merge merges another config into this one (other takes precedence for
// non-zero values; AllowFindings and Verbose can only be switched on,
// since an unset bool is indistinguishable from false)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Verbose {
		c.Output.Verbose = true
	}

	// Lint
	if other.Lint.AllowFindings {
		c.Lint.AllowFindings = true
	}
	if len(other.Lint.Ignore) > 0 {
		c.Lint.Ignore = other.Lint.Ignore
	}
}
