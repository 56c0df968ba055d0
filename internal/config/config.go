// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	AppsDir  string `json:"apps_dir,omitempty"` // Directory of generated job applications
	DataDir  string `json:"data_dir,omitempty"` // Directory for knowledge base, history, and saved analyses
	Codebase string `json:"codebase,omitempty"` // Codebase to analyze for current skills

	// Behavior
	// APIKey is the Gemini API key; empty means template recommendations.
	APIKey string `json:"api_key,omitempty"`
	// Output selects the report format.
	Output string `json:"output,omitempty" validate:"omitempty,oneof=markdown json"`
	// Verbose prints detailed progress.
	Verbose bool `json:"verbose,omitempty"`
	// NoAI forces the template recommendation fallback even with a key set.
	NoAI bool `json:"no_ai,omitempty"`

	// BaselineSkills fill in current skills not found in the knowledge base
	// or detected from the codebase. Values are skill levels.
	BaselineSkills map[string]string `json:"baseline_skills,omitempty" validate:"dive,oneof=none beginner intermediate advanced expert"`
}

// Load loads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Codebase != "" {
		if _, err := os.Stat(c.Codebase); os.IsNotExist(err) {
			return fmt.Errorf("config error: codebase directory not found: %s", c.Codebase)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Bool fields are not merged; CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.AppsDir == "" {
		result.AppsDir = defaults.AppsDir
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Codebase == "" {
		result.Codebase = defaults.Codebase
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.BaselineSkills == nil {
		result.BaselineSkills = defaults.BaselineSkills
	}

	return result
}
