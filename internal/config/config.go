// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags. Scoring weights are fixed design constants and deliberately not
// configurable.
type Config struct {
	// Paths
	Job        string `json:"job,omitempty"`        // Path to job requirements JSON file
	Candidates string `json:"candidates,omitempty"` // Path to candidate profiles JSON file or directory
	Output     string `json:"output,omitempty"`     // Path to write the ranked list JSON to (default stdout)

	// Behavior
	Workers     int    `json:"workers,omitempty"`      // Scoring worker pool size (default 4)
	TopN        int    `json:"top_n,omitempty"`        // Candidates shown in the comparison summary
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed score breakdowns
	JSONLogs    bool   `json:"json_logs,omitempty"`    // Emit logs as JSON instead of console format
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the screening pool store
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

// Validate checks that the configuration has valid values. Required fields
// are checked by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Candidates != "" {
		if _, err := os.Stat(c.Candidates); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates path not found: %s", c.Candidates)
		}
	}

	return nil
}
