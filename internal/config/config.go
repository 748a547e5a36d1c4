// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Operations accepted by the CLI.
var validOperations = map[string]bool{
	"correction": true,
	"rewrite":    true,
	"tone":       true,
	"detection":  true,
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Paths
	In     string `json:"in,omitempty"`      // Path to a raw response file
	InDir  string `json:"in_dir,omitempty"`  // Directory of raw response files (batch mode)
	Out    string `json:"out,omitempty"`     // Path to the output JSON file
	OutDir string `json:"out_dir,omitempty"` // Directory for batch output files

	// Behavior
	Operation string `json:"operation,omitempty"` // correction | rewrite | tone | detection
	Workers   int    `json:"workers,omitempty"`   // Batch parallelism (0 = number of CPUs)
	Verbose   bool   `json:"verbose,omitempty"`   // Print detailed parse information
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

// Validate checks that the configuration has valid values. Required fields are
// not checked here; the CLI enforces those after merging flags.
func (c *Config) Validate() error {
	if c.In != "" && c.InDir != "" {
		return fmt.Errorf("config error: 'in' and 'in_dir' are mutually exclusive")
	}

	if c.Operation != "" && !validOperations[c.Operation] {
		return fmt.Errorf("config error: unknown operation %q", c.Operation)
	}

	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	return nil
}
