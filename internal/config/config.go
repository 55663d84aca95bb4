// Package config provides configuration loading and validation for the
// resume optimizer.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	UploadDir   string `json:"upload_dir,omitempty"`   // Staging directory for uploaded resumes
	OutputDir   string `json:"output_dir,omitempty"`   // Staging directory for rendered PDFs
	APIKey      string `json:"api_key,omitempty"`      // Anthropic API key
	Model       string `json:"model,omitempty"`        // Optimization model name
	MaxUploadMB int64  `json:"max_upload_mb,omitempty"` // Upload size cap in MiB
	CleanupMins int    `json:"cleanup_mins,omitempty"`  // Staged file age limit for cleanup, minutes
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Port:        8080,
		UploadDir:   "uploads",
		OutputDir:   "outputs",
		MaxUploadMB: 16,
		CleanupMins: 60,
	}
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
// are checked after merging, not here.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadMB < 0 {
		return fmt.Errorf("config error: 'max_upload_mb' must be non-negative")
	}
	if c.CleanupMins < 0 {
		return fmt.Errorf("config error: 'cleanup_mins' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}
	if result.CleanupMins == 0 {
		result.CleanupMins = defaults.CleanupMins
	}

	return result
}
