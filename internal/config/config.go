// Package config provides configuration loading and validation for the
// resume builder CLI and its collaborator clients.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings of the presentation layer. All fields are
// optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Persistence collaborator
	APIBaseURL  string `json:"api_base_url,omitempty"` // REST collaborator base URL
	APIToken    string `json:"api_token,omitempty"`    // bearer token
	DatabaseURL string `json:"database_url,omitempty"` // direct PostgreSQL persistence (alternative to the REST API)
	UserID      string `json:"user_id,omitempty"`      // user UUID for DB-backed persistence

	// Export
	ChromePath    string `json:"chrome_path,omitempty"`    // Chrome/Chromium binary for capture
	ExportTimeout string `json:"export_timeout,omitempty"` // Go duration string, default 60s
	Template      string `json:"template,omitempty"`       // template override for this session
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

// FromEnv builds a Config from environment variables, loading a .env file
// first when one is present (missing .env is not an error).
func FromEnv() *Config {
	_ = godotenv.Load()
	return &Config{
		APIBaseURL:    os.Getenv("RESUME_API_URL"),
		APIToken:      os.Getenv("RESUME_API_TOKEN"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		UserID:        os.Getenv("RESUME_USER_ID"),
		ChromePath:    os.Getenv("CHROME_PATH"),
		ExportTimeout: os.Getenv("EXPORT_TIMEOUT"),
		Template:      os.Getenv("RESUME_TEMPLATE"),
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" && c.DatabaseURL == "" {
		return fmt.Errorf("config error: one of 'api_base_url' or 'database_url' is required")
	}
	if c.DatabaseURL != "" && c.UserID == "" {
		return fmt.Errorf("config error: 'user_id' is required with 'database_url'")
	}
	if c.ExportTimeout != "" {
		if _, err := time.ParseDuration(c.ExportTimeout); err != nil {
			return fmt.Errorf("config error: invalid 'export_timeout': %w", err)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values underneath CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.APIToken == "" {
		result.APIToken = defaults.APIToken
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.ExportTimeout == "" {
		result.ExportTimeout = defaults.ExportTimeout
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}

	return result
}

// ExportTimeoutDuration returns the parsed export timeout, defaulting to
// 60s for empty or invalid values.
func (c *Config) ExportTimeoutDuration() time.Duration {
	if c.ExportTimeout == "" {
		return 60 * time.Second
	}
	d, err := time.ParseDuration(c.ExportTimeout)
	if err != nil {
		return 60 * time.Second
	}
	return d
}
