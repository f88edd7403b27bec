// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Supported LLM providers
const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// Default values applied by Defaults and MergeWithDefaults
const (
	DefaultProvider              = ProviderOllama
	DefaultModel                 = "mistral"
	DefaultOllamaURL             = "http://localhost:11434"
	DefaultWorkers               = 4
	DefaultMaxResumeChars        = 800
	DefaultRequestTimeoutSeconds = 120

	maxWorkers = 64
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Catalog
	Catalog string `json:"catalog,omitempty"` // Path to the job role catalog (.csv or .json)
	Role    string `json:"role,omitempty"`    // Default role title to screen against

	// Text generation
	Provider  string `json:"provider,omitempty"`   // "ollama" or "gemini"
	Model     string `json:"model,omitempty"`      // Model name; empty uses the provider default
	OllamaURL string `json:"ollama_url,omitempty"` // Base URL of the Ollama server
	APIKey    string `json:"api_key,omitempty"`    // Gemini API key

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Limits
	Workers               int `json:"workers,omitempty"`                 // Resumes processed concurrently
	MaxResumeChars        int `json:"max_resume_chars,omitempty"`        // Resume prefix sent to the model
	RequestTimeoutSeconds int `json:"request_timeout_seconds,omitempty"` // Per-request generation timeout

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed debug information
	JSONLogs bool `json:"json_logs,omitempty"` // Emit logs as JSON
}

// Defaults returns the configuration used when nothing else is specified.
func Defaults() Config {
	return Config{
		Provider:              DefaultProvider,
		OllamaURL:             DefaultOllamaURL,
		Workers:               DefaultWorkers,
		MaxResumeChars:        DefaultMaxResumeChars,
		RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Provider {
	case "", ProviderOllama, ProviderGemini:
	default:
		return fmt.Errorf("config error: unknown provider %q (want %q or %q)", c.Provider, ProviderOllama, ProviderGemini)
	}

	// Validate numeric ranges
	if c.Workers < 0 || c.Workers > maxWorkers {
		return fmt.Errorf("config error: 'workers' must be between 0 and %d", maxWorkers)
	}
	if c.MaxResumeChars < 0 {
		return fmt.Errorf("config error: 'max_resume_chars' must be non-negative")
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'request_timeout_seconds' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.OllamaURL == "" {
		result.OllamaURL = defaults.OllamaURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.MaxResumeChars == 0 {
		result.MaxResumeChars = defaults.MaxResumeChars
	}
	if result.RequestTimeoutSeconds == 0 {
		result.RequestTimeoutSeconds = defaults.RequestTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
