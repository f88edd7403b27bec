package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvDatabaseURL  = "DATABASE_URL"
	EnvOllamaURL    = "OLLAMA_URL"
	EnvOllamaModel  = "OLLAMA_MODEL"
	EnvWorkers      = "SCREENER_WORKERS"
)

// FromEnv builds a Config from environment variables.
// Unset variables leave their fields empty so the result can be used as merge defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		APIKey:      os.Getenv(EnvGeminiAPIKey),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		OllamaURL:   os.Getenv(EnvOllamaURL),
		Model:       os.Getenv(EnvOllamaModel),
	}

	if workersStr := os.Getenv(EnvWorkers); workersStr != "" {
		workers, err := strconv.Atoi(workersStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %v", EnvWorkers, err)
		}
		if workers < 1 {
			return Config{}, fmt.Errorf("%s must be at least 1, got: %d", EnvWorkers, workers)
		}
		cfg.Workers = workers
	}

	return cfg, nil
}

// Resolve layers a config: explicit values first, then environment, then built-in defaults.
func Resolve(explicit *Config) (Config, error) {
	if explicit == nil {
		explicit = &Config{}
	}
	env, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	withEnv := explicit.MergeWithDefaults(env)
	merged := withEnv.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
