// Package llm provides centralized LLM configuration and client abstractions.
// Resume analysis can run against a hosted Gemini model or a local Ollama server.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction, basic summarization
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: parsing, structured output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOllama is a local Ollama server
	ProviderOllama Provider = "ollama"
)

const (
	// DefaultOllamaURL is where a local Ollama server listens by default
	DefaultOllamaURL = "http://localhost:11434"
	// DefaultOllamaModel is the model used when none is configured
	DefaultOllamaModel = "mistral"
	// DefaultTimeout bounds a single generation request
	DefaultTimeout = 120 * time.Second
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// BaseURL is the server address for HTTP providers
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns the default configuration (a local Ollama server)
func DefaultConfig() *Config {
	return DefaultOllamaConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Timeout: DefaultTimeout,
	}
}

// DefaultOllamaConfig returns the default Ollama configuration.
// Every tier maps to the same local model.
func DefaultOllamaConfig() *Config {
	return &Config{
		Provider: ProviderOllama,
		Models: map[ModelTier]string{
			TierLite:     DefaultOllamaModel,
			TierStandard: DefaultOllamaModel,
			TierAdvanced: DefaultOllamaModel,
		},
		BaseURL: DefaultOllamaURL,
		Timeout: DefaultTimeout,
	}
}

// ConfigFor returns the default configuration for provider with every tier
// overridden by model when model is non-empty.
func ConfigFor(provider Provider, model string) *Config {
	var cfg *Config
	switch provider {
	case ProviderGemini:
		cfg = DefaultGeminiConfig()
	default:
		cfg = DefaultOllamaConfig()
	}
	if model != "" {
		for tier := range cfg.Models {
			cfg.Models[tier] = model
		}
	}
	return cfg
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string),
		BaseURL:  c.BaseURL,
		Timeout:  c.Timeout,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
