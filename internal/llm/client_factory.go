package llm

import (
	"fmt"
	"time"

	"clubgraph/internal/config"
)

// Provider represents an LLM provider.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// NewClientFromConfig creates a Client from the loaded configuration.
func NewClientFromConfig(cfg config.LLMConfig, timeout time.Duration) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured; set OPENAI_API_KEY or GEMINI_API_KEY")
	}

	switch Provider(cfg.Provider) {
	case ProviderOpenAI, "":
		c := DefaultOpenAIConfig(cfg.APIKey)
		c.Temperature = cfg.Temperature
		c.Timeout = timeout
		if cfg.Model != "" {
			c.Model = cfg.Model
		}
		if cfg.BaseURL != "" {
			c.BaseURL = cfg.BaseURL
		}
		return NewOpenAIClientWithConfig(c), nil

	case ProviderGemini:
		c := DefaultGeminiConfig(cfg.APIKey)
		c.Temperature = cfg.Temperature
		c.Timeout = timeout
		if cfg.Model != "" {
			c.Model = cfg.Model
		}
		if cfg.BaseURL != "" {
			c.BaseURL = cfg.BaseURL
		}
		return NewGeminiClientWithConfig(c), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (valid: openai, gemini)", cfg.Provider)
	}
}
