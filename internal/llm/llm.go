// Package llm provides clients for hosted language model services. Each
// client makes exactly one generation call per request; failures propagate
// to the caller without retries.
package llm

import (
	"context"
	"fmt"

	"github.com/rishabh-cloud/portfolio-api/internal/config"
)

// Client generates text for a single prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Params are fixed generation parameters, configured once and never derived
// from request input.
type Params struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// New selects a provider client from configuration.
func New(cfg config.LLMConfig) (Client, error) {
	params := Params{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
	}
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropic(cfg.APIKey, cfg.Model, params), nil
	case "openai":
		return NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model, params), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
