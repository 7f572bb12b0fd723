package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient implements Client using the Anthropic Messages API.
type AnthropicClient struct {
	client anthropic.Client
	model  string
	params Params
}

// NewAnthropic creates an Anthropic-backed client.
func NewAnthropic(apiKey, model string, params Params) *AnthropicClient {
	if model == "" {
		model = "claude-3-5-haiku-latest"
	}
	return &AnthropicClient{
		client: anthropic.NewClient(anthropicoption.WithAPIKey(apiKey)),
		model:  model,
		params: params,
	}
}

// Generate sends the prompt as a single user message and returns the
// concatenated text blocks of the reply.
func (c *AnthropicClient) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(c.params.MaxTokens),
		Temperature: anthropic.Float(c.params.Temperature),
		TopP:        anthropic.Float(c.params.TopP),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("anthropic message: empty reply")
	}
	return b.String(), nil
}
