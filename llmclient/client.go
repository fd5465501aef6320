// Package llmclient wraps a langchaingo model into the simple
// prompt-in, text-out contract the agent loop consumes.
package llmclient

import (
	"context"

	"github.com/effective-security/wayfarer/pkg/metricskey"
	"github.com/effective-security/x/slices"
	"github.com/effective-security/xlog"
	"github.com/tmc/langchaingo/llms"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/wayfarer", "llmclient")

// FailureText is returned in place of model output when the completion
// service cannot be reached. It flows into the action parser like any
// other model output; the underlying cause is only preserved in logs.
const FailureText = "Error: Failed to call language model service."

// ModelClient sends one prompt to the completion service and returns the
// raw text response. Implementations do not return Go errors; a failed
// call yields FailureText.
type ModelClient interface {
	Generate(ctx context.Context, prompt, systemPrompt string) string
}

// Client is the langchaingo-backed ModelClient.
type Client struct {
	model llms.Model
	name  string
}

var _ ModelClient = (*Client)(nil)

// New creates a client for the given model.
// The name is used for logs and metrics only.
func New(model llms.Model, name string) *Client {
	return &Client{
		model: model,
		name:  name,
	}
}

// Name returns the model name.
func (c *Client) Name() string {
	return c.name
}

// Generate implements ModelClient.
func (c *Client) Generate(ctx context.Context, prompt, systemPrompt string) string {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	metricskey.StatsLLMCalls.IncrCounter(1, c.name)

	resp, err := c.model.GenerateContent(ctx, messages)
	if err != nil {
		metricskey.StatsLLMCallsFailed.IncrCounter(1, c.name)
		logger.ContextKV(ctx, xlog.ERROR,
			"status", "llm_call_failed",
			"model", c.name,
			"err", err.Error(),
		)
		return FailureText
	}
	if len(resp.Choices) == 0 {
		metricskey.StatsLLMCallsFailed.IncrCounter(1, c.name)
		logger.ContextKV(ctx, xlog.ERROR,
			"status", "llm_empty_response",
			"model", c.name,
		)
		return FailureText
	}

	content := resp.Choices[0].Content
	logger.ContextKV(ctx, xlog.DEBUG,
		"status", "llm_response",
		"model", c.name,
		"content", slices.StringUpto(content, 64),
	)
	return content
}
