// ABOUTME: Anthropic Messages API provider implementation
// ABOUTME: Sends x-api-key and anthropic-version headers; reads content.0.text

package anthropic

import (
	"context"
	"fmt"
	"os"

	"github.com/mauromedda/cmdline-ai-helper/pkg/ai"
	"github.com/mauromedda/cmdline-ai-helper/pkg/ai/internal/httputil"
)

const (
	defaultEndpoint  = "https://api.anthropic.com/v1/messages"
	apiVersion       = "2023-06-01"
	defaultMaxTokens = 1000
)

// Provider implements ai.Provider for the Anthropic Messages API.
type Provider struct {
	client *httputil.Client
}

// New creates an Anthropic provider. If apiKey is empty, it reads ANTHROPIC_API_KEY.
func New(apiKey, endpoint string) *Provider {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	headers := map[string]string{
		"Content-Type":      "application/json",
		"x-api-key":         apiKey,
		"anthropic-version": apiVersion,
	}
	return &Provider{client: httputil.NewClient(endpoint, headers)}
}

// Api returns the Anthropic API identifier.
func (p *Provider) Api() ai.Api {
	return ai.ApiAnthropic
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Messages    []message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
}

// Complete sends the prompt as a single user message. max_tokens is
// mandatory for this API, so a default is always sent.
func (p *Provider) Complete(ctx context.Context, req *ai.Request) (string, error) {
	body := request{
		Model:       req.Model,
		MaxTokens:   req.MaxTokensOr(defaultMaxTokens),
		Messages:    []message{{Role: "user", Content: req.Prompt}},
		Temperature: req.Temperature,
	}

	resp, err := p.client.PostJSON(ctx, "", body)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	text, err := ai.TextAt(resp, "content.0.text")
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	return text, nil
}
