// ABOUTME: OpenAI Chat Completions provider implementation
// ABOUTME: Sends one user message with Bearer auth; reads choices.0.message.content

package openai

import (
	"context"
	"fmt"
	"os"

	"github.com/mauromedda/cmdline-ai-helper/pkg/ai"
	"github.com/mauromedda/cmdline-ai-helper/pkg/ai/internal/httputil"
)

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

// Provider implements ai.Provider for the OpenAI Chat Completions API and
// compatible servers.
type Provider struct {
	client *httputil.Client
}

// New creates an OpenAI provider. If apiKey is empty, it reads OPENAI_API_KEY.
func New(apiKey, endpoint string) *Provider {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + apiKey,
	}
	return &Provider{client: httputil.NewClient(endpoint, headers)}
}

// Api returns the OpenAI API identifier.
func (p *Provider) Api() ai.Api {
	return ai.ApiOpenAI
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Complete sends the prompt as a single user message.
func (p *Provider) Complete(ctx context.Context, req *ai.Request) (string, error) {
	body := request{
		Model:       req.Model,
		Messages:    []message{{Role: "user", Content: req.Prompt}},
		Temperature: req.TemperatureOr(ai.DefaultTemperature),
		MaxTokens:   req.MaxTokens,
	}

	resp, err := p.client.PostJSON(ctx, "", body)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	text, err := ai.TextAt(resp, "choices.0.message.content")
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	return text, nil
}
