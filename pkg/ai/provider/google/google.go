// ABOUTME: Google Gemini generateContent provider implementation
// ABOUTME: Passes the API key as a query parameter; reads candidates.0.content.parts.0.text

package google

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/mauromedda/cmdline-ai-helper/pkg/ai"
	"github.com/mauromedda/cmdline-ai-helper/pkg/ai/internal/httputil"
)

const (
	defaultEndpoint  = "https://generativelanguage.googleapis.com/v1beta/models/{model}:generateContent"
	defaultMaxTokens = 1024
)

// Provider implements ai.Provider for the Gemini generateContent API.
type Provider struct {
	client   *httputil.Client
	endpoint string
	apiKey   string
}

// New creates a Gemini provider. If apiKey is empty, it reads GEMINI_API_KEY.
// A "{model}" placeholder in endpoint is replaced with the request model.
func New(apiKey, endpoint string) *Provider {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	headers := map[string]string{"Content-Type": "application/json"}
	return &Provider{
		client:   httputil.NewClient("", headers),
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

// Api returns the Google API identifier.
func (p *Provider) Api() ai.Api {
	return ai.ApiGoogle
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type request struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

// Complete sends the prompt as a single content part.
func (p *Provider) Complete(ctx context.Context, req *ai.Request) (string, error) {
	body := request{
		Contents: []content{{Parts: []part{{Text: req.Prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     req.TemperatureOr(ai.DefaultTemperature),
			TopK:            1,
			TopP:            0.8,
			MaxOutputTokens: req.MaxTokensOr(defaultMaxTokens),
		},
	}

	resp, err := p.client.PostJSON(ctx, p.url(req.Model), body)
	if err != nil {
		return "", fmt.Errorf("google: %w", err)
	}
	text, err := ai.TextAt(resp, "candidates.0.content.parts.0.text")
	if err != nil {
		return "", fmt.Errorf("google: %w", err)
	}
	return text, nil
}

func (p *Provider) url(model string) string {
	u := strings.ReplaceAll(p.endpoint, "{model}", url.PathEscape(model))
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + "key=" + url.QueryEscape(p.apiKey)
}
