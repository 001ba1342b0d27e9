// ABOUTME: Ollama /api/generate provider implementation
// ABOUTME: Accepts a single JSON object or a newline-delimited stream of chunks

package ollama

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/mauromedda/cmdline-ai-helper/pkg/ai"
	"github.com/mauromedda/cmdline-ai-helper/pkg/ai/internal/httputil"
)

const defaultEndpoint = "http://localhost:11434/api/generate"

// Provider implements ai.Provider for a local Ollama server.
type Provider struct {
	client *httputil.Client
}

// New creates an Ollama provider. The API key is ignored; local servers
// take none.
func New(_, endpoint string) *Provider {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	headers := map[string]string{"Content-Type": "application/json"}
	return &Provider{client: httputil.NewClient(endpoint, headers)}
}

// Api returns the Ollama API identifier.
func (p *Provider) Api() ai.Api {
	return ai.ApiOllama
}

type request struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// Complete posts the prompt and joins the response chunks.
func (p *Provider) Complete(ctx context.Context, req *ai.Request) (string, error) {
	resp, err := p.client.PostJSON(ctx, "", request{Model: req.Model, Prompt: req.Prompt})
	if err != nil {
		return "", fmt.Errorf("ollama: %w", err)
	}
	text, err := parse(resp)
	if err != nil {
		return "", fmt.Errorf("ollama: %w", err)
	}
	return text, nil
}

// parse reads either a non-streamed reply or NDJSON chunks.
func parse(body []byte) (string, error) {
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "error"); msg.Exists() {
			return "", fmt.Errorf("server error: %s", msg.String())
		}
		return ai.TextAt(body, "response")
	}

	var (
		sb      strings.Builder
		chunks  int
		lineErr error
	)
	gjson.ForEachLine(string(body), func(line gjson.Result) bool {
		if !line.IsObject() {
			lineErr = fmt.Errorf("failed to parse Ollama response line: %.200s", line.Raw)
			return false
		}
		if msg := line.Get("error"); msg.Exists() {
			lineErr = fmt.Errorf("server error: %s", msg.String())
			return false
		}
		if r := line.Get("response"); r.Exists() {
			sb.WriteString(r.String())
			chunks++
		}
		return true
	})
	if lineErr != nil {
		return "", lineErr
	}
	if chunks == 0 {
		return "", fmt.Errorf("%w: no response chunks in %.200s", ai.ErrUnexpectedResponse, body)
	}
	return sb.String(), nil
}
