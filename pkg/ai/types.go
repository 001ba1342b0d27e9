// ABOUTME: Core AI types: Api identifiers, Request, and the Provider interface
// ABOUTME: Shared across all providers; wire-format agnostic

package ai

import (
	"context"
	"errors"
)

// Api identifies a text-generation provider.
type Api string

const (
	ApiOpenAI    Api = "openai"
	ApiAnthropic Api = "anthropic"
	ApiGoogle    Api = "google"
	ApiOllama    Api = "ollama"
)

// DefaultTemperature is sent by providers whose API takes a temperature
// when the caller leaves Request.Temperature unset.
const DefaultTemperature = 0.7

var (
	// ErrUnknownProvider is returned when no factory is registered for an Api.
	ErrUnknownProvider = errors.New("unknown provider")
	// ErrUnexpectedResponse is returned when a response lacks the text field.
	ErrUnexpectedResponse = errors.New("unexpected response shape")
)

// Request is a single prompt-to-text call.
type Request struct {
	Model       string
	Prompt      string
	Temperature *float64 // nil selects the provider default; 0 is sent as 0
	MaxTokens   int      // 0 selects the provider default
}

// TemperatureOr returns r.Temperature, or def when unset.
func (r *Request) TemperatureOr(def float64) float64 {
	if r.Temperature != nil {
		return *r.Temperature
	}
	return def
}

// MaxTokensOr returns r.MaxTokens, or def when unset.
func (r *Request) MaxTokensOr(def int) int {
	if r.MaxTokens > 0 {
		return r.MaxTokens
	}
	return def
}

// Provider is the interface all text-generation backends implement.
type Provider interface {
	// Api returns the provider's identifier.
	Api() Api

	// Complete sends the prompt and returns the generated text.
	// The context.Context controls cancellation of the underlying HTTP request.
	Complete(ctx context.Context, req *Request) (string, error)
}
