// ABOUTME: Tests for the Ollama provider: single-object and NDJSON responses
// ABOUTME: Uses httptest.NewServer for the request path and direct calls for parse

package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauromedda/cmdline-ai-helper/pkg/ai"
)

func TestProviderApi(t *testing.T) {
	t.Parallel()
	if got := New("", "").Api(); got != ai.ApiOllama {
		t.Errorf("Api() = %q, want %q", got, ai.ApiOllama)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "single object",
			body: `{"model":"llama3","response":"uname -a","done":true}`,
			want: "uname -a",
		},
		{
			name: "ndjson stream",
			body: "{\"response\":\"git \",\"done\":false}\n{\"response\":\"status\",\"done\":false}\n{\"done\":true}\n",
			want: "git status",
		},
		{
			name:    "server error object",
			body:    `{"error":"model not found"}`,
			wantErr: true,
		},
		{
			name:    "error mid stream",
			body:    "{\"response\":\"ls\"}\n{\"error\":\"out of memory\"}\n",
			wantErr: true,
		},
		{
			name:    "no chunks",
			body:    "{\"done\":true}\n{\"done\":true}\n",
			wantErr: true,
		},
		{
			name:    "garbage",
			body:    "not json\nat all",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parse([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProviderComplete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body request
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body.Model != "llama3" || body.Prompt != "show ip" {
			t.Errorf("got request %+v", body)
		}
		w.Header().Set("Content-Type", "application/x-ndjson")
		_, _ = w.Write([]byte("{\"response\":\"ip \"}\n{\"response\":\"addr\"}\n{\"done\":true}\n"))
	}))
	t.Cleanup(srv.Close)

	got, err := New("", srv.URL).Complete(context.Background(), &ai.Request{Model: "llama3", Prompt: "show ip"})
	if err != nil {
		t.Fatalf("Complete() unexpected error: %v", err)
	}
	if got != "ip addr" {
		t.Errorf("Complete() = %q, want %q", got, "ip addr")
	}
}

func TestProviderUnexpectedShape(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"done":true}`))
	}))
	t.Cleanup(srv.Close)

	_, err := New("", srv.URL).Complete(context.Background(), &ai.Request{Model: "m", Prompt: "x"})
	if !errors.Is(err, ai.ErrUnexpectedResponse) {
		t.Errorf("Complete() error = %v, want ErrUnexpectedResponse", err)
	}
}
