// ABOUTME: Shared HTTP client with retry logic and JSON request helpers
// ABOUTME: Provides exponential backoff on 429/5xx; respects HTTP_PROXY/HTTPS_PROXY

package httputil

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	maxAttempts   = 3
	baseBackoffMs = 500
	maxBackoffMs  = 10000
	maxBodyBytes  = 10 << 20
)

// APIError is returned by PostJSON for non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed (status %d): %s", e.StatusCode, e.Body)
}

// Client wraps an http.Client with retry logic and default headers.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	backoff    func(attempt int) time.Duration
}

// NewClient creates a new HTTP client with the given base URL and default headers.
// Proxy support comes from the stdlib's default transport (HTTP_PROXY, HTTPS_PROXY).
func NewClient(baseURL string, headers map[string]string) *Client {
	if headers == nil {
		headers = make(map[string]string)
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 90 * time.Second,
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		baseURL: baseURL,
		headers: headers,
		backoff: backoff,
	}
}

// Do sends an HTTP request with retry on 429 and 5xx status codes.
// The last attempt's response is returned even if it is still retryable.
// If body implements io.Seeker, it is rewound before each retry attempt.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	seeker, _ := body.(io.Seeker)

	for attempt := range maxAttempts {
		if err := rewindBody(seeker, attempt); err != nil {
			return nil, fmt.Errorf("failed to rewind request body: %w", err)
		}

		req, err := c.buildRequest(ctx, method, path, body)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("http request failed: %w", redact(err))
		}

		if !isRetryable(resp.StatusCode) || attempt == maxAttempts-1 {
			return resp, nil
		}

		// Close the body of the retryable response before retrying.
		resp.Body.Close()
		if err := sleepWithContext(ctx, c.backoff(attempt)); err != nil {
			return nil, fmt.Errorf("context cancelled during retry backoff: %w", err)
		}
	}
	panic("unreachable")
}

// PostJSON marshals payload, POSTs it to path, and returns the response
// body. Non-2xx responses become *APIError.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	resp, err := c.Do(ctx, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}
	return body, nil
}

// buildRequest creates an http.Request with default headers applied.
func (c *Client) buildRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s %s: %w", method, c.baseURL, err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// redact drops the query string from URLs in transport errors; some
// providers (google) put the API key there.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if i := strings.IndexByte(uerr.URL, '?'); i >= 0 {
			uerr.URL = uerr.URL[:i] + "?REDACTED"
		}
	}
	return err
}

// rewindBody resets a seekable body to the beginning for retry attempts.
// It is a no-op on the first attempt (attempt == 0) or if seeker is nil.
func rewindBody(seeker io.Seeker, attempt int) error {
	if seeker == nil || attempt == 0 {
		return nil
	}
	_, err := seeker.Seek(0, io.SeekStart)
	return err
}

// isRetryable returns true for status codes that warrant a retry.
func isRetryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// backoff returns the backoff duration for the given attempt using exponential backoff.
func backoff(attempt int) time.Duration {
	ms := float64(baseBackoffMs) * math.Pow(2, float64(attempt))
	if ms > maxBackoffMs {
		ms = maxBackoffMs
	}
	return time.Duration(ms) * time.Millisecond
}

// sleepWithContext waits for the given duration or until the context is cancelled.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
