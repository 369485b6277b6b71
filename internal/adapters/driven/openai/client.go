// Package openai is the Azure OpenAI inference adapter. It implements the
// ChatCompleter and Embedder ports over the data-plane REST API, using a
// shared authenticated client. The endpoint may be a dedicated Azure OpenAI
// resource or the Foundry project endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/foundry-cli/internal/adapters/driven/azureauth"
	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
)

// Default configuration values.
const (
	// DefaultTimeout is the per-request timeout. Chat completions on large
	// inputs can take tens of seconds.
	DefaultTimeout = 120 * time.Second

	// DefaultRequestsPerSecond is the proactive throttle rate across both
	// inference operations.
	DefaultRequestsPerSecond = 4
)

// Config holds configuration for the Azure OpenAI client.
type Config struct {
	// Endpoint is the Azure OpenAI endpoint (required).
	Endpoint string

	// Tokens issues Entra ID tokens for the Cognitive Services scope
	// (required).
	Tokens driven.TokenProvider

	// APIVersion overrides the REST api-version.
	APIVersion string

	// Timeout is the per-request timeout (default: 120s).
	Timeout time.Duration

	// RequestsPerSecond overrides the proactive throttle rate.
	RequestsPerSecond float64

	// Scope overrides the token scope, for tests.
	Scope string
}

// Client calls the Azure OpenAI data-plane REST API.
type Client struct {
	client     *http.Client
	endpoint   string
	apiVersion string
	tokens     driven.TokenProvider
	scope      string
	limiter    *limiter
}

// NewClient creates an Azure OpenAI client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("openai: endpoint is required")
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("openai: token provider is required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = domain.DefaultOpenAIAPIVersion
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Scope == "" {
		cfg.Scope = azureauth.ScopeCognitive
	}

	return &Client{
		client:     &http.Client{Timeout: cfg.Timeout},
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiVersion: cfg.APIVersion,
		tokens:     cfg.Tokens,
		scope:      cfg.Scope,
		limiter:    newLimiter(cfg.RequestsPerSecond),
	}, nil
}

// postJSON sends an authenticated POST to a deployment path and decodes the
// JSON response into out. A 429 response is retried once after the
// Retry-After delay.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	url := c.endpoint + path + "?api-version=" + c.apiVersion

	resp, err := c.send(ctx, url, payload)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		delay := retryAfter(resp)
		resp.Body.Close()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if resp, err = c.send(ctx, url, payload); err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("openai API returned status %d: %s",
			resp.StatusCode, bodySnippet(respBody))
	}
	return json.Unmarshal(respBody, out)
}

func (c *Client) send(ctx context.Context, url string, payload []byte) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.tokens.GetToken(ctx, c.scope)
	if err != nil {
		return nil, fmt.Errorf("acquire token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

// bodySnippet truncates a response body for error messages.
func bodySnippet(body []byte) string {
	const max = 300
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}
