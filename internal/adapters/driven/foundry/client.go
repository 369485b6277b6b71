// Package foundry is the Azure AI Foundry Agents adapter. It implements
// the AgentPlatform port over the Assistants-style REST API exposed under
// the project endpoint.
package foundry

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
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.AgentPlatform = (*Client)(nil)

// Default configuration values.
const (
	// DefaultAPIVersion is the Foundry Agents REST api-version.
	DefaultAPIVersion = "2025-05-01"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 60 * time.Second

	// listPageSize is how many agents are requested per page.
	listPageSize = 100
)

// Config holds configuration for the Foundry Agents client.
type Config struct {
	// Endpoint is the Azure AI Foundry project endpoint (required).
	Endpoint string

	// Tokens issues Entra ID tokens for the Foundry scope (required).
	Tokens driven.TokenProvider

	// APIVersion overrides the REST api-version.
	APIVersion string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration

	// Scope overrides the token scope, for tests.
	Scope string
}

// Client calls the Foundry Agents REST API.
type Client struct {
	client     *http.Client
	endpoint   string
	apiVersion string
	tokens     driven.TokenProvider
	scope      string
}

// NewClient creates a Foundry Agents client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("foundry: endpoint is required")
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("foundry: token provider is required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Scope == "" {
		cfg.Scope = azureauth.ScopeFoundry
	}

	return &Client{
		client:     &http.Client{Timeout: cfg.Timeout},
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiVersion: cfg.APIVersion,
		tokens:     cfg.Tokens,
		scope:      cfg.Scope,
	}, nil
}

// url builds a request URL under the project endpoint. extraQuery entries
// are appended as-is after the api-version parameter.
func (c *Client) url(path string, extraQuery ...string) string {
	u := c.endpoint + path + "?api-version=" + c.apiVersion
	for _, q := range extraQuery {
		u += "&" + q
	}
	return u
}

// doJSON sends an authenticated request with an optional JSON body and
// decodes the JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.GetToken(ctx, c.scope)
	if err != nil {
		return fmt.Errorf("acquire token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("foundry API returned status %d: %s",
			resp.StatusCode, bodySnippet(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
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
