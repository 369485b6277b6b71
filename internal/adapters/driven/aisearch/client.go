// Package aisearch is the Azure AI Search adapter. It implements the
// SearchIndex port over the data-plane REST API: index management, document
// upload with merge-or-upload semantics, and k-nearest-neighbour queries
// over the context vectors.
package aisearch

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

// Ensure Client implements the interface.
var _ driven.SearchIndex = (*Client)(nil)

// Default configuration values.
const (
	// DefaultAPIVersion is the Search data-plane api-version.
	DefaultAPIVersion = "2024-07-01"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the Search client.
type Config struct {
	// Endpoint is the Azure AI Search service endpoint (required).
	Endpoint string

	// IndexName is the project-log index name (required).
	IndexName string

	// Tokens issues Entra ID tokens for the Search scope (required).
	Tokens driven.TokenProvider

	// Dimensions is the context_vector width of the index schema
	// (default: domain.DefaultEmbeddingDimensions).
	Dimensions int

	// APIVersion overrides the REST api-version.
	APIVersion string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration

	// Scope overrides the token scope, for tests.
	Scope string
}

// Client calls the Azure AI Search data-plane REST API for one index.
type Client struct {
	client     *http.Client
	endpoint   string
	indexName  string
	apiVersion string
	dimensions int
	tokens     driven.TokenProvider
	scope      string
}

// NewClient creates a Search client bound to one index.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("aisearch: endpoint is required")
	}
	if cfg.IndexName == "" {
		return nil, fmt.Errorf("aisearch: index name is required")
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("aisearch: token provider is required")
	}
	if cfg.Dimensions == 0 {
		cfg.Dimensions = domain.DefaultEmbeddingDimensions
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Scope == "" {
		cfg.Scope = azureauth.ScopeSearch
	}

	return &Client{
		client:     &http.Client{Timeout: cfg.Timeout},
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		indexName:  cfg.IndexName,
		apiVersion: cfg.APIVersion,
		dimensions: cfg.Dimensions,
		tokens:     cfg.Tokens,
		scope:      cfg.Scope,
	}, nil
}

// IndexName returns the configured index name.
func (c *Client) IndexName() string {
	return c.indexName
}

// indexURL builds a request URL under /indexes('{name}'). subPath is
// appended before the api-version parameter.
func (c *Client) indexURL(subPath string) string {
	return fmt.Sprintf("%s/indexes('%s')%s?api-version=%s",
		c.endpoint, c.indexName, subPath, c.apiVersion)
}

// do sends an authenticated request and returns the status code and body.
// Status handling is left to the caller; 404 is meaningful for index
// existence checks.
func (c *Client) do(ctx context.Context, method, url string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.GetToken(ctx, c.scope)
	if err != nil {
		return 0, nil, fmt.Errorf("acquire token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

// statusError reports an unexpected response status with a body snippet.
func statusError(status int, body []byte) error {
	const max = 300
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		s = s[:max] + "…"
	}
	return fmt.Errorf("search API returned status %d: %s", status, s)
}
