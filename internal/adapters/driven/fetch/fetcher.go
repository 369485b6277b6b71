// Package fetch is the web page adapter. It implements the PageFetcher
// port: download a public page, strip it to visible text, and bound the
// result so it fits an agent prompt.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
	"github.com/custodia-labs/foundry-cli/internal/htmltext"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

const (
	// DefaultTimeout is the whole-request timeout.
	DefaultTimeout = 30 * time.Second

	// maxBodyBytes caps the downloaded page size.
	maxBodyBytes = 2 << 20 // 2 MiB

	// userAgent identifies the fetcher. Some story sites reject requests
	// without a browser-looking agent string.
	userAgent = "Mozilla/5.0 (compatible; FoundryAgentsMCPServer/1.0; " +
		"+https://github.com/custodia-labs/foundry-cli)"
)

// Fetcher downloads pages over HTTP and extracts their visible text.
type Fetcher struct {
	client *http.Client
}

// New creates a page fetcher with the default timeout.
func New() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: DefaultTimeout}}
}

// NewWithClient creates a page fetcher with a caller-supplied HTTP client,
// for tests.
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchPageText downloads url and returns the extracted page text.
func (f *Fetcher) FetchPageText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &domain.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &domain.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &domain.FetchError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	return htmltext.ExtractDefault(string(body)), nil
}
