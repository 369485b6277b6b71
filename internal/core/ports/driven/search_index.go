package driven

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// SearchIndex is the project-log vector index in Azure AI Search.
//
// This is an optional port - when the search endpoint is not configured it
// is nil and index operations surface a NotConfiguredError.
type SearchIndex interface {
	// EnsureIndex creates the project-log index if it does not exist.
	// Idempotent; returns true when the index was created by this call.
	EnsureIndex(ctx context.Context) (created bool, err error)

	// Upload writes one document with merge-or-upload semantics.
	// Returns domain.ErrUploadFailed when the service accepts the batch but
	// reports no successful result.
	Upload(ctx context.Context, doc domain.ProjectLog) error

	// Search runs a k-nearest-neighbour query over the context vectors.
	Search(ctx context.Context, vector []float32, topK int) ([]domain.SearchHit, error)

	// IndexName returns the configured index name.
	IndexName() string
}
