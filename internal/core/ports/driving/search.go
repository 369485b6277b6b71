package driving

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// SearchService provides vector search over the project-log index and
// direct document insertion.
type SearchService interface {
	// Search embeds the query and returns the topK nearest project logs.
	// topK values <= 0 fall back to domain.DefaultTopK.
	Search(ctx context.Context, query string, topK int) ([]domain.SearchHit, error)

	// Add embeds the entry's context, builds the document, and uploads it.
	Add(ctx context.Context, entry domain.NewEntry) (domain.ProjectLog, error)
}
