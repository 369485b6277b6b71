package driving

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// IndexService manages the project-log index lifecycle and ingestion.
type IndexService interface {
	// Create ensures the index exists. Returns true when this call created it.
	Create(ctx context.Context) (created bool, err error)

	// Ingest ensures the index exists, embeds the entry, and uploads it.
	Ingest(ctx context.Context, entry domain.NewEntry) (domain.ProjectLog, error)

	// IndexName returns the configured index name for display.
	IndexName() string
}
