package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driving"
	"github.com/custodia-labs/foundry-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService manages the project-log index schema and ingests entries
// with auto-generated embeddings.
type IndexService struct {
	embedder driven.Embedder    // optional
	index    driven.SearchIndex // optional
}

// NewIndexService creates an index service. Either collaborator may be nil;
// operations then surface a NotConfiguredError.
func NewIndexService(embedder driven.Embedder, index driven.SearchIndex) *IndexService {
	return &IndexService{embedder: embedder, index: index}
}

// Create ensures the index exists. Returns true when this call created it.
func (s *IndexService) Create(ctx context.Context) (bool, error) {
	if s.index == nil {
		return false, &domain.NotConfiguredError{Setting: "AZURE_AI_SEARCH_ENDPOINT"}
	}
	return s.index.EnsureIndex(ctx)
}

// Ingest ensures the index exists, embeds the entry's context, and uploads
// the assembled document.
func (s *IndexService) Ingest(
	ctx context.Context, entry domain.NewEntry,
) (domain.ProjectLog, error) {
	if s.index == nil {
		return domain.ProjectLog{}, &domain.NotConfiguredError{Setting: "AZURE_AI_SEARCH_ENDPOINT"}
	}
	if s.embedder == nil {
		return domain.ProjectLog{}, &domain.NotConfiguredError{Setting: "AZURE_OPENAI_ENDPOINT"}
	}

	if _, err := s.index.EnsureIndex(ctx); err != nil {
		return domain.ProjectLog{}, err
	}

	vector, err := s.embedder.Embed(ctx, entry.Context)
	if err != nil {
		return domain.ProjectLog{}, err
	}

	doc := domain.NewProjectLog(uuid.NewString(), entry, vector, time.Now())
	if err := s.index.Upload(ctx, doc); err != nil {
		return domain.ProjectLog{}, err
	}
	logger.Info("Project log %s ingested into index %s", doc.ID, s.index.IndexName())
	return doc, nil
}

// IndexName returns the configured index name, or the default when the
// index is not configured.
func (s *IndexService) IndexName() string {
	if s.index == nil {
		return domain.DefaultSearchIndexName
	}
	return s.index.IndexName()
}
