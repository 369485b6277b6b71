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

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService provides semantic search over the project-log index and
// direct document insertion with auto-generated embeddings.
type SearchService struct {
	embedder driven.Embedder    // optional
	index    driven.SearchIndex // optional
}

// NewSearchService creates a search service. Either collaborator may be
// nil; operations then surface a NotConfiguredError.
func NewSearchService(embedder driven.Embedder, index driven.SearchIndex) *SearchService {
	return &SearchService{embedder: embedder, index: index}
}

// Search embeds the query and returns the topK nearest project logs.
func (s *SearchService) Search(
	ctx context.Context, query string, topK int,
) ([]domain.SearchHit, error) {
	if s.index == nil {
		return nil, &domain.NotConfiguredError{
			Setting: "AZURE_AI_SEARCH_ENDPOINT",
			Hint:    "Set this environment variable to your Azure AI Search endpoint.",
		}
	}
	if s.embedder == nil {
		return nil, &domain.NotConfiguredError{
			Setting: "AZURE_OPENAI_ENDPOINT",
			Hint:    "Set this environment variable to your Azure OpenAI endpoint.",
		}
	}
	if topK <= 0 {
		topK = domain.DefaultTopK
	}

	logger.Section("Vector Search")
	logger.Debug("Query: %q (top %d)", query, topK)

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.index.Search(ctx, vector, topK)
}

// Add embeds the entry's context, builds the document, and uploads it.
// An empty entry type defaults to meeting, matching the tool contract.
func (s *SearchService) Add(
	ctx context.Context, entry domain.NewEntry,
) (domain.ProjectLog, error) {
	if s.index == nil {
		return domain.ProjectLog{}, &domain.NotConfiguredError{Setting: "AZURE_AI_SEARCH_ENDPOINT"}
	}
	if s.embedder == nil {
		return domain.ProjectLog{}, &domain.NotConfiguredError{Setting: "AZURE_OPENAI_ENDPOINT"}
	}
	if entry.Type == "" {
		entry.Type = domain.EntryTypeMeeting
	}

	vector, err := s.embedder.Embed(ctx, entry.Context)
	if err != nil {
		return domain.ProjectLog{}, err
	}

	doc := domain.NewProjectLog(uuid.NewString(), entry, vector, time.Now())
	if err := s.index.Upload(ctx, doc); err != nil {
		return domain.ProjectLog{}, err
	}
	logger.Info("Document %s uploaded to index %s", doc.ID, s.index.IndexName())
	return doc, nil
}
