package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
)

// Ensure Embedder implements the interface.
var _ driven.Embedder = (*Embedder)(nil)

type embeddingRequest struct {
	Input string `json:"input"`

	// Dimensions is only accepted by text-embedding-3-* deployments.
	Dimensions int `json:"dimensions,omitempty"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// Embedder generates vector embeddings against one deployment.
type Embedder struct {
	client     *Client
	deployment string
	dimensions int
}

// NewEmbedder creates an embedder bound to an embedding model deployment.
// dimensions must match the context_vector width of the search index.
func NewEmbedder(client *Client, deployment string, dimensions int) *Embedder {
	return &Embedder{client: client, deployment: deployment, dimensions: dimensions}
}

// Embed generates a vector embedding for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	body := embeddingRequest{Input: text}
	if strings.HasPrefix(e.deployment, "text-embedding-3") {
		body.Dimensions = e.dimensions
	}

	var resp embeddingResponse
	path := "/openai/deployments/" + e.deployment + "/embeddings"
	if err := e.client.postJSON(ctx, path, body, &resp); err != nil {
		return nil, fmt.Errorf("embed with %s: %w", e.deployment, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embed with %s: no embedding returned", e.deployment)
	}
	return resp.Data[0].Embedding, nil
}

// Dimensions returns the embedding vector size.
func (e *Embedder) Dimensions() int {
	return e.dimensions
}
