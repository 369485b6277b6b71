package driven

import "context"

// Embedder generates vector embeddings from text.
//
// The vector length is fixed at construction and must match the
// context_vector dimensions of the search index schema.
type Embedder interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size (e.g., 1536, 3072).
	Dimensions() int
}
