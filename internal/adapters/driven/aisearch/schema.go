package aisearch

import (
	"context"
	"fmt"
	"net/http"
)

// Vector search configuration names referenced by the schema.
const (
	hnswAlgorithmName = "hnsw"
	hnswProfileName   = "hnsw-profile"
)

// indexDefinition is the index create/update payload.
type indexDefinition struct {
	Name         string            `json:"name"`
	Fields       []fieldDefinition `json:"fields"`
	VectorSearch vectorSearchDef   `json:"vectorSearch"`
}

type fieldDefinition struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Key        bool   `json:"key,omitempty"`
	Searchable bool   `json:"searchable"`
	Filterable bool   `json:"filterable"`
	Sortable   bool   `json:"sortable"`
	Facetable  bool   `json:"facetable"`

	// Vector field attributes, set on context_vector only.
	Dimensions          int    `json:"dimensions,omitempty"`
	VectorSearchProfile string `json:"vectorSearchProfile,omitempty"`
}

type vectorSearchDef struct {
	Algorithms []vectorAlgorithm `json:"algorithms"`
	Profiles   []vectorProfile   `json:"profiles"`
}

type vectorAlgorithm struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type vectorProfile struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
}

// schemaFields returns the project-log field definitions in schema order.
func schemaFields(dimensions int) []fieldDefinition {
	return []fieldDefinition{
		{Name: "id", Type: "Edm.String", Key: true, Filterable: true},
		{Name: "title", Type: "Edm.String", Searchable: true, Filterable: true, Sortable: true},
		{Name: "type", Type: "Edm.String", Searchable: true, Filterable: true, Facetable: true},
		{Name: "customer_name", Type: "Edm.String", Searchable: true, Filterable: true, Facetable: true},
		{Name: "short_summary", Type: "Edm.String", Searchable: true},
		{Name: "context", Type: "Edm.String", Searchable: true},
		{
			Name:                "context_vector",
			Type:                "Collection(Edm.Single)",
			Searchable:          true,
			Dimensions:          dimensions,
			VectorSearchProfile: hnswProfileName,
		},
		{Name: "project_name", Type: "Edm.String", Searchable: true, Filterable: true, Facetable: true},
		{Name: "tags", Type: "Collection(Edm.String)", Searchable: true, Filterable: true, Facetable: true},
		{Name: "reference_url", Type: "Edm.String", Searchable: true},
		{Name: "architecture", Type: "Edm.String", Searchable: true},
		{Name: "creation_date", Type: "Edm.DateTimeOffset", Filterable: true, Sortable: true},
		{Name: "modified_date", Type: "Edm.DateTimeOffset", Filterable: true, Sortable: true},
	}
}

// EnsureIndex creates the project-log index if it does not exist.
// Idempotent; returns true when the index was created by this call.
func (c *Client) EnsureIndex(ctx context.Context) (bool, error) {
	status, body, err := c.do(ctx, http.MethodGet, c.indexURL(""), nil)
	if err != nil {
		return false, fmt.Errorf("check index %s: %w", c.indexName, err)
	}
	if status == http.StatusOK {
		return false, nil
	}
	if status != http.StatusNotFound {
		return false, fmt.Errorf("check index %s: %w", c.indexName, statusError(status, body))
	}

	definition := indexDefinition{
		Name:   c.indexName,
		Fields: schemaFields(c.dimensions),
		VectorSearch: vectorSearchDef{
			Algorithms: []vectorAlgorithm{{Name: hnswAlgorithmName, Kind: "hnsw"}},
			Profiles:   []vectorProfile{{Name: hnswProfileName, Algorithm: hnswAlgorithmName}},
		},
	}

	status, body, err = c.do(ctx, http.MethodPut, c.indexURL(""), definition)
	if err != nil {
		return false, fmt.Errorf("create index %s: %w", c.indexName, err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return false, fmt.Errorf("create index %s: %w", c.indexName, statusError(status, body))
	}
	return true, nil
}
