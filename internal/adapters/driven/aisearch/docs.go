package aisearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// searchSelectFields are the document fields returned by queries. The
// context body and its vector stay server-side.
var searchSelectFields = []string{
	"id", "title", "type", "customer_name", "short_summary",
	"project_name", "tags", "reference_url", "creation_date",
}

// indexAction is one document in an indexing batch. The embedded record
// flattens into the payload next to the action marker.
type indexAction struct {
	Action string `json:"@search.action"`
	domain.ProjectLog
}

type indexBatchRequest struct {
	Value []indexAction `json:"value"`
}

type indexBatchResponse struct {
	Value []struct {
		Key          string `json:"key"`
		Status       bool   `json:"status"`
		ErrorMessage string `json:"errorMessage"`
	} `json:"value"`
}

// Upload writes one document with merge-or-upload semantics.
func (c *Client) Upload(ctx context.Context, doc domain.ProjectLog) error {
	batch := indexBatchRequest{
		Value: []indexAction{{Action: "mergeOrUpload", ProjectLog: doc}},
	}

	url := c.indexURL("/docs/search.index")
	status, body, err := c.do(ctx, http.MethodPost, url, batch)
	if err != nil {
		return fmt.Errorf("upload document %s: %w", doc.ID, err)
	}
	if status != http.StatusOK && status != http.StatusMultiStatus {
		return fmt.Errorf("upload document %s: %w", doc.ID, statusError(status, body))
	}

	var result indexBatchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("upload document %s: decode response: %w", doc.ID, err)
	}
	for _, r := range result.Value {
		if r.Status {
			return nil
		}
	}
	return fmt.Errorf("upload document %s: %w", doc.ID, domain.ErrUploadFailed)
}

type vectorQuery struct {
	Kind   string    `json:"kind"`
	Vector []float32 `json:"vector"`
	Fields string    `json:"fields"`
	K      int       `json:"k"`
}

type searchRequest struct {
	Count         bool          `json:"count"`
	Select        string        `json:"select"`
	Top           int           `json:"top"`
	VectorQueries []vectorQuery `json:"vectorQueries"`
}

type searchResponse struct {
	Value []searchDoc `json:"value"`
}

type searchDoc struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	CustomerName string    `json:"customer_name"`
	ShortSummary string    `json:"short_summary"`
	ProjectName  string    `json:"project_name"`
	Tags         []string  `json:"tags"`
	ReferenceURL string    `json:"reference_url"`
	CreationDate time.Time `json:"creation_date"`
	Score        float64   `json:"@search.score"`
}

// Search runs a k-nearest-neighbour query over the context vectors.
func (c *Client) Search(ctx context.Context, vector []float32, topK int) ([]domain.SearchHit, error) {
	body := searchRequest{
		Count:  true,
		Select: strings.Join(searchSelectFields, ","),
		Top:    topK,
		VectorQueries: []vectorQuery{{
			Kind:   "vector",
			Vector: vector,
			Fields: "context_vector",
			K:      topK,
		}},
	}

	url := c.indexURL("/docs/search.post.search")
	status, respBody, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("search index %s: %w", c.indexName, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("search index %s: %w", c.indexName, statusError(status, respBody))
	}

	var result searchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("search index %s: decode response: %w", c.indexName, err)
	}

	hits := make([]domain.SearchHit, 0, len(result.Value))
	for _, d := range result.Value {
		hits = append(hits, domain.SearchHit{
			ID:           d.ID,
			Title:        d.Title,
			Type:         domain.EntryType(d.Type),
			CustomerName: d.CustomerName,
			ShortSummary: d.ShortSummary,
			ProjectName:  d.ProjectName,
			Tags:         d.Tags,
			ReferenceURL: d.ReferenceURL,
			CreationDate: d.CreationDate,
			Score:        d.Score,
		})
	}
	return hits, nil
}
