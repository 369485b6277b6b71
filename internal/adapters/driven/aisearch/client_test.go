package aisearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

type staticTokens struct{ token string }

func (s staticTokens) GetToken(_ context.Context, _ string) (string, error) {
	return s.token, nil
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		Endpoint:   server.URL,
		IndexName:  "project-log-index",
		Tokens:     staticTokens{token: "test-token"},
		Dimensions: 1536,
	})
	require.NoError(t, err)
	return client
}

func TestEnsureIndex_AlreadyExists(t *testing.T) {
	var calls []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		require.Equal(t, "/indexes('project-log-index')", r.URL.Path)
		require.Equal(t, DefaultAPIVersion, r.URL.Query().Get("api-version"))
		fmt.Fprint(w, `{"name":"project-log-index"}`)
	}))

	created, err := client.EnsureIndex(context.Background())

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, []string{"GET /indexes('project-log-index')"}, calls)
}

func TestEnsureIndex_CreatesOn404(t *testing.T) {
	var definition indexDefinition
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&definition))
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"name":"project-log-index"}`)
		}
	}))

	created, err := client.EnsureIndex(context.Background())

	require.NoError(t, err)
	assert.True(t, created)

	require.Len(t, definition.Fields, len(domain.ProjectLogFieldNames))
	for i, field := range definition.Fields {
		assert.Equal(t, domain.ProjectLogFieldNames[i], field.Name)
	}
	assert.True(t, definition.Fields[0].Key)

	vector := definition.Fields[6]
	require.Equal(t, "context_vector", vector.Name)
	assert.Equal(t, "Collection(Edm.Single)", vector.Type)
	assert.Equal(t, 1536, vector.Dimensions)
	assert.Equal(t, "hnsw-profile", vector.VectorSearchProfile)

	require.Len(t, definition.VectorSearch.Algorithms, 1)
	assert.Equal(t, "hnsw", definition.VectorSearch.Algorithms[0].Name)
	require.Len(t, definition.VectorSearch.Profiles, 1)
	assert.Equal(t, "hnsw", definition.VectorSearch.Profiles[0].Algorithm)
}

func TestEnsureIndex_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))

	_, err := client.EnsureIndex(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestUpload(t *testing.T) {
	doc := domain.NewProjectLog("doc-1", domain.NewEntry{
		Title: "Contoso rollout",
		Type:  domain.EntryTypeBlog,
		Tags:  []string{"azure"},
	}, []float32{0.1, 0.2}, time.Now())

	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/indexes('project-log-index')/docs/search.index", r.URL.Path)
			require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			var batch map[string][]map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))
			require.Len(t, batch["value"], 1)
			action := batch["value"][0]
			assert.Equal(t, "mergeOrUpload", action["@search.action"])
			assert.Equal(t, "doc-1", action["id"])
			assert.Equal(t, "Contoso rollout", action["title"])

			fmt.Fprint(w, `{"value":[{"key":"doc-1","status":true}]}`)
		}))

		require.NoError(t, client.Upload(context.Background(), doc))
	})

	t.Run("no successful result", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusMultiStatus)
			fmt.Fprint(w, `{"value":[{"key":"doc-1","status":false,"errorMessage":"quota"}]}`)
		}))

		err := client.Upload(context.Background(), doc)
		require.ErrorIs(t, err, domain.ErrUploadFailed)
	})
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/indexes('project-log-index')/docs/search.post.search", r.URL.Path)

		var body searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3, body.Top)
		require.Len(t, body.VectorQueries, 1)
		assert.Equal(t, "vector", body.VectorQueries[0].Kind)
		assert.Equal(t, "context_vector", body.VectorQueries[0].Fields)
		assert.Equal(t, 3, body.VectorQueries[0].K)
		assert.Equal(t, []float32{0.5, 0.5}, body.VectorQueries[0].Vector)
		assert.Contains(t, body.Select, "short_summary")
		assert.NotContains(t, body.Select, "context_vector")

		fmt.Fprint(w, `{"value":[
			{"@search.score":0.8123,"id":"doc-1","title":"Contoso rollout","type":"blog",
			 "customer_name":"Contoso","short_summary":"A rollout.","project_name":"alpha",
			 "tags":["azure","aks"],"reference_url":"https://example.test/story",
			 "creation_date":"2026-08-20T10:00:00Z"},
			{"@search.score":0.5,"id":"doc-2","title":"Sync notes","type":"meeting"}
		]}`)
	}))

	hits, err := client.Search(context.Background(), []float32{0.5, 0.5}, 3)

	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "doc-1", hits[0].ID)
	assert.Equal(t, domain.EntryTypeBlog, hits[0].Type)
	assert.Equal(t, []string{"azure", "aks"}, hits[0].Tags)
	assert.InDelta(t, 0.8123, hits[0].Score, 0.0001)
	assert.Equal(t, 2026, hits[0].CreationDate.Year())
	assert.Equal(t, domain.EntryTypeMeeting, hits[1].Type)
}

func TestNewClient_Validation(t *testing.T) {
	tokens := staticTokens{}

	_, err := NewClient(Config{IndexName: "i", Tokens: tokens})
	assert.Error(t, err)

	_, err = NewClient(Config{Endpoint: "https://example.test", Tokens: tokens})
	assert.Error(t, err)

	_, err = NewClient(Config{Endpoint: "https://example.test", IndexName: "i"})
	assert.Error(t, err)
}
