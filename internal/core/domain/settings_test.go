package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDefaultSettings tests the baked-in defaults
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "project-log-index", s.SearchIndexName)
	assert.Equal(t, "text-embedding-3-small", s.EmbeddingModel)
	assert.Equal(t, 1536, s.EmbeddingDimensions)
	assert.Equal(t, "2024-10-21", s.OpenAIAPIVersion)
	assert.Equal(t, 10*time.Minute, s.AgentRunTimeout)
	assert.Equal(t, 2*time.Second, s.PollInterval)
	assert.Empty(t, s.ProjectEndpoint)
	assert.Empty(t, s.SearchEndpoint)
}

// TestSettings_ResolvedOpenAIEndpoint tests endpoint fallback
func TestSettings_ResolvedOpenAIEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     string
	}{
		{
			"dedicated endpoint wins",
			Settings{OpenAIEndpoint: "https://oai.example.com", ProjectEndpoint: "https://proj.example.com"},
			"https://oai.example.com",
		},
		{
			"falls back to project endpoint",
			Settings{ProjectEndpoint: "https://proj.example.com"},
			"https://proj.example.com",
		},
		{
			"both empty",
			Settings{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.ResolvedOpenAIEndpoint())
		})
	}
}

// TestSettings_Has tests the capability predicates
func TestSettings_Has(t *testing.T) {
	s := Settings{}
	assert.False(t, s.HasProject())
	assert.False(t, s.HasSearch())
	assert.False(t, s.HasCompletionModel())

	s.ProjectEndpoint = "https://proj.example.com"
	assert.True(t, s.HasProject())

	s.SearchEndpoint = "https://search.example.com"
	assert.True(t, s.HasSearch())

	// A completion model needs an endpoint to run against.
	s.CompletionModel = "gpt-4o"
	assert.True(t, s.HasCompletionModel())
	assert.False(t, Settings{CompletionModel: "gpt-4o"}.HasCompletionModel())
}
