package domain

import "time"

// Default configuration values.
const (
	// DefaultSearchIndexName is the project-log index name.
	DefaultSearchIndexName = "project-log-index"

	// DefaultEmbeddingModel is the embedding deployment name.
	DefaultEmbeddingModel = "text-embedding-3-small"

	// DefaultEmbeddingDimensions is the embedding vector length D.
	DefaultEmbeddingDimensions = 1536

	// DefaultOpenAIAPIVersion is the Azure OpenAI REST api-version.
	DefaultOpenAIAPIVersion = "2024-10-21"

	// DefaultAgentRunTimeout bounds how long a deployed-agent run may stay
	// non-terminal before the poller gives up.
	DefaultAgentRunTimeout = 10 * time.Minute

	// DefaultPollInterval is the delay between run status polls.
	DefaultPollInterval = 2 * time.Second
)

// Settings is the resolved runtime configuration. Environment variables are
// authoritative; an optional config file fills in unset values.
type Settings struct {
	// ProjectEndpoint is the Azure AI Foundry project endpoint.
	// Empty disables the agent platform.
	ProjectEndpoint string

	// SearchEndpoint is the Azure AI Search service endpoint.
	// Empty disables the index and search tools.
	SearchEndpoint string

	// SearchIndexName is the project-log index name.
	SearchIndexName string

	// OpenAIEndpoint is the Azure OpenAI endpoint. When empty, the project
	// endpoint serves OpenAI traffic too.
	OpenAIEndpoint string

	// EmbeddingModel is the embedding deployment name.
	EmbeddingModel string

	// EmbeddingDimensions is the vector length D for the index schema and
	// every stored document.
	EmbeddingDimensions int

	// CompletionModel is the chat deployment name. Empty disables the
	// direct inference backend and agent deployment.
	CompletionModel string

	// OpenAIAPIVersion is the Azure OpenAI REST api-version.
	OpenAIAPIVersion string

	// RunningInProduction selects managed-identity-only authentication.
	RunningInProduction bool

	// ClientID is the user-assigned managed identity client id.
	ClientID string

	// AppInsightsConnString is read for parity with the deployment
	// environment; telemetry export is out of scope.
	AppInsightsConnString string

	// AgentRunTimeout bounds the run poll loop.
	AgentRunTimeout time.Duration

	// PollInterval is the delay between run status polls.
	PollInterval time.Duration
}

// DefaultSettings returns a Settings with every default applied and all
// endpoints unset.
func DefaultSettings() Settings {
	return Settings{
		SearchIndexName:     DefaultSearchIndexName,
		EmbeddingModel:      DefaultEmbeddingModel,
		EmbeddingDimensions: DefaultEmbeddingDimensions,
		OpenAIAPIVersion:    DefaultOpenAIAPIVersion,
		AgentRunTimeout:     DefaultAgentRunTimeout,
		PollInterval:        DefaultPollInterval,
	}
}

// ResolvedOpenAIEndpoint returns the endpoint OpenAI traffic should use:
// the dedicated endpoint when set, otherwise the project endpoint.
func (s Settings) ResolvedOpenAIEndpoint() string {
	if s.OpenAIEndpoint != "" {
		return s.OpenAIEndpoint
	}
	return s.ProjectEndpoint
}

// HasProject returns true when the agent platform is configured.
func (s Settings) HasProject() bool {
	return s.ProjectEndpoint != ""
}

// HasSearch returns true when the search index is configured.
func (s Settings) HasSearch() bool {
	return s.SearchEndpoint != ""
}

// HasCompletionModel returns true when direct chat inference is configured.
func (s Settings) HasCompletionModel() bool {
	return s.CompletionModel != "" && s.ResolvedOpenAIEndpoint() != ""
}
