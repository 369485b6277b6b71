package azureauth

// Resource scopes for the Azure data planes the CLI talks to.
const (
	// ScopeFoundry covers the Azure AI Foundry Agents API.
	ScopeFoundry = "https://ai.azure.com/.default"

	// ScopeCognitive covers Azure OpenAI inference and embeddings.
	ScopeCognitive = "https://cognitiveservices.azure.com/.default"

	// ScopeSearch covers the Azure AI Search data plane.
	ScopeSearch = "https://search.azure.com/.default"
)
