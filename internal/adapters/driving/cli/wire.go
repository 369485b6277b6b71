package cli

import (
	"fmt"

	"github.com/custodia-labs/foundry-cli/internal/adapters/driven/aisearch"
	"github.com/custodia-labs/foundry-cli/internal/adapters/driven/azureauth"
	"github.com/custodia-labs/foundry-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/foundry-cli/internal/adapters/driven/fetch"
	"github.com/custodia-labs/foundry-cli/internal/adapters/driven/foundry"
	"github.com/custodia-labs/foundry-cli/internal/adapters/driven/openai"
	"github.com/custodia-labs/foundry-cli/internal/adapters/driven/templates"
	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driving"
	"github.com/custodia-labs/foundry-cli/internal/core/services"
	"github.com/custodia-labs/foundry-cli/internal/logger"
)

// app bundles the wired driving services for the commands.
type app struct {
	settings domain.Settings
	agents   driving.AgentService
	deploy   driving.DeployService
	search   driving.SearchService
	index    driving.IndexService
	workflow driving.WorkflowService
}

// newApp builds the service set. Tests swap this out for mocks.
var newApp = buildApp

// buildApp resolves settings, sets up the credential chain, and constructs
// every adapter and service. Unconfigured backends stay nil; the services
// degrade per-operation instead of failing here.
func buildApp() (*app, error) {
	settings, err := file.NewStore("").Load()
	if err != nil {
		return nil, err
	}
	tokens := azureauth.NewChainProvider(settings)

	if settings.AppInsightsConnString != "" {
		logger.Debug("Application Insights connection string is configured")
	}

	var platform driven.AgentPlatform
	if settings.HasProject() {
		client, err := foundry.NewClient(foundry.Config{
			Endpoint: settings.ProjectEndpoint,
			Tokens:   tokens,
		})
		if err != nil {
			return nil, fmt.Errorf("building Foundry client: %w", err)
		}
		platform = client
		logger.Debug("Agent platform configured: %s", settings.ProjectEndpoint)
	}

	var (
		embedder driven.Embedder
		chat     driven.ChatCompleter
	)
	if endpoint := settings.ResolvedOpenAIEndpoint(); endpoint != "" {
		client, err := openai.NewClient(openai.Config{
			Endpoint:   endpoint,
			Tokens:     tokens,
			APIVersion: settings.OpenAIAPIVersion,
		})
		if err != nil {
			return nil, fmt.Errorf("building OpenAI client: %w", err)
		}
		embedder = openai.NewEmbedder(client, settings.EmbeddingModel, settings.EmbeddingDimensions)
		if settings.HasCompletionModel() {
			chat = openai.NewChatCompleter(client, settings.CompletionModel)
		}
	}

	var searchIndex driven.SearchIndex
	if settings.HasSearch() {
		client, err := aisearch.NewClient(aisearch.Config{
			Endpoint:   settings.SearchEndpoint,
			IndexName:  settings.SearchIndexName,
			Tokens:     tokens,
			Dimensions: settings.EmbeddingDimensions,
		})
		if err != nil {
			return nil, fmt.Errorf("building Search client: %w", err)
		}
		searchIndex = client
		logger.Debug("Search index configured: %s", settings.SearchIndexName)
	}

	indexService := services.NewIndexService(embedder, searchIndex)
	invoker := services.NewInvoker(platform, chat, settings.PollInterval, settings.AgentRunTimeout)

	return &app{
		settings: settings,
		agents:   services.NewAgentService(platform),
		deploy:   services.NewDeployService(platform, settings.CompletionModel),
		search:   services.NewSearchService(embedder, searchIndex),
		index:    indexService,
		workflow: services.NewWorkflowService(fetch.New(), invoker, indexService, templates.New()),
	}, nil
}
