package services

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driving"
	"github.com/custodia-labs/foundry-cli/internal/logger"
)

// Ensure DeployService implements the interface.
var _ driving.DeployService = (*DeployService)(nil)

// DeployService deploys workflow agents to the Foundry project. Deployment
// is idempotent: an agent with a matching name is updated in place.
type DeployService struct {
	platform driven.AgentPlatform // optional
	model    string               // chat model deployment name
}

// NewDeployService creates a deploy service. platform may be nil and model
// may be empty; Deploy surfaces a NotConfiguredError in either case.
func NewDeployService(platform driven.AgentPlatform, model string) *DeployService {
	return &DeployService{platform: platform, model: model}
}

// Deploy creates or updates the agent and returns its platform id.
func (s *DeployService) Deploy(
	ctx context.Context, def domain.AgentDefinition,
) (domain.DeployResult, error) {
	if s.platform == nil {
		return domain.DeployResult{}, &domain.NotConfiguredError{
			Setting: "AZURE_AI_PROJECT_ENDPOINT",
			Hint:    "Set this environment variable before deploying.",
		}
	}
	if s.model == "" {
		return domain.DeployResult{}, &domain.NotConfiguredError{
			Setting: "AZURE_OPENAI_COMPLETION_MODEL_NAME",
			Hint:    "Set this environment variable to your chat model deployment name.",
		}
	}

	agents, err := s.platform.ListAgents(ctx)
	if err != nil {
		return domain.DeployResult{}, err
	}

	for _, agent := range agents {
		if agent.Name != def.Name {
			continue
		}
		logger.Info("Updating existing agent %s (%s)", def.Name, agent.ID)
		updated, err := s.platform.UpdateAgent(ctx, agent.ID, s.model, def)
		if err != nil {
			return domain.DeployResult{}, err
		}
		return domain.DeployResult{AgentID: updated.ID, Created: false}, nil
	}

	logger.Info("Creating agent %s", def.Name)
	created, err := s.platform.CreateAgent(ctx, s.model, def)
	if err != nil {
		return domain.DeployResult{}, err
	}
	return domain.DeployResult{AgentID: created.ID, Created: true}, nil
}
