package driving

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// DeployService deploys the workflow agents to the Foundry project.
type DeployService interface {
	// Deploy creates the agent, or updates it in place when an agent with
	// the same name already exists.
	Deploy(ctx context.Context, def domain.AgentDefinition) (domain.DeployResult, error)
}
