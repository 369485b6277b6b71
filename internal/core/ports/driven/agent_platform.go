package driven

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// AgentPlatform is the Azure AI Foundry Agents API surface the core needs:
// enumerate and deploy agents, start thread-and-run invocations, poll run
// state, and read thread messages.
//
// This is an optional port - when the project endpoint is not configured it
// is nil and agent operations surface a NotConfiguredError.
type AgentPlatform interface {
	// ListAgents returns every agent in the project, following pagination.
	ListAgents(ctx context.Context) ([]domain.AgentInfo, error)

	// CreateAgent deploys a new agent on the given model deployment.
	CreateAgent(ctx context.Context, model string, def domain.AgentDefinition) (domain.AgentInfo, error)

	// UpdateAgent redeploys an existing agent in place.
	UpdateAgent(ctx context.Context, agentID, model string, def domain.AgentDefinition) (domain.AgentInfo, error)

	// CreateThreadAndRun creates a thread seeded with one user message and
	// starts a run of the given agent on it.
	CreateThreadAndRun(ctx context.Context, agentID, userMessage string) (domain.RunHandle, error)

	// GetRun returns the current state of a run.
	GetRun(ctx context.Context, threadID, runID string) (domain.Run, error)

	// ListMessages returns the thread's messages, newest first.
	ListMessages(ctx context.Context, threadID string) ([]domain.ThreadMessage, error)
}
