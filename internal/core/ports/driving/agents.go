package driving

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// AgentService exposes the deployed-agent operations behind the MCP agent
// tools: listing, asynchronous invocation, and invocation follow-up.
type AgentService interface {
	// List returns every agent deployed in the Foundry project.
	List(ctx context.Context) ([]domain.AgentInfo, error)

	// Invoke starts an agent run against a fresh thread. fileContext, when
	// non-empty, is appended to the task as additional context. The returned
	// handle carries the invocation ID parts.
	Invoke(ctx context.Context, agentID, task, fileContext string) (domain.RunHandle, error)

	// Status resolves an invocation ID and returns the current run state.
	Status(ctx context.Context, invocationID string) (domain.Run, error)

	// Result resolves an invocation ID and returns the run plus, for
	// completed runs, the thread messages newest first. Messages are nil
	// while the run has not completed.
	Result(ctx context.Context, invocationID string) (domain.Run, []domain.ThreadMessage, error)
}
