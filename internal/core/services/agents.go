package services

import (
	"context"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driving"
)

// Ensure AgentService implements the interface.
var _ driving.AgentService = (*AgentService)(nil)

// AgentService exposes deployed-agent operations: listing, asynchronous
// invocation, and follow-up by invocation ID. Invocations are stateless on
// the client side; the invocation ID carries the (thread, run) pair.
type AgentService struct {
	platform driven.AgentPlatform // optional
}

// NewAgentService creates an agent service. platform may be nil; every
// operation then surfaces a NotConfiguredError.
func NewAgentService(platform driven.AgentPlatform) *AgentService {
	return &AgentService{platform: platform}
}

// List returns every agent deployed in the Foundry project.
func (s *AgentService) List(ctx context.Context) ([]domain.AgentInfo, error) {
	if s.platform == nil {
		return nil, &domain.NotConfiguredError{
			Setting: "AZURE_AI_PROJECT_ENDPOINT",
			Hint:    "Set this environment variable to your Azure AI Foundry project endpoint.",
		}
	}
	return s.platform.ListAgents(ctx)
}

// Invoke creates a thread seeded with the task and starts a run against
// agentID. fileContext, when non-empty, is appended as additional context.
func (s *AgentService) Invoke(
	ctx context.Context, agentID, task, fileContext string,
) (domain.RunHandle, error) {
	if s.platform == nil {
		return domain.RunHandle{}, &domain.NotConfiguredError{Setting: "AZURE_AI_PROJECT_ENDPOINT"}
	}

	content := task
	if fileContext != "" {
		content = task + "\n\nAdditional context:\n" + fileContext
	}
	return s.platform.CreateThreadAndRun(ctx, agentID, content)
}

// Status resolves the invocation ID and returns the current run state.
func (s *AgentService) Status(ctx context.Context, invocationID string) (domain.Run, error) {
	if s.platform == nil {
		return domain.Run{}, &domain.NotConfiguredError{Setting: "AZURE_AI_PROJECT_ENDPOINT"}
	}

	threadID, runID, err := domain.ParseInvocationID(invocationID)
	if err != nil {
		return domain.Run{}, err
	}
	return s.platform.GetRun(ctx, threadID, runID)
}

// Result resolves the invocation ID and returns the run plus, for completed
// runs, the thread's messages newest first.
func (s *AgentService) Result(
	ctx context.Context, invocationID string,
) (domain.Run, []domain.ThreadMessage, error) {
	if s.platform == nil {
		return domain.Run{}, nil, &domain.NotConfiguredError{Setting: "AZURE_AI_PROJECT_ENDPOINT"}
	}

	threadID, runID, err := domain.ParseInvocationID(invocationID)
	if err != nil {
		return domain.Run{}, nil, err
	}

	run, err := s.platform.GetRun(ctx, threadID, runID)
	if err != nil {
		return domain.Run{}, nil, err
	}
	if run.Status != domain.RunStatusCompleted {
		return run, nil, nil
	}

	messages, err := s.platform.ListMessages(ctx, threadID)
	if err != nil {
		return domain.Run{}, nil, err
	}
	return run, messages, nil
}
