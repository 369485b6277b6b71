package services

import (
	"context"
	"time"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
	"github.com/custodia-labs/foundry-cli/internal/logger"
)

// AgentInvoker runs an instruction-bearing agent on a user message and
// returns its raw textual reply. Callers parse the reply themselves.
type AgentInvoker interface {
	Invoke(ctx context.Context, def domain.AgentDefinition, userMessage string) (string, error)
}

// Ensure Invoker implements the interface.
var _ AgentInvoker = (*Invoker)(nil)

// Invoker runs agents with two interchangeable backends.
//
// A deployed Foundry agent is preferred when one with the definition's name
// exists, so runs show up in the platform's telemetry. Otherwise the
// definition's instructions are sent as a direct chat completion in JSON
// mode. Both backends honour the same reply contract.
type Invoker struct {
	platform     driven.AgentPlatform // optional
	chat         driven.ChatCompleter // optional
	pollInterval time.Duration
	runTimeout   time.Duration
}

// NewInvoker creates an invoker. Either backend may be nil; invoking with
// both missing returns an AgentUnavailableError.
func NewInvoker(
	platform driven.AgentPlatform,
	chat driven.ChatCompleter,
	pollInterval, runTimeout time.Duration,
) *Invoker {
	if pollInterval <= 0 {
		pollInterval = domain.DefaultPollInterval
	}
	if runTimeout <= 0 {
		runTimeout = domain.DefaultAgentRunTimeout
	}
	return &Invoker{
		platform:     platform,
		chat:         chat,
		pollInterval: pollInterval,
		runTimeout:   runTimeout,
	}
}

// Invoke runs the agent described by def on userMessage and returns the raw
// reply text.
func (s *Invoker) Invoke(
	ctx context.Context, def domain.AgentDefinition, userMessage string,
) (string, error) {
	if s.platform != nil {
		agent, err := s.findAgent(ctx, def.Name)
		if err != nil {
			return "", err
		}
		if agent != nil {
			logger.Info("Using deployed Foundry agent %s (%s)", def.Name, agent.ID)
			return s.invokeRemote(ctx, agent.ID, userMessage)
		}
	}

	if s.chat == nil {
		return "", &domain.AgentUnavailableError{
			AgentName:     def.Name,
			DeployCommand: def.DeployCommand,
		}
	}

	logger.Info("Deployed agent not found; using direct inference for %s", def.Name)
	reply, err := s.chat.CompleteJSON(ctx, def.Instructions, userMessage, def.Temperature)
	if err != nil {
		return "", err
	}
	if reply == "" {
		reply = "{}"
	}
	return reply, nil
}

// findAgent returns the first agent whose name matches exactly, or nil.
func (s *Invoker) findAgent(ctx context.Context, name string) (*domain.AgentInfo, error) {
	agents, err := s.platform.ListAgents(ctx)
	if err != nil {
		return nil, err
	}
	for i := range agents {
		if agents[i].Name == name {
			return &agents[i], nil
		}
	}
	return nil, nil
}

// invokeRemote runs the deployed-agent backend: create a thread seeded with
// the user message, start a run, poll until terminal, and return the text
// of the newest assistant message.
func (s *Invoker) invokeRemote(ctx context.Context, agentID, userMessage string) (string, error) {
	handle, err := s.platform.CreateThreadAndRun(ctx, agentID, userMessage)
	if err != nil {
		return "", err
	}
	logger.Debug("Run %s started on thread %s", handle.RunID, handle.ThreadID)

	run, err := s.pollRun(ctx, handle.ThreadID, handle.RunID)
	if err != nil {
		return "", err
	}

	if run.Status != domain.RunStatusCompleted {
		msg := "Unknown error"
		if run.LastError != nil {
			msg = run.LastError.Message
		}
		return "", &domain.AgentRunError{Status: run.Status, Message: msg}
	}

	messages, err := s.platform.ListMessages(ctx, handle.ThreadID)
	if err != nil {
		return "", err
	}
	for _, msg := range messages {
		if msg.Role != "assistant" {
			continue
		}
		text, _ := msg.FirstText()
		return text, nil
	}
	return "", nil
}

// pollRun polls the run every pollInterval until it reaches a terminal
// status. requires_action is non-terminal: tool use is resolved server-side
// and the run resumes on its own. The overall ceiling guards against runs
// that never leave a non-terminal state.
func (s *Invoker) pollRun(ctx context.Context, threadID, runID string) (domain.Run, error) {
	deadline := time.Now().Add(s.runTimeout)
	for {
		run, err := s.platform.GetRun(ctx, threadID, runID)
		if err != nil {
			return domain.Run{}, err
		}
		if run.Status.IsTerminal() {
			return run, nil
		}
		logger.Debug("Run %s status: %s", runID, run.Status)

		if time.Now().After(deadline) {
			return domain.Run{}, &domain.RunTimeoutError{Timeout: s.runTimeout}
		}

		timer := time.NewTimer(s.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return domain.Run{}, ctx.Err()
		case <-timer.C:
		}
	}
}
