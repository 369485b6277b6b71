package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotConfigured indicates a required endpoint or model name is unset.
	ErrNotConfigured = errors.New("not configured")

	// ErrAgentUnavailable indicates no backend can run an agent: the agent
	// is not deployed and no chat model is configured for direct inference.
	ErrAgentUnavailable = errors.New("no agent platform or chat model is configured")

	// ErrUploadFailed indicates every per-document result of an index
	// upload batch reported failure.
	ErrUploadFailed = errors.New("document upload failed for all results")

	// ErrRunTimeout indicates a deployed-agent run stayed non-terminal past
	// the configured ceiling.
	ErrRunTimeout = errors.New("agent run timed out")
)

// NotConfiguredError names the missing setting and how to fix it.
type NotConfiguredError struct {
	// Setting is the environment variable name.
	Setting string

	// Hint tells the operator what to set. May be empty.
	Hint string
}

func (e *NotConfiguredError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s is not configured.", e.Setting)
	}
	return fmt.Sprintf("%s is not configured. %s", e.Setting, e.Hint)
}

// Is matches ErrNotConfigured.
func (e *NotConfiguredError) Is(target error) bool { return target == ErrNotConfigured }

// AgentUnavailableError reports that neither invocation backend is usable
// for the named agent.
type AgentUnavailableError struct {
	// AgentName is the agent that could not be invoked.
	AgentName string

	// DeployCommand is the CLI command that deploys the agent.
	DeployCommand string
}

func (e *AgentUnavailableError) Error() string {
	return fmt.Sprintf(
		"'%s' is not deployed and AZURE_OPENAI_COMPLETION_MODEL_NAME is not configured. "+
			"Deploy the agent first with `%s`.",
		e.AgentName, e.DeployCommand,
	)
}

// Is matches ErrAgentUnavailable.
func (e *AgentUnavailableError) Is(target error) bool { return target == ErrAgentUnavailable }

// FetchError reports a failed customer-story page fetch.
type FetchError struct {
	// URL is the page that failed.
	URL string

	// StatusCode is the HTTP status for non-2xx responses, 0 on transport errors.
	StatusCode int

	// Err is the underlying transport error, nil on status failures.
	Err error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AgentRunError reports a deployed-agent run that ended in a non-completed
// terminal status.
type AgentRunError struct {
	Status  RunStatus
	Message string
}

func (e *AgentRunError) Error() string {
	return fmt.Sprintf("agent run ended with status '%s': %s", e.Status, e.Message)
}

// AgentOutputError reports an agent reply that is not a JSON object.
type AgentOutputError struct {
	Err error
}

func (e *AgentOutputError) Error() string {
	return fmt.Sprintf("agent returned invalid JSON: %v", e.Err)
}

func (e *AgentOutputError) Unwrap() error { return e.Err }

// RunTimeoutError reports a run that did not reach a terminal status within
// the ceiling.
type RunTimeoutError struct {
	Timeout time.Duration
}

func (e *RunTimeoutError) Error() string {
	return fmt.Sprintf("agent run did not reach a terminal status within %s", e.Timeout)
}

// Is matches ErrRunTimeout.
func (e *RunTimeoutError) Is(target error) bool { return target == ErrRunTimeout }
