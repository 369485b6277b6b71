package domain

import (
	"fmt"
	"strings"
)

const invocationIDSeparator = "::"

// NewInvocationID serialises a (thread, run) pair into the opaque handle
// handed to MCP clients.
func NewInvocationID(threadID, runID string) string {
	return threadID + invocationIDSeparator + runID
}

// ParseInvocationID splits an invocation ID back into its thread and run
// ids. Exactly one "::" separator is required.
func ParseInvocationID(invocationID string) (threadID, runID string, err error) {
	parts := strings.Split(invocationID, invocationIDSeparator)
	if len(parts) != 2 {
		return "", "", &InvalidInvocationIDError{ID: invocationID}
	}
	return parts[0], parts[1], nil
}

// InvalidInvocationIDError reports a malformed invocation ID. Its message is
// shown to MCP clients verbatim.
type InvalidInvocationIDError struct {
	ID string
}

func (e *InvalidInvocationIDError) Error() string {
	return fmt.Sprintf(
		"Invalid invocation ID '%s'. Expected format: '<thread_id>::<run_id>'.", e.ID,
	)
}
