package domain

import "time"

// RunStatus is the lifecycle state of a deployed-agent run. The platform
// drives progression; clients only observe.
type RunStatus string

// Run lifecycle states.
const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCancelling     RunStatus = "cancelling"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusExpired        RunStatus = "expired"
)

// IsTerminal returns true when the run can make no further progress.
// requires_action is deliberately non-terminal: tool use is handled
// server-side and the run resumes on its own.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusFailed, RunStatusCancelled, RunStatusExpired:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s RunStatus) String() string {
	return string(s)
}

// RunHandle identifies a freshly created thread-and-run pair.
type RunHandle struct {
	ThreadID string
	RunID    string
	Status   RunStatus
}

// RunError is the platform's last_error payload for a failed run.
type RunError struct {
	Code    string
	Message string
}

// Run is an observed deployed-agent run.
type Run struct {
	// ID is the run id.
	ID string

	// ThreadID is the conversation thread the run executes against.
	ThreadID string

	// Status is the lifecycle state at observation time.
	Status RunStatus

	// StartedAt is when the run started executing. Zero until then.
	StartedAt time.Time

	// CompletedAt is when the run reached a terminal state. Zero until then.
	CompletedAt time.Time

	// LastError is set for failed runs.
	LastError *RunError
}

// ThreadMessage is one message in a conversation thread.
type ThreadMessage struct {
	// Role is the author role, "user" or "assistant".
	Role string

	// Parts holds the ordered content parts.
	Parts []MessagePart
}

// Message part types.
const (
	MessagePartText      = "text"
	MessagePartImageFile = "image_file"
)

// MessagePart is one content part of a thread message.
type MessagePart struct {
	// Type is "text" or "image_file".
	Type string

	// Text is the text value for text parts.
	Text string

	// FileID identifies the file for image_file parts.
	FileID string
}

// FirstText returns the value of the first text part, or "" when the
// message has none.
func (m ThreadMessage) FirstText() (string, bool) {
	for _, p := range m.Parts {
		if p.Type == MessagePartText {
			return p.Text, true
		}
	}
	return "", false
}
