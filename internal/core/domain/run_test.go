package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRunStatus_IsTerminal tests the terminal set
func TestRunStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status RunStatus
		want   bool
	}{
		{RunStatusQueued, false},
		{RunStatusInProgress, false},
		{RunStatusRequiresAction, false},
		{RunStatusCancelling, false},
		{RunStatusCompleted, true},
		{RunStatusFailed, true},
		{RunStatusCancelled, true},
		{RunStatusExpired, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

// TestThreadMessage_FirstText tests text part selection
func TestThreadMessage_FirstText(t *testing.T) {
	msg := ThreadMessage{
		Role: "assistant",
		Parts: []MessagePart{
			{Type: MessagePartImageFile, FileID: "file-1"},
			{Type: MessagePartText, Text: "first"},
			{Type: MessagePartText, Text: "second"},
		},
	}

	text, ok := msg.FirstText()
	assert.True(t, ok)
	assert.Equal(t, "first", text)
}

// TestThreadMessage_FirstText_NoText tests a message with no text parts
func TestThreadMessage_FirstText_NoText(t *testing.T) {
	msg := ThreadMessage{
		Role:  "assistant",
		Parts: []MessagePart{{Type: MessagePartImageFile, FileID: "file-1"}},
	}

	text, ok := msg.FirstText()
	assert.False(t, ok)
	assert.Empty(t, text)
}
