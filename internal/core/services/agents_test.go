package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

func TestAgentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns platform agents", func(t *testing.T) {
		platform := &mockAgentPlatform{
			agents: []domain.AgentInfo{{ID: "asst-1", Name: "A"}, {ID: "asst-2", Name: "B"}},
		}
		svc := NewAgentService(platform)

		agents, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Len(t, agents, 2)
	})

	t.Run("not configured without platform", func(t *testing.T) {
		svc := NewAgentService(nil)

		_, err := svc.List(ctx)

		require.ErrorIs(t, err, domain.ErrNotConfigured)
		assert.Contains(t, err.Error(), "Azure AI Foundry project endpoint")
	})
}

func TestAgentService_Invoke(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the task as thread content", func(t *testing.T) {
		platform := &mockAgentPlatform{
			handle: domain.RunHandle{ThreadID: "t1", RunID: "r1", Status: domain.RunStatusQueued},
		}
		svc := NewAgentService(platform)

		handle, err := svc.Invoke(ctx, "asst-1", "summarise this", "")

		require.NoError(t, err)
		assert.Equal(t, "t1", handle.ThreadID)
		assert.Equal(t, "summarise this", platform.runUserMessage)
	})

	t.Run("appends file context", func(t *testing.T) {
		platform := &mockAgentPlatform{handle: domain.RunHandle{ThreadID: "t1", RunID: "r1"}}
		svc := NewAgentService(platform)

		_, err := svc.Invoke(ctx, "asst-1", "summarise this", "file body")

		require.NoError(t, err)
		assert.Equal(t, "summarise this\n\nAdditional context:\nfile body", platform.runUserMessage)
	})
}

func TestAgentService_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves invocation ID", func(t *testing.T) {
		platform := &mockAgentPlatform{runStatuses: []domain.RunStatus{domain.RunStatusInProgress}}
		svc := NewAgentService(platform)

		run, err := svc.Status(ctx, "t123::r456")

		require.NoError(t, err)
		assert.Equal(t, "t123", run.ThreadID)
		assert.Equal(t, "r456", run.ID)
		assert.Equal(t, domain.RunStatusInProgress, run.Status)
	})

	t.Run("rejects malformed invocation IDs", func(t *testing.T) {
		svc := NewAgentService(&mockAgentPlatform{})

		for _, id := range []string{"abc", "t::r::x", ""} {
			_, err := svc.Status(ctx, id)
			var invErr *domain.InvalidInvocationIDError
			require.ErrorAs(t, err, &invErr, "id %q", id)
		}
	})
}

func TestAgentService_Result(t *testing.T) {
	ctx := context.Background()

	t.Run("returns messages for completed runs", func(t *testing.T) {
		platform := &mockAgentPlatform{
			runStatuses: []domain.RunStatus{domain.RunStatusCompleted},
			messages:    []domain.ThreadMessage{assistantMessage("done")},
		}
		svc := NewAgentService(platform)

		run, messages, err := svc.Result(ctx, "t1::r1")

		require.NoError(t, err)
		assert.Equal(t, domain.RunStatusCompleted, run.Status)
		require.Len(t, messages, 1)
		text, ok := messages[0].FirstText()
		require.True(t, ok)
		assert.Equal(t, "done", text)
	})

	t.Run("no messages while the run is in flight", func(t *testing.T) {
		platform := &mockAgentPlatform{runStatuses: []domain.RunStatus{domain.RunStatusQueued}}
		svc := NewAgentService(platform)

		run, messages, err := svc.Result(ctx, "t1::r1")

		require.NoError(t, err)
		assert.Equal(t, domain.RunStatusQueued, run.Status)
		assert.Nil(t, messages)
		assert.Equal(t, 0, platform.listMsgCalls)
	})
}
