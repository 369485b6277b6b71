package foundry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// threadAndRunRequest starts a run against a freshly created thread.
type threadAndRunRequest struct {
	AssistantID string        `json:"assistant_id"`
	Thread      threadOptions `json:"thread"`
}

type threadOptions struct {
	Messages []threadMessageOption `json:"messages"`
}

type threadMessageOption struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// runObject is the wire representation of a run. Timestamps are Unix
// seconds; zero means not reached.
type runObject struct {
	ID          string          `json:"id"`
	ThreadID    string          `json:"thread_id"`
	Status      string          `json:"status"`
	StartedAt   int64           `json:"started_at"`
	CompletedAt int64           `json:"completed_at"`
	LastError   *runErrorObject `json:"last_error"`
}

type runErrorObject struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (r runObject) toDomain() domain.Run {
	run := domain.Run{
		ID:       r.ID,
		ThreadID: r.ThreadID,
		Status:   domain.RunStatus(r.Status),
	}
	if r.StartedAt > 0 {
		run.StartedAt = time.Unix(r.StartedAt, 0).UTC()
	}
	if r.CompletedAt > 0 {
		run.CompletedAt = time.Unix(r.CompletedAt, 0).UTC()
	}
	if r.LastError != nil {
		run.LastError = &domain.RunError{Code: r.LastError.Code, Message: r.LastError.Message}
	}
	return run
}

// CreateThreadAndRun creates a thread seeded with one user message and
// starts a run of the agent on it in a single call.
func (c *Client) CreateThreadAndRun(
	ctx context.Context, agentID, userMessage string,
) (domain.RunHandle, error) {
	body := threadAndRunRequest{
		AssistantID: agentID,
		Thread: threadOptions{
			Messages: []threadMessageOption{{Role: "user", Content: userMessage}},
		},
	}

	var run runObject
	if err := c.doJSON(ctx, http.MethodPost, c.url("/threads/runs"), body, &run); err != nil {
		return domain.RunHandle{}, fmt.Errorf("create thread and run: %w", err)
	}
	return domain.RunHandle{
		ThreadID: run.ThreadID,
		RunID:    run.ID,
		Status:   domain.RunStatus(run.Status),
	}, nil
}

// GetRun returns the current state of a run.
func (c *Client) GetRun(ctx context.Context, threadID, runID string) (domain.Run, error) {
	var run runObject
	url := c.url("/threads/" + threadID + "/runs/" + runID)
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &run); err != nil {
		return domain.Run{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	return run.toDomain(), nil
}
