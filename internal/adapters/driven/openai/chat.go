package openai

import (
	"context"
	"fmt"

	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
)

// Ensure ChatCompleter implements the interface.
var _ driven.ChatCompleter = (*ChatCompleter)(nil)

type chatRequest struct {
	Messages       []chatMessage  `json:"messages"`
	Temperature    float32        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompleter runs JSON-mode chat completions against one deployment.
type ChatCompleter struct {
	client     *Client
	deployment string
}

// NewChatCompleter creates a completer bound to a chat model deployment.
func NewChatCompleter(client *Client, deployment string) *ChatCompleter {
	return &ChatCompleter{client: client, deployment: deployment}
}

// CompleteJSON sends one system + user message pair in JSON mode and
// returns the assistant reply text.
func (c *ChatCompleter) CompleteJSON(
	ctx context.Context, system, user string, temperature float32,
) (string, error) {
	body := chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	var resp chatResponse
	path := "/openai/deployments/" + c.deployment + "/chat/completions"
	if err := c.client.postJSON(ctx, path, body, &resp); err != nil {
		return "", fmt.Errorf("chat completion on %s: %w", c.deployment, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion on %s: no choices returned", c.deployment)
	}
	return resp.Choices[0].Message.Content, nil
}
