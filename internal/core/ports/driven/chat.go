package driven

import "context"

// ChatCompleter runs a single chat completion that must return JSON.
// It is the fallback backend for agents that are not deployed to the
// platform: the agent's instructions become the system prompt.
//
// This is an optional port - when no completion model is configured it is
// nil and only deployed agents can be invoked.
type ChatCompleter interface {
	// CompleteJSON sends one system + user message pair in JSON mode and
	// returns the assistant reply text.
	CompleteJSON(ctx context.Context, system, user string, temperature float32) (string, error)
}
