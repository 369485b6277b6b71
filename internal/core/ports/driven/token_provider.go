package driven

import "context"

// TokenProvider issues Entra ID access tokens for authenticated API calls.
// Implementations cache tokens per scope and refresh transparently.
//
// Every Azure data-plane adapter (Foundry, OpenAI, AI Search) shares one
// provider and passes its own resource scope.
type TokenProvider interface {
	// GetToken returns a valid access token for the given resource scope,
	// e.g. "https://search.azure.com/.default".
	GetToken(ctx context.Context, scope string) (string, error)
}
