// Package azureauth issues Entra ID access tokens for the Azure data
// planes the CLI calls. It mirrors the DefaultAzureCredential behaviour of
// the Azure SDKs: a chain of token sources (client secret, managed
// identity, Azure CLI) tried in order, with tokens cached per scope.
package azureauth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
	"github.com/custodia-labs/foundry-cli/internal/logger"
)

// Ensure ChainProvider implements the interface.
var _ driven.TokenProvider = (*ChainProvider)(nil)

// refreshMargin is how long before expiry a cached token is discarded.
const refreshMargin = 5 * time.Minute

// tokenSource is one way of obtaining an access token for a scope.
type tokenSource interface {
	// Name identifies the source in error messages and verbose logs.
	Name() string

	// Token returns an access token and its expiry for the given scope.
	Token(ctx context.Context, scope string) (token string, expiry time.Time, err error)
}

// cachedToken is a token with its expiry, cached per scope.
type cachedToken struct {
	value  string
	expiry time.Time
}

// ChainProvider tries each configured token source in order and caches the
// first token obtained for a scope. Safe for concurrent use.
type ChainProvider struct {
	sources []tokenSource

	mu    sync.Mutex
	cache map[string]cachedToken
}

// NewChainProvider builds the credential chain for the given settings.
//
// In production with a user-assigned identity (RUNNING_IN_PRODUCTION and
// AZURE_CLIENT_ID both set) the chain is managed identity only. Otherwise
// it is client secret (when the AZURE_TENANT_ID / AZURE_CLIENT_ID /
// AZURE_CLIENT_SECRET variables are present), then managed identity, then
// the Azure CLI.
func NewChainProvider(settings domain.Settings) *ChainProvider {
	if settings.RunningInProduction && settings.ClientID != "" {
		return newChainProvider(newIMDSSource(settings.ClientID))
	}

	var sources []tokenSource
	if os.Getenv("AZURE_TENANT_ID") != "" &&
		os.Getenv("AZURE_CLIENT_ID") != "" &&
		os.Getenv("AZURE_CLIENT_SECRET") != "" {
		sources = append(sources, newClientSecretSource(
			os.Getenv("AZURE_TENANT_ID"),
			os.Getenv("AZURE_CLIENT_ID"),
			os.Getenv("AZURE_CLIENT_SECRET"),
		))
	}
	sources = append(sources, newIMDSSource(settings.ClientID), newAzureCLISource())
	return newChainProvider(sources...)
}

func newChainProvider(sources ...tokenSource) *ChainProvider {
	return &ChainProvider{
		sources: sources,
		cache:   make(map[string]cachedToken),
	}
}

// GetToken returns a valid access token for the scope, reusing a cached
// token while it has more than refreshMargin left.
func (p *ChainProvider) GetToken(ctx context.Context, scope string) (string, error) {
	p.mu.Lock()
	if cached, ok := p.cache[scope]; ok && time.Until(cached.expiry) > refreshMargin {
		p.mu.Unlock()
		return cached.value, nil
	}
	p.mu.Unlock()

	var errs []error
	for _, src := range p.sources {
		token, expiry, err := src.Token(ctx, scope)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			logger.Debug("Token source %s failed for %s: %v", src.Name(), scope, err)
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		logger.Debug("Token source %s issued a token for %s", src.Name(), scope)

		p.mu.Lock()
		p.cache[scope] = cachedToken{value: token, expiry: expiry}
		p.mu.Unlock()
		return token, nil
	}

	return "", fmt.Errorf("azureauth: no credential could issue a token for %s: %w",
		scope, errors.Join(errs...))
}
