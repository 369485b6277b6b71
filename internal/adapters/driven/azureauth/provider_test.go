package azureauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
)

// fakeSource is a scriptable tokenSource.
type fakeSource struct {
	name   string
	token  string
	expiry time.Time
	err    error
	calls  int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Token(_ context.Context, _ string) (string, time.Time, error) {
	f.calls++
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return f.token, f.expiry, nil
}

func TestChainProvider_FirstSourceWins(t *testing.T) {
	first := &fakeSource{name: "first", token: "tok-1", expiry: time.Now().Add(time.Hour)}
	second := &fakeSource{name: "second", token: "tok-2", expiry: time.Now().Add(time.Hour)}
	provider := newChainProvider(first, second)

	token, err := provider.GetToken(context.Background(), ScopeSearch)

	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, 0, second.calls)
}

func TestChainProvider_FallsThroughOnFailure(t *testing.T) {
	first := &fakeSource{name: "first", err: errors.New("no credentials")}
	second := &fakeSource{name: "second", token: "tok-2", expiry: time.Now().Add(time.Hour)}
	provider := newChainProvider(first, second)

	token, err := provider.GetToken(context.Background(), ScopeSearch)

	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestChainProvider_AllSourcesFail(t *testing.T) {
	provider := newChainProvider(
		&fakeSource{name: "first", err: errors.New("down")},
		&fakeSource{name: "second", err: errors.New("also down")},
	)

	_, err := provider.GetToken(context.Background(), ScopeSearch)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
}

func TestChainProvider_CachesPerScope(t *testing.T) {
	src := &fakeSource{name: "src", token: "tok", expiry: time.Now().Add(time.Hour)}
	provider := newChainProvider(src)
	ctx := context.Background()

	_, err := provider.GetToken(ctx, ScopeSearch)
	require.NoError(t, err)
	_, err = provider.GetToken(ctx, ScopeSearch)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls, "second call for the same scope hits the cache")

	_, err = provider.GetToken(ctx, ScopeCognitive)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls, "a different scope needs its own token")
}

func TestChainProvider_RefreshesNearExpiry(t *testing.T) {
	// Expiry inside the refresh margin forces a new token on every call.
	src := &fakeSource{name: "src", token: "tok", expiry: time.Now().Add(time.Minute)}
	provider := newChainProvider(src)
	ctx := context.Background()

	_, err := provider.GetToken(ctx, ScopeSearch)
	require.NoError(t, err)
	_, err = provider.GetToken(ctx, ScopeSearch)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestNewChainProvider_ProductionUsesManagedIdentityOnly(t *testing.T) {
	provider := NewChainProvider(domain.Settings{
		RunningInProduction: true,
		ClientID:            "mi-client-id",
	})

	require.Len(t, provider.sources, 1)
	assert.Equal(t, "managed-identity", provider.sources[0].Name())
}

func TestIMDSSource_Token(t *testing.T) {
	t.Run("parses the token payload", func(t *testing.T) {
		expires := time.Now().Add(time.Hour).Unix()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "true", r.Header.Get("Metadata"))
			assert.Equal(t, "https://search.azure.com", r.URL.Query().Get("resource"))
			assert.Equal(t, "mi-client", r.URL.Query().Get("client_id"))
			fmt.Fprintf(w, `{"access_token":"imds-token","expires_on":"%d"}`, expires)
		}))
		defer server.Close()

		src := newIMDSSource("mi-client")
		src.endpoint = server.URL

		token, expiry, err := src.Token(context.Background(), ScopeSearch)

		require.NoError(t, err)
		assert.Equal(t, "imds-token", token)
		assert.Equal(t, expires, expiry.Unix())
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "identity not found", http.StatusBadRequest)
		}))
		defer server.Close()

		src := newIMDSSource("")
		src.endpoint = server.URL

		_, _, err := src.Token(context.Background(), ScopeSearch)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})
}
