package azureauth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

// loginEndpoint is the Entra ID token endpoint template.
const loginEndpoint = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"

// clientSecretSource exchanges service-principal credentials for tokens via
// the OAuth2 client-credentials flow.
type clientSecretSource struct {
	tenantID     string
	clientID     string
	clientSecret string
}

func newClientSecretSource(tenantID, clientID, clientSecret string) *clientSecretSource {
	return &clientSecretSource{
		tenantID:     tenantID,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

func (s *clientSecretSource) Name() string { return "client-secret" }

func (s *clientSecretSource) Token(ctx context.Context, scope string) (string, time.Time, error) {
	cfg := clientcredentials.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		TokenURL:     fmt.Sprintf(loginEndpoint, s.tenantID),
		Scopes:       []string{scope},
	}

	token, err := cfg.Token(ctx)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("requesting token: %w", err)
	}
	return token.AccessToken, token.Expiry, nil
}
