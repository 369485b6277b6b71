package azureauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// defaultIMDSEndpoint is the Azure Instance Metadata Service token endpoint,
// reachable only from inside Azure compute.
const defaultIMDSEndpoint = "http://169.254.169.254/metadata/identity/oauth2/token"

// imdsAPIVersion is the IMDS identity API version.
const imdsAPIVersion = "2018-02-01"

// imdsSource obtains managed-identity tokens from IMDS. An empty clientID
// uses the system-assigned identity.
type imdsSource struct {
	endpoint string
	clientID string
	client   *http.Client
}

func newIMDSSource(clientID string) *imdsSource {
	return &imdsSource{
		endpoint: defaultIMDSEndpoint,
		clientID: clientID,
		// Short timeout so the chain falls through quickly off-Azure.
		client: &http.Client{Timeout: 3 * time.Second},
	}
}

func (s *imdsSource) Name() string { return "managed-identity" }

// imdsTokenResponse is the IMDS token payload. expires_on is Unix seconds
// as a string.
type imdsTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresOn   string `json:"expires_on"`
}

func (s *imdsSource) Token(ctx context.Context, scope string) (string, time.Time, error) {
	// IMDS takes a resource URI, not a scope.
	resource := strings.TrimSuffix(scope, "/.default")

	query := url.Values{}
	query.Set("api-version", imdsAPIVersion)
	query.Set("resource", resource)
	if s.clientID != "" {
		query.Set("client_id", s.clientID)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Metadata", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("imds unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("imds returned status %d: %s",
			resp.StatusCode, snippet(body))
	}

	var payload imdsTokenResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", time.Time{}, fmt.Errorf("decode response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("imds returned an empty token")
	}

	expiry := time.Now().Add(time.Hour)
	if unix, err := strconv.ParseInt(payload.ExpiresOn, 10, 64); err == nil {
		expiry = time.Unix(unix, 0)
	}
	return payload.AccessToken, expiry, nil
}

// snippet truncates a response body for error messages.
func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}
