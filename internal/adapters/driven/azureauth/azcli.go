package azureauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"
)

// azCLISource shells out to `az account get-access-token`, the local
// developer fallback when no service principal or managed identity exists.
type azCLISource struct{}

func newAzureCLISource() *azCLISource { return &azCLISource{} }

func (s *azCLISource) Name() string { return "azure-cli" }

// azTokenResponse is the az CLI token payload. expiresOn is local time in
// "2006-01-02 15:04:05.000000" format; newer CLI versions also emit
// expires_on as Unix seconds.
type azTokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresOn   string `json:"expiresOn"`
	ExpiresUnix int64  `json:"expires_on"`
}

func (s *azCLISource) Token(ctx context.Context, scope string) (string, time.Time, error) {
	cmd := exec.CommandContext(ctx,
		"az", "account", "get-access-token", "--scope", scope, "--output", "json")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := snippet(stderr.Bytes())
		if msg == "" {
			return "", time.Time{}, fmt.Errorf("az CLI failed: %w", err)
		}
		return "", time.Time{}, fmt.Errorf("az CLI failed: %s", msg)
	}

	var payload azTokenResponse
	if err := json.Unmarshal(stdout.Bytes(), &payload); err != nil {
		return "", time.Time{}, fmt.Errorf("decode az CLI output: %w", err)
	}
	if payload.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("az CLI returned an empty token")
	}

	expiry := time.Now().Add(time.Hour)
	if payload.ExpiresUnix > 0 {
		expiry = time.Unix(payload.ExpiresUnix, 0)
	} else if t, err := time.ParseInLocation("2006-01-02 15:04:05.000000", payload.ExpiresOn, time.Local); err == nil {
		expiry = t
	}
	return payload.AccessToken, expiry, nil
}
