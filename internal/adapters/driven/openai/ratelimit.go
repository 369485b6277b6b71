package openai

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// defaultRetryDelay is used when a 429 carries no Retry-After header.
const defaultRetryDelay = 2 * time.Second

// limiter proactively throttles inference calls. Azure OpenAI enforces
// per-deployment requests-per-minute quotas and answers overruns with 429.
type limiter struct {
	bucket *rate.Limiter
}

func newLimiter(perSecond float64) *limiter {
	return &limiter{bucket: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// Wait blocks until the next request is allowed.
func (l *limiter) Wait(ctx context.Context) error {
	return l.bucket.Wait(ctx)
}

// retryAfter reads the Retry-After header off a 429 response, in whole
// seconds per the service contract.
func retryAfter(resp *http.Response) time.Duration {
	if header := resp.Header.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultRetryDelay
}
