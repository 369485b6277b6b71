package driven

import "context"

// PageFetcher downloads a public web page and returns its visible text,
// ready to hand to an agent. Implementations strip markup and boilerplate
// and bound the result length.
type PageFetcher interface {
	// FetchPageText downloads url and returns the extracted page text.
	// Non-2xx responses and transport failures return *domain.FetchError.
	FetchPageText(ctx context.Context, url string) (string, error)
}
