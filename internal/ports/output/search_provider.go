package output

import "context"

// SearchProvider interface - Output port
// Defines what the application needs from the external web search engine.
type SearchProvider interface {
	// Search returns up to maxResults result URLs of the given zero-based page.
	// A throttled request fails with an error wrapping domain.ErrRateLimited.
	Search(ctx context.Context, query string, page, maxResults int) ([]string, error)
}
