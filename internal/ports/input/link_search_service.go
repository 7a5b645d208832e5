package input

import (
	"context"

	"gamelink-finder/internal/domain"
)

// LinkSearchService interface - Input port (use case)
// Finds purchase links for a game title through the external search provider.
type LinkSearchService interface {
	// Execute searches for gameName, keeping only links of filter when it is not
	// domain.StoreUnknown. Failures are domain.ErrRetriesExhausted, domain.ErrEmptyResult
	// or domain.ErrSearchProvider.
	Execute(ctx context.Context, gameName string, filter domain.Store) (*domain.SearchResult, error)
}
