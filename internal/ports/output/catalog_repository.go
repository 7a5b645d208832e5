package output

import (
	"context"

	"gamelink-finder/internal/domain"

	"github.com/google/uuid"
)

// CatalogRepository interface - Output port
// Defines what the application needs from catalog persistence. Readers may run
// concurrently with a single inserting writer.
type CatalogRepository interface {
	// ListTitles returns every game name in stable catalog order
	ListTitles(ctx context.Context) ([]string, error)
	// ListGenres returns the distinct genres in alphabetical order
	ListGenres(ctx context.Context) ([]string, error)
	// ListByGenre returns the id and name of the games of a genre, paged
	ListByGenre(ctx context.Context, condition domain.QueryGameRequest) (*domain.GameListResponse, error)
	// GetGame returns a catalog entry or domain.ErrGameNotFound
	GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	// InsertGame stores a new catalog entry
	InsertGame(ctx context.Context, game *domain.Game) error
}
