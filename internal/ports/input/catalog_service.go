package input

import (
	"context"

	"gamelink-finder/internal/domain"

	"github.com/google/uuid"
)

// CatalogService interface - Input port (use case)
// Defines what the application can do with the game catalog
type CatalogService interface {
	AddGame(ctx context.Context, request domain.GameRequest) (*domain.GameResponse, error)
	GetGame(ctx context.Context, id uuid.UUID) (*domain.GameResponse, error)
	ListGames(ctx context.Context, condition domain.QueryGameRequest) (*domain.GameListResponse, error)
	ListGenres(ctx context.Context) ([]string, error)
	ListTitles(ctx context.Context) ([]string, error)
}
