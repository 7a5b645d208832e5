package application

import (
	"context"
	"fmt"
	"strings"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/input"
	"gamelink-finder/internal/ports/output"
	"gamelink-finder/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CatalogService implements the input port
var _ input.CatalogService = (*CatalogService)(nil)

// CatalogService struct - Application service implementing catalog use cases
type CatalogService struct {
	repo      output.CatalogRepository
	validator validator.Validator
}

// NewCatalogService func - Creates new catalog service
func NewCatalogService(repo output.CatalogRepository, v validator.Validator) *CatalogService {
	return &CatalogService{
		repo:      repo,
		validator: v,
	}
}

// AddGame func - Use case: validate and insert a new catalog entry
func (s *CatalogService) AddGame(ctx context.Context, request domain.GameRequest) (*domain.GameResponse, error) {
	request.Name = strings.TrimSpace(request.Name)
	request.Genre = strings.TrimSpace(request.Genre)
	request.SteamLink = normalizeLink(request.SteamLink)
	request.GOGLink = normalizeLink(request.GOGLink)
	request.EpicLink = normalizeLink(request.EpicLink)

	if err := s.validator.ValidateStruct(request); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	game := domain.Game{
		Name:      request.Name,
		Genre:     request.Genre,
		SteamLink: request.SteamLink,
		GOGLink:   request.GOGLink,
		EpicLink:  request.EpicLink,
	}
	if err := s.repo.InsertGame(ctx, &game); err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	logrus.Infof("Added %q (%s) to the catalog", game.Name, game.Genre)
	response := game.ToResponse()
	return &response, nil
}

// GetGame func - Use case: get one catalog entry
func (s *CatalogService) GetGame(ctx context.Context, id uuid.UUID) (*domain.GameResponse, error) {
	game, err := s.repo.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	response := game.ToResponse()
	return &response, nil
}

// ListGames func - Use case: list the games of a genre with pagination
func (s *CatalogService) ListGames(ctx context.Context, condition domain.QueryGameRequest) (*domain.GameListResponse, error) {
	var (
		page    int
		perPage int
	)
	if condition.Page != nil && *condition.Page > 0 {
		page = *condition.Page
	} else {
		page = 1
	}
	condition.Page = &page
	if condition.Limit != nil && *condition.Limit > 0 {
		perPage = *condition.Limit
	} else {
		perPage = 100
	}
	condition.Limit = &perPage
	condition.Pagination = &domain.Pagination{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}
	return s.repo.ListByGenre(ctx, condition)
}

// ListGenres func - Use case: list the catalog genres
func (s *CatalogService) ListGenres(ctx context.Context) ([]string, error) {
	return s.repo.ListGenres(ctx)
}

// ListTitles func - Use case: list every catalog title
func (s *CatalogService) ListTitles(ctx context.Context) ([]string, error) {
	return s.repo.ListTitles(ctx)
}

// normalizeLink maps blank input and the "-" placeholder to an absent link
func normalizeLink(link *string) *string {
	if link == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*link)
	if trimmed == "" || trimmed == "-" {
		return nil
	}
	return &trimmed
}
