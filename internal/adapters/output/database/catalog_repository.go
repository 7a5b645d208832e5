package database

import (
	"context"
	"errors"
	"fmt"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultPageSize = 5

// Compile-time check to ensure CatalogRepository implements the output port
var _ output.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository struct - Secondary/Driven adapter for the game catalog.
// Works with any gorm dialect; production uses postgres or sqlite.
type CatalogRepository struct {
	dbGorm *gorm.DB
}

// NewCatalogRepository func - Creates the repository. The schema must already be migrated.
func NewCatalogRepository(dbGorm *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		dbGorm: dbGorm,
	}
}

// ListTitles returns every game name in insertion order
func (p *CatalogRepository) ListTitles(ctx context.Context) ([]string, error) {
	var titles []string
	err := p.dbGorm.WithContext(ctx).
		Model(&domain.Game{}).
		Order("created_at ASC").
		Order("name ASC").
		Pluck("name", &titles).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return titles, nil
}

// ListGenres returns the distinct genres in alphabetical order
func (p *CatalogRepository) ListGenres(ctx context.Context) ([]string, error) {
	var genres []string
	err := p.dbGorm.WithContext(ctx).
		Model(&domain.Game{}).
		Distinct("genre").
		Order("genre ASC").
		Pluck("genre", &genres).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return genres, nil
}

// ListByGenre returns the games of a genre (or all games when no genre is given), paged
func (p *CatalogRepository) ListByGenre(ctx context.Context, condition domain.QueryGameRequest) (*domain.GameListResponse, error) {
	var games []domain.Game

	pagination := condition.Pagination
	if pagination == nil {
		pagination = &domain.Pagination{Limit: defaultPageSize}
	}

	query := func() *gorm.DB {
		tx := p.dbGorm.WithContext(ctx).Model(&domain.Game{})
		if condition.Genre != nil {
			tx = tx.Where("genre = ?", *condition.Genre)
		}
		return tx
	}

	var totalItem int64
	if err := query().Count(&totalItem).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	err := query().Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&games).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	result := domain.GameListResponse{
		Games:       []domain.GameSummary{},
		CurrentPage: condition.Page,
		PerPage:     &pagination.Limit,
		TotalItem:   &totalItem,
	}
	for _, game := range games {
		if game.ID == nil {
			continue
		}
		result.Games = append(result.Games, domain.GameSummary{ID: *game.ID, Name: game.Name})
	}
	return &result, nil
}

// GetGame returns the catalog entry with the given id
func (p *CatalogRepository) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	var game domain.Game
	err := p.dbGorm.WithContext(ctx).Where("id = ?", id).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrGameNotFound
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &game, nil
}

// InsertGame stores a new catalog entry
func (p *CatalogRepository) InsertGame(ctx context.Context, game *domain.Game) error {
	tx := p.dbGorm.WithContext(ctx).Begin()
	defer func() {
		tx.Rollback()
	}()
	if err := tx.Create(game).Error; err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("%w: %v", domain.ErrCatalogWrite, err)
	}
	if err := tx.Commit().Error; err != nil {
		logrus.Errorln(err)
		return fmt.Errorf("%w: %v", domain.ErrCatalogWrite, err)
	}
	return nil
}
