package application

import (
	"context"
	"errors"
	"fmt"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/input"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Menu paging
const (
	genresPerPage = 4
	gamesPerPage  = 5
)

// Menu commands sent as plain text
const (
	CommandStartOver = "Start over"
	CommandAddGame   = "Add game"
)

// CatalogMenu struct - browsing of the curated catalog by genre
type CatalogMenu struct {
	catalog input.CatalogService
}

// NewCatalogMenu func - Creates new catalog menu
func NewCatalogMenu(catalog input.CatalogService) *CatalogMenu {
	return &CatalogMenu{catalog: catalog}
}

// MainMenu builds the greeting followed by the first genre page. LINE shows quick replies
// of the last message only, so the command buttons ride on whichever message comes last.
func (m *CatalogMenu) MainMenu(ctx context.Context, displayName string) []domain.LineOutgoingMessage {
	greeting := "Hi! Send me a game title and I will look for store links, or browse the catalog below."
	if displayName != "" {
		greeting = fmt.Sprintf("Hi %s! Send me a game title and I will look for store links, or browse the catalog below.", displayName)
	}
	messages := []domain.LineOutgoingMessage{domain.TextMessage(greeting)}

	genres, err := m.genresPage(ctx, 0)
	if err != nil {
		logrus.Errorf("Failed to build genre menu: %v", err)
	} else {
		messages = append(messages, genres)
	}

	last := &messages[len(messages)-1]
	last.Choices = append(last.Choices,
		domain.LineChoice{Label: CommandStartOver, Text: CommandStartOver},
		domain.LineChoice{Label: CommandAddGame, Text: CommandAddGame},
	)
	return messages
}

// HandleChoice answers a genres, genre or game button
func (m *CatalogMenu) HandleChoice(ctx context.Context, token domain.ChoiceToken, reply Replier) error {
	var (
		msg domain.LineOutgoingMessage
		err error
	)
	switch token.Kind {
	case domain.ChoiceGenres:
		msg, err = m.genresPage(ctx, token.Page)
	case domain.ChoiceGenre:
		msg, err = m.genrePage(ctx, token.Genre, token.Page)
	case domain.ChoiceGame:
		msg, err = m.gameLinks(ctx, token.GameID)
	default:
		return fmt.Errorf("%w: %s is not a menu choice", domain.ErrProtocol, token.Kind)
	}
	if errors.Is(err, domain.ErrProtocol) {
		return err
	}
	if err != nil {
		logrus.Errorf("Failed to answer %s choice: %v", token.Kind, err)
		return reply.Send(domain.TextMessage(searchErrorMessage(err)))
	}
	return reply.Send(msg)
}

func (m *CatalogMenu) genresPage(ctx context.Context, page int) (domain.LineOutgoingMessage, error) {
	genres, err := m.catalog.ListGenres(ctx)
	if err != nil {
		return domain.LineOutgoingMessage{}, err
	}
	if len(genres) == 0 {
		return domain.TextMessage("The catalog has no genres yet."), nil
	}

	start := page * genresPerPage
	if start >= len(genres) {
		start, page = 0, 0
	}
	end := min(start+genresPerPage, len(genres))

	var choices []domain.LineChoice
	for _, genre := range genres[start:end] {
		choice, err := tokenChoice(genre, domain.ChoiceToken{Kind: domain.ChoiceGenre, Genre: genre})
		if err != nil {
			logrus.Warnf("Skipping genre %q: %v", genre, err)
			continue
		}
		choices = append(choices, choice)
	}
	choices = appendPaging(choices, page > 0, end < len(genres), func(p int) domain.ChoiceToken {
		return domain.ChoiceToken{Kind: domain.ChoiceGenres, Page: p}
	}, page)

	return domain.TextMessage("Available genres:", choices...), nil
}

func (m *CatalogMenu) genrePage(ctx context.Context, genre string, page int) (domain.LineOutgoingMessage, error) {
	servicePage, limit := page+1, gamesPerPage
	result, err := m.catalog.ListGames(ctx, domain.QueryGameRequest{
		Genre: &genre,
		Page:  &servicePage,
		Limit: &limit,
	})
	if err != nil {
		return domain.LineOutgoingMessage{}, err
	}
	if len(result.Games) == 0 {
		return domain.TextMessage("No games found in this genre."), nil
	}

	choices := make([]domain.LineChoice, 0, len(result.Games)+2)
	for _, game := range result.Games {
		choice, err := tokenChoice(game.Name, domain.ChoiceToken{Kind: domain.ChoiceGame, GameID: game.ID.String()})
		if err != nil {
			logrus.Warnf("Skipping game %q: %v", game.Name, err)
			continue
		}
		choices = append(choices, choice)
	}
	hasNext := result.TotalItem != nil && int64((page+1)*gamesPerPage) < *result.TotalItem
	choices = appendPaging(choices, page > 0, hasNext, func(p int) domain.ChoiceToken {
		return domain.ChoiceToken{Kind: domain.ChoiceGenre, Genre: genre, Page: p}
	}, page)

	return domain.TextMessage(fmt.Sprintf("Pick a game from %s:", genre), choices...), nil
}

func (m *CatalogMenu) gameLinks(ctx context.Context, gameID string) (domain.LineOutgoingMessage, error) {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return domain.LineOutgoingMessage{}, fmt.Errorf("%w: bad game id", domain.ErrProtocol)
	}

	response, err := m.catalog.GetGame(ctx, id)
	if errors.Is(err, domain.ErrGameNotFound) {
		return domain.TextMessage("Game not found."), nil
	}
	if err != nil {
		return domain.LineOutgoingMessage{}, err
	}

	game := domain.Game{
		Name:      response.Name,
		SteamLink: response.SteamLink,
		GOGLink:   response.GOGLink,
		EpicLink:  response.EpicLink,
	}
	return domain.TextMessage(RenderGameLinks(&game)), nil
}

func tokenChoice(label string, token domain.ChoiceToken) (domain.LineChoice, error) {
	data, err := token.Format()
	if err != nil {
		return domain.LineChoice{}, err
	}
	return domain.LineChoice{Label: label, Data: data, DisplayText: label}, nil
}

func appendPaging(choices []domain.LineChoice, hasPrev, hasNext bool, tokenFor func(page int) domain.ChoiceToken, page int) []domain.LineChoice {
	if hasPrev {
		if choice, err := tokenChoice("⬅️ Back", tokenFor(page-1)); err == nil {
			choices = append(choices, choice)
		}
	}
	if hasNext {
		if choice, err := tokenChoice("Next ➡️", tokenFor(page+1)); err == nil {
			choices = append(choices, choice)
		}
	}
	return choices
}
