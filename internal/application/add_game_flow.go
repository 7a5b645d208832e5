package application

import (
	"context"
	"fmt"
	"strings"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/input"

	"github.com/sirupsen/logrus"
)

// AddGameFlow struct - the five step form that lets the catalog editor add a game
type AddGameFlow struct {
	catalog     input.CatalogService
	adminUserID string
}

// NewAddGameFlow func - Creates new add-game flow. An empty adminUserID disables the form.
func NewAddGameFlow(catalog input.CatalogService, adminUserID string) *AddGameFlow {
	return &AddGameFlow{
		catalog:     catalog,
		adminUserID: adminUserID,
	}
}

// Start opens the form when userID is the catalog editor
func (f *AddGameFlow) Start(session *domain.ConversationSession, userID string, reply Replier) error {
	if f.adminUserID == "" || userID != f.adminUserID {
		logrus.Warnf("User %s tried to add a game: %v", userID, domain.ErrPermissionDenied)
		return reply.Send(domain.TextMessage("You do not have permission to do that."))
	}
	session.Transition(domain.StateAwaitingName{})
	return reply.Send(domain.TextMessage("Enter the game title:"))
}

// Handle stores one answer of the form and asks the next question. The last answer
// inserts the game, and the form is closed whatever the outcome.
func (f *AddGameFlow) Handle(ctx context.Context, session *domain.ConversationSession, text string, reply Replier) error {
	answer := strings.TrimSpace(text)

	switch state := session.State.(type) {
	case domain.StateAwaitingName:
		if answer == "" {
			return reply.Send(domain.TextMessage("Enter the game title:"))
		}
		session.Transition(domain.StateAwaitingGenre{Name: answer})
		return reply.Send(domain.TextMessage("Enter the genre:"))

	case domain.StateAwaitingGenre:
		if answer == "" {
			return reply.Send(domain.TextMessage("Enter the genre:"))
		}
		session.Transition(domain.StateAwaitingSteamLink{Name: state.Name, Genre: answer})
		return reply.Send(domain.TextMessage("Enter the Steam link (or - if there is none):"))

	case domain.StateAwaitingSteamLink:
		session.Transition(domain.StateAwaitingGOGLink{
			Name:      state.Name,
			Genre:     state.Genre,
			SteamLink: formLink(answer),
		})
		return reply.Send(domain.TextMessage("Enter the GOG link (or - if there is none):"))

	case domain.StateAwaitingGOGLink:
		session.Transition(domain.StateAwaitingEpicLink{
			Name:      state.Name,
			Genre:     state.Genre,
			SteamLink: state.SteamLink,
			GOGLink:   formLink(answer),
		})
		return reply.Send(domain.TextMessage("Enter the Epic Games Store link (or - if there is none):"))

	case domain.StateAwaitingEpicLink:
		session.Reset()
		_, err := f.catalog.AddGame(ctx, domain.GameRequest{
			Name:      state.Name,
			Genre:     state.Genre,
			SteamLink: state.SteamLink,
			GOGLink:   state.GOGLink,
			EpicLink:  formLink(answer),
		})
		if err != nil {
			return reply.Send(domain.TextMessage(fmt.Sprintf("Could not add the game: %v", err)))
		}
		return reply.Send(domain.TextMessage(fmt.Sprintf("%s was added to the catalog.", state.Name)))

	default:
		return fmt.Errorf("state %s is not part of the add-game form", session.State.Name())
	}
}

// formLink maps the "-" placeholder and blank answers to an absent link
func formLink(answer string) *string {
	if answer == "" || answer == "-" {
		return nil
	}
	return &answer
}
