package application

import (
	"context"
	"errors"
	"strings"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/input"
	"gamelink-finder/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure LineWebhookService implements the input port
var _ input.LineWebhookService = (*LineWebhookService)(nil)

const helpText = "Send me a game title and I will look for places to buy it.\n\n" +
	"Commands:\n" +
	"/start - Show the catalog menu\n" +
	"/help - Show this message\n" +
	CommandStartOver + " - Cancel the current step\n" +
	CommandAddGame + " - Add a game to the catalog (editors only)"

const invalidChoiceText = "That button is no longer valid. Please send the game title again."

// LineWebhookService struct - Application service implementing LINE webhook use cases
type LineWebhookService struct {
	lineClient     output.LineClient
	sessionStore   output.SessionStore
	orchestrator   *SearchOrchestrator
	menu           *CatalogMenu
	addGame        *AddGameFlow
	dispatcher     *Dispatcher
}

// NewLineWebhookService func - Creates new LINE webhook service.
// New sessions take their timeout from the session store.
func NewLineWebhookService(
	lineClient output.LineClient,
	sessionStore output.SessionStore,
	orchestrator *SearchOrchestrator,
	menu *CatalogMenu,
	addGame *AddGameFlow,
	dispatcher *Dispatcher,
) *LineWebhookService {
	return &LineWebhookService{
		lineClient:     lineClient,
		sessionStore:   sessionStore,
		orchestrator:   orchestrator,
		menu:           menu,
		addGame:        addGame,
		dispatcher:     dispatcher,
	}
}

// HandleWebhook func - Use case: queue incoming webhook events per conversation
func (s *LineWebhookService) HandleWebhook(ctx context.Context, request domain.LineWebhookRequest) error {
	// events outlive the webhook request
	ctx = context.WithoutCancel(ctx)

	for _, event := range request.Events {
		logrus.Infof("Received LINE event: type=%s, source=%s, userID=%s",
			event.Type, event.Source.Type, event.Source.UserID)

		event := event
		s.dispatcher.Submit(event.Source.ConversationID(), func() {
			if err := s.handleEvent(ctx, event); err != nil {
				logrus.Errorf("Failed to handle %s event: %v", event.Type, err)
			}
		})
	}
	return nil
}

// Wait blocks until every queued event has been handled
func (s *LineWebhookService) Wait() {
	s.dispatcher.Wait()
}

func (s *LineWebhookService) handleEvent(ctx context.Context, event domain.LineWebhookEvent) error {
	conversationID := event.Source.ConversationID()

	if event.Type == domain.LineEventTypeUnfollow {
		logrus.Infof("User unfollowed: %s", event.Source.UserID)
		return s.sessionStore.DeleteSession(conversationID)
	}

	session := s.getOrCreateSession(conversationID)
	reply := NewResponder(s.lineClient, event)

	var err error
	switch event.Type {
	case domain.LineEventTypeFollow:
		logrus.Infof("New follower: %s", event.Source.UserID)
		session.Reset()
		err = s.sendMainMenu(ctx, event, reply)

	case domain.LineEventTypeMessage:
		if event.Message == nil || event.Message.Type != domain.LineMessageTypeText {
			logrus.Infof("Ignoring non-text message from %s", event.Source.UserID)
			return nil
		}
		err = s.handleText(ctx, session, event, reply)

	case domain.LineEventTypePostback:
		if event.Postback == nil {
			return nil
		}
		err = s.handlePostback(ctx, session, event.Postback.Data, reply)

	default:
		logrus.Infof("Unhandled event type: %s", event.Type)
		return nil
	}

	if updateErr := s.sessionStore.UpdateSession(session); updateErr != nil {
		logrus.Errorf("Failed to save session %s: %v", conversationID, updateErr)
	}
	return err
}

// handleText - commands first, then the add-game form, then a title search
func (s *LineWebhookService) handleText(ctx context.Context, session *domain.ConversationSession, event domain.LineWebhookEvent, reply Replier) error {
	text := strings.TrimSpace(event.Message.Text)

	switch {
	case strings.EqualFold(text, CommandStartOver), strings.EqualFold(text, "/start"):
		session.Reset()
		return s.sendMainMenu(ctx, event, reply)

	case strings.EqualFold(text, "/help"):
		return reply.Send(domain.TextMessage(helpText))

	case strings.EqualFold(text, CommandAddGame):
		session.Reset()
		return s.addGame.Start(session, event.Source.UserID, reply)

	case domain.IsAddGameForm(session.State):
		return s.addGame.Handle(ctx, session, text, reply)

	default:
		return s.orchestrator.HandleQuery(ctx, session, text, reply)
	}
}

// handlePostback - a broken or stale token is reported and leaves the session untouched
func (s *LineWebhookService) handlePostback(ctx context.Context, session *domain.ConversationSession, data string, reply Replier) error {
	token, err := domain.ParseChoiceToken(data)
	if err == nil {
		switch token.Kind {
		case domain.ChoicePick, domain.ChoiceStore:
			err = s.orchestrator.HandleChoice(ctx, session, token, reply)
		default:
			err = s.menu.HandleChoice(ctx, token, reply)
		}
	}

	if errors.Is(err, domain.ErrProtocol) {
		logrus.Warnf("Rejected choice token %q: %v", data, err)
		return reply.Send(domain.TextMessage(invalidChoiceText))
	}
	return err
}

func (s *LineWebhookService) sendMainMenu(ctx context.Context, event domain.LineWebhookEvent, reply Replier) error {
	displayName, err := s.lineClient.GetDisplayName(event.Source.UserID)
	if err != nil {
		logrus.Warnf("Failed to get display name of %s: %v", event.Source.UserID, err)
		displayName = ""
	}
	return reply.Send(s.menu.MainMenu(ctx, displayName)...)
}

// getOrCreateSession - retrieves the session of a conversation or starts an idle one
func (s *LineWebhookService) getOrCreateSession(conversationID string) *domain.ConversationSession {
	session, err := s.sessionStore.GetSession(conversationID)
	if err != nil {
		logrus.Errorf("Failed to load session %s: %v", conversationID, err)
	}
	if session == nil {
		session = domain.NewConversationSession(conversationID, s.sessionStore.GetTimeout())
	}
	return session
}
