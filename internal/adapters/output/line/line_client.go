package line

import (
	"fmt"
	"unicode/utf8"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/output"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/sirupsen/logrus"
)

// LINE platform limits
const (
	maxQuickReplyItems = 13
	maxLabelLength     = 20
	maxTextLength      = 5000
)

// Compile-time check to ensure LineClientAdapter implements LineClient interface
var _ output.LineClient = (*LineClientAdapter)(nil)

// LineClientAdapter struct - Output adapter for LINE messaging platform
type LineClientAdapter struct {
	client *messaging_api.MessagingApiAPI
}

// NewLineClientAdapter func - Creates new LINE client adapter
func NewLineClientAdapter(channelToken string) (*LineClientAdapter, error) {
	client, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE messaging API client: %w", err)
	}

	return &LineClientAdapter{
		client: client,
	}, nil
}

// ReplyMessage - Sends reply messages via reply token
func (a *LineClientAdapter) ReplyMessage(request domain.LineReplyMessageRequest) (*domain.LineMessageResponse, error) {
	messages := convertMessages(request.Messages)
	if len(messages) == 0 {
		return nil, fmt.Errorf("no valid messages to send")
	}

	req := &messaging_api.ReplyMessageRequest{
		ReplyToken: request.ReplyToken,
		Messages:   messages,
	}

	_, err := a.client.ReplyMessage(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send reply message: %w", err)
	}

	logrus.Debugf("Sent %d reply messages", len(messages))

	return &domain.LineMessageResponse{
		Status:  "success",
		Message: "Reply message sent successfully",
	}, nil
}

// PushMessage - Sends push messages to a user, group or room
func (a *LineClientAdapter) PushMessage(request domain.LinePushMessageRequest) (*domain.LineMessageResponse, error) {
	messages := convertMessages(request.Messages)
	if len(messages) == 0 {
		return nil, fmt.Errorf("no valid messages to send")
	}

	req := &messaging_api.PushMessageRequest{
		To:       request.To,
		Messages: messages,
	}

	_, err := a.client.PushMessage(req, "")
	if err != nil {
		return nil, fmt.Errorf("failed to send push message: %w", err)
	}

	logrus.Debugf("Sent %d push messages to: %s", len(messages), request.To)

	return &domain.LineMessageResponse{
		Status:  "success",
		Message: "Push message sent successfully",
	}, nil
}

// GetDisplayName - Gets the display name of a user
func (a *LineClientAdapter) GetDisplayName(userID string) (string, error) {
	profile, err := a.client.GetProfile(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user profile: %w", err)
	}

	return profile.DisplayName, nil
}

func convertMessages(outgoing []domain.LineOutgoingMessage) []messaging_api.MessageInterface {
	messages := make([]messaging_api.MessageInterface, 0, len(outgoing))
	for _, msg := range outgoing {
		lineMsg, err := convertToLineMessage(msg)
		if err != nil {
			logrus.Errorf("Failed to convert message: %v", err)
			continue
		}
		messages = append(messages, lineMsg)
	}
	return messages
}

// convertToLineMessage - Helper function to convert domain message to LINE SDK message
func convertToLineMessage(msg domain.LineOutgoingMessage) (messaging_api.MessageInterface, error) {
	switch msg.Type {
	case domain.LineMessageTypeText:
		if msg.Text == "" {
			return nil, fmt.Errorf("empty text message")
		}
		text := &messaging_api.TextMessage{
			Text: truncate(msg.Text, maxTextLength),
		}
		if len(msg.Choices) > 0 {
			text.QuickReply = convertChoices(msg.Choices)
		}
		return text, nil

	case domain.LineMessageTypeSticker:
		return &messaging_api.StickerMessage{
			PackageId: msg.PackageID,
			StickerId: msg.StickerID,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported message type: %s", msg.Type)
	}
}

func convertChoices(choices []domain.LineChoice) *messaging_api.QuickReply {
	if len(choices) > maxQuickReplyItems {
		logrus.Warnf("Dropping %d quick reply choices over the limit", len(choices)-maxQuickReplyItems)
		choices = choices[:maxQuickReplyItems]
	}

	items := make([]messaging_api.QuickReplyItem, 0, len(choices))
	for _, choice := range choices {
		var action messaging_api.ActionInterface
		if choice.Data != "" {
			action = &messaging_api.PostbackAction{
				Label:       truncate(choice.Label, maxLabelLength),
				Data:        choice.Data,
				DisplayText: choice.DisplayText,
			}
		} else {
			text := choice.Text
			if text == "" {
				text = choice.Label
			}
			action = &messaging_api.MessageAction{
				Label: truncate(choice.Label, maxLabelLength),
				Text:  text,
			}
		}
		items = append(items, messaging_api.QuickReplyItem{
			Type:   "action",
			Action: action,
		})
	}
	return &messaging_api.QuickReply{Items: items}
}

// truncate shortens s to at most limit runes, marking the cut with an ellipsis
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
