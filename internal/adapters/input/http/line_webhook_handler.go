package http

import (
	"time"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/input"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/sirupsen/logrus"
)

// LineWebhookHandler struct - Primary/Driving adapter for LINE webhook
type LineWebhookHandler struct {
	service       input.LineWebhookService
	channelSecret string
}

// NewLineWebhookHandler func - Creates new LINE webhook handler
func NewLineWebhookHandler(service input.LineWebhookService, channelSecret string) *LineWebhookHandler {
	return &LineWebhookHandler{
		service:       service,
		channelSecret: channelSecret,
	}
}

// HandleWebhook func - Handles incoming LINE webhook requests
// @Summary LINE Webhook
// @Description Verifies the LINE signature and queues message, postback and follow events
// @Tags LINE
// @Accept application/json
// @Produce json
// @Param X-Line-Signature header string true "HMAC-SHA256 of the body with the channel secret"
// @Success 200 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /webhook/line [post]
func (h *LineWebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	httpReq, err := adaptor.ConvertRequest(c, false)
	if err != nil {
		logrus.Errorf("Failed to convert webhook request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	cb, err := webhook.ParseRequest(h.channelSecret, httpReq)
	if err != nil {
		logrus.Warnf("Rejected webhook request from %s: %v", c.IP(), err)
		return c.Status(fiber.StatusBadRequest).JSON(withStatus(BadRequest, err))
	}

	request := domain.LineWebhookRequest{
		Events: make([]domain.LineWebhookEvent, 0, len(cb.Events)),
	}
	for _, event := range cb.Events {
		if converted, ok := toDomainEvent(event); ok {
			request.Events = append(request.Events, converted)
		}
	}

	// replies are sent from the conversation queues after this returns
	if err := h.service.HandleWebhook(c.UserContext(), request); err != nil {
		logrus.Errorf("Failed to queue %d webhook events: %v", len(request.Events), err)
		return c.Status(fiber.StatusInternalServerError).JSON(withStatus(InternalServerError, err))
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// toDomainEvent keeps the events the bot reacts to: text and sticker messages, button
// postbacks, follow and unfollow
func toDomainEvent(event webhook.EventInterface) (domain.LineWebhookEvent, bool) {
	switch e := event.(type) {
	case webhook.MessageEvent:
		message, ok := toDomainMessage(e.Message)
		if !ok {
			return domain.LineWebhookEvent{}, false
		}
		out := envelope(domain.LineEventTypeMessage, e.WebhookEventId, e.Timestamp, e.ReplyToken, e.Source)
		out.Message = message
		return out, true

	case webhook.PostbackEvent:
		if e.Postback == nil {
			return domain.LineWebhookEvent{}, false
		}
		out := envelope(domain.LineEventTypePostback, e.WebhookEventId, e.Timestamp, e.ReplyToken, e.Source)
		out.Postback = &domain.LinePostback{Data: e.Postback.Data}
		return out, true

	case webhook.FollowEvent:
		return envelope(domain.LineEventTypeFollow, e.WebhookEventId, e.Timestamp, e.ReplyToken, e.Source), true

	case webhook.UnfollowEvent:
		return envelope(domain.LineEventTypeUnfollow, e.WebhookEventId, e.Timestamp, "", e.Source), true

	default:
		logrus.Debugf("Skipping webhook event %T", event)
		return domain.LineWebhookEvent{}, false
	}
}

func envelope(eventType domain.LineEventType, id string, timestampMs int64, replyToken string, source webhook.SourceInterface) domain.LineWebhookEvent {
	return domain.LineWebhookEvent{
		ID:         id,
		Type:       eventType,
		Timestamp:  time.UnixMilli(timestampMs),
		ReplyToken: replyToken,
		Source:     toDomainSource(source),
	}
}

func toDomainMessage(content webhook.MessageContentInterface) (*domain.LineMessage, bool) {
	switch m := content.(type) {
	case webhook.TextMessageContent:
		return &domain.LineMessage{ID: m.Id, Type: domain.LineMessageTypeText, Text: m.Text}, true
	case webhook.StickerMessageContent:
		return &domain.LineMessage{ID: m.Id, Type: domain.LineMessageTypeSticker, PackageID: m.PackageId, StickerID: m.StickerId}, true
	default:
		logrus.Debugf("Skipping message content %T", content)
		return nil, false
	}
}

// toDomainSource maps the sender. Group and room members keep their user id so each
// member gets a separate conversation.
func toDomainSource(source webhook.SourceInterface) domain.LineSource {
	switch s := source.(type) {
	case webhook.UserSource:
		return domain.LineSource{Type: domain.LineSourceTypeUser, UserID: s.UserId}
	case webhook.GroupSource:
		return domain.LineSource{Type: domain.LineSourceTypeGroup, UserID: s.UserId, GroupID: s.GroupId}
	case webhook.RoomSource:
		return domain.LineSource{Type: domain.LineSourceTypeRoom, UserID: s.UserId, RoomID: s.RoomId}
	default:
		return domain.LineSource{}
	}
}
