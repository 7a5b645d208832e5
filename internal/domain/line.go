package domain

import "time"

// LineEventType represents the type of webhook event from LINE
type LineEventType string

const (
	// LineEventTypeMessage - Message event
	LineEventTypeMessage LineEventType = "message"
	// LineEventTypePostback - Postback event (a choice button was pressed)
	LineEventTypePostback LineEventType = "postback"
	// LineEventTypeFollow - Follow event
	LineEventTypeFollow LineEventType = "follow"
	// LineEventTypeUnfollow - Unfollow event
	LineEventTypeUnfollow LineEventType = "unfollow"
)

// LineMessageType represents the type of message
type LineMessageType string

const (
	// LineMessageTypeText - Text message
	LineMessageTypeText LineMessageType = "text"
	// LineMessageTypeImage - Image message
	LineMessageTypeImage LineMessageType = "image"
	// LineMessageTypeSticker - Sticker message
	LineMessageTypeSticker LineMessageType = "sticker"
)

// LineSourceType represents the source type of the event
type LineSourceType string

const (
	// LineSourceTypeUser - User source
	LineSourceTypeUser LineSourceType = "user"
	// LineSourceTypeGroup - Group source
	LineSourceTypeGroup LineSourceType = "group"
	// LineSourceTypeRoom - Room source
	LineSourceTypeRoom LineSourceType = "room"
)

// LineWebhookEvent represents a LINE webhook event (domain entity)
type LineWebhookEvent struct {
	ID         string
	Type       LineEventType
	Timestamp  time.Time
	Source     LineSource
	ReplyToken string
	Message    *LineMessage
	Postback   *LinePostback
}

// LineSource represents the source of the event
type LineSource struct {
	Type    LineSourceType
	UserID  string
	GroupID string
	RoomID  string
}

// ConversationID keys per-conversation state. Inside groups and rooms each member keeps
// a separate conversation.
func (s LineSource) ConversationID() string {
	switch s.Type {
	case LineSourceTypeGroup:
		return s.GroupID + ":" + s.UserID
	case LineSourceTypeRoom:
		return s.RoomID + ":" + s.UserID
	default:
		return s.UserID
	}
}

// PushTarget returns the id a push message for this source must be addressed to
func (s LineSource) PushTarget() string {
	switch s.Type {
	case LineSourceTypeGroup:
		return s.GroupID
	case LineSourceTypeRoom:
		return s.RoomID
	default:
		return s.UserID
	}
}

// LineMessage represents a message from LINE
type LineMessage struct {
	ID        string
	Type      LineMessageType
	Text      string
	PackageID string // For sticker
	StickerID string // For sticker
}

// LinePostback represents the data of a pressed postback button
type LinePostback struct {
	Data string
}
