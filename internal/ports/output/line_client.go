package output

import "gamelink-finder/internal/domain"

// LineClient interface - Output port
// Defines what the application needs from LINE messaging platform
type LineClient interface {
	// ReplyMessage sends reply messages to LINE user via reply token
	ReplyMessage(request domain.LineReplyMessageRequest) (*domain.LineMessageResponse, error)

	// PushMessage sends push messages to LINE user directly
	PushMessage(request domain.LinePushMessageRequest) (*domain.LineMessageResponse, error)

	// GetDisplayName gets the display name of a LINE user
	GetDisplayName(userID string) (string, error)
}
