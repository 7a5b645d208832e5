package output

import (
	"time"

	"gamelink-finder/internal/domain"
)

// SessionStore interface - Output port
// Defines what the application needs for managing conversation sessions.
// Sessions hold the tagged conversation state per conversation id.
// Implementations must be thread-safe for concurrent access.
type SessionStore interface {
	// GetSession retrieves a conversation session by conversation id.
	// Returns nil if the session does not exist or has expired.
	GetSession(conversationID string) (*domain.ConversationSession, error)

	// UpdateSession creates or updates a conversation session and refreshes LastAccessTime.
	UpdateSession(session *domain.ConversationSession) error

	// GetTimeout returns the idle duration after which new sessions expire.
	// Zero keeps them until restart.
	GetTimeout() time.Duration

	// DeleteSession removes a conversation session. Deleting a missing session is not an error.
	DeleteSession(conversationID string) error
}
