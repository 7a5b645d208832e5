package memory

import (
	"sync"
	"time"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter for in-memory conversation state.
// Uses sync.Map keyed by conversation id. State is lost on restart.
type MemorySessionStore struct {
	sessions sync.Map
	timeout  time.Duration
}

// NewMemorySessionStore creates a new in-memory session store.
// timeout: idle duration after which a conversation falls back to idle, zero keeps it forever
func NewMemorySessionStore(timeout time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		timeout: timeout,
	}
}

// GetTimeout returns the configured session timeout, used when creating new sessions
func (m *MemorySessionStore) GetTimeout() time.Duration {
	return m.timeout
}

// GetSession retrieves a conversation session.
// Returns nil when the session does not exist or has expired. Expired sessions are
// deleted on access.
func (m *MemorySessionStore) GetSession(conversationID string) (*domain.ConversationSession, error) {
	value, exists := m.sessions.Load(conversationID)
	if !exists {
		return nil, nil
	}

	session, ok := value.(*domain.ConversationSession)
	if !ok {
		m.sessions.Delete(conversationID)
		return nil, nil
	}

	if session.IsExpired() {
		m.sessions.Delete(conversationID)
		return nil, nil
	}

	session.LastAccessTime = time.Now()

	return session, nil
}

// UpdateSession creates or updates a conversation session
func (m *MemorySessionStore) UpdateSession(session *domain.ConversationSession) error {
	session.LastAccessTime = time.Now()
	m.sessions.Store(session.UserID, session)
	return nil
}

// DeleteSession removes a conversation session. Deleting a missing session is a no-op.
func (m *MemorySessionStore) DeleteSession(conversationID string) error {
	m.sessions.Delete(conversationID)
	return nil
}
