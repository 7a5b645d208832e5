package domain

import "time"

// ConversationSession represents the state of one LINE conversation
type ConversationSession struct {
	UserID         string            // LINE user identifier
	State          ConversationState // Current position in the conversation
	LastAccessTime time.Time         // For session expiration checking
	timeout        time.Duration     // Configurable session timeout, zero disables expiry
}

// NewConversationSession creates an idle session for a user with a configurable timeout
func NewConversationSession(userID string, timeout time.Duration) *ConversationSession {
	return &ConversationSession{
		UserID:         userID,
		State:          StateIdle{},
		LastAccessTime: time.Now(),
		timeout:        timeout,
	}
}

// IsExpired checks if the session has exceeded the configured timeout
func (s *ConversationSession) IsExpired() bool {
	if s.timeout <= 0 {
		return false
	}
	return time.Since(s.LastAccessTime) > s.timeout
}

// Timeout returns the idle duration after which the session expires
func (s *ConversationSession) Timeout() time.Duration {
	return s.timeout
}

// Transition moves the session to the next state. A nil state resets to idle.
func (s *ConversationSession) Transition(next ConversationState) {
	if next == nil {
		next = StateIdle{}
	}
	s.State = next
}

// Reset returns the session to idle, dropping any pending prompt or form data
func (s *ConversationSession) Reset() {
	s.State = StateIdle{}
}
