package application

import (
	"context"
	"sync"
	"time"

	"gamelink-finder/internal/domain"

	"github.com/google/uuid"
)

// Mock implementations for testing

// MockLineClient implements output.LineClient for testing
type MockLineClient struct {
	ReplyMessageFunc   func(request domain.LineReplyMessageRequest) (*domain.LineMessageResponse, error)
	PushMessageFunc    func(request domain.LinePushMessageRequest) (*domain.LineMessageResponse, error)
	GetDisplayNameFunc func(userID string) (string, error)

	mu sync.Mutex

	// Captured values for assertions
	ReplyRequests []domain.LineReplyMessageRequest
	PushRequests  []domain.LinePushMessageRequest
}

func (m *MockLineClient) ReplyMessage(request domain.LineReplyMessageRequest) (*domain.LineMessageResponse, error) {
	m.mu.Lock()
	m.ReplyRequests = append(m.ReplyRequests, request)
	m.mu.Unlock()
	if m.ReplyMessageFunc != nil {
		return m.ReplyMessageFunc(request)
	}
	return &domain.LineMessageResponse{Status: "ok"}, nil
}

func (m *MockLineClient) PushMessage(request domain.LinePushMessageRequest) (*domain.LineMessageResponse, error) {
	m.mu.Lock()
	m.PushRequests = append(m.PushRequests, request)
	m.mu.Unlock()
	if m.PushMessageFunc != nil {
		return m.PushMessageFunc(request)
	}
	return &domain.LineMessageResponse{Status: "ok"}, nil
}

func (m *MockLineClient) GetDisplayName(userID string) (string, error) {
	if m.GetDisplayNameFunc != nil {
		return m.GetDisplayNameFunc(userID)
	}
	return "Player", nil
}

// SentTexts returns every text sent through reply or push, in order of the calls
func (m *MockLineClient) SentTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var texts []string
	for _, r := range m.ReplyRequests {
		for _, msg := range r.Messages {
			texts = append(texts, msg.Text)
		}
	}
	for _, p := range m.PushRequests {
		for _, msg := range p.Messages {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

// MockSessionStore implements output.SessionStore for testing
type MockSessionStore struct {
	GetSessionFunc    func(conversationID string) (*domain.ConversationSession, error)
	UpdateSessionFunc func(session *domain.ConversationSession) error
	DeleteSessionFunc func(conversationID string) error

	Timeout time.Duration

	mu       sync.Mutex
	sessions map[string]*domain.ConversationSession

	// Captured values for assertions
	UpdateCalls []*domain.ConversationSession
	DeleteCalls []string
}

func (m *MockSessionStore) GetTimeout() time.Duration {
	return m.Timeout
}

func (m *MockSessionStore) GetSession(conversationID string) (*domain.ConversationSession, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(conversationID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[conversationID], nil
}

func (m *MockSessionStore) UpdateSession(session *domain.ConversationSession) error {
	m.mu.Lock()
	m.UpdateCalls = append(m.UpdateCalls, session)
	if m.sessions == nil {
		m.sessions = map[string]*domain.ConversationSession{}
	}
	m.sessions[session.UserID] = session
	m.mu.Unlock()
	if m.UpdateSessionFunc != nil {
		return m.UpdateSessionFunc(session)
	}
	return nil
}

func (m *MockSessionStore) DeleteSession(conversationID string) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, conversationID)
	delete(m.sessions, conversationID)
	m.mu.Unlock()
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(conversationID)
	}
	return nil
}

// State returns the stored state of a conversation, idle when there is none
func (m *MockSessionStore) State(conversationID string) domain.ConversationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[conversationID]; ok {
		return s.State
	}
	return domain.StateIdle{}
}

// searchCall is one captured search provider call
type searchCall struct {
	Query      string
	Page       int
	MaxResults int
}

// MockSearchProvider implements output.SearchProvider for testing
type MockSearchProvider struct {
	SearchFunc func(ctx context.Context, query string, page, maxResults int) ([]string, error)

	mu    sync.Mutex
	Calls []searchCall
}

func (m *MockSearchProvider) Search(ctx context.Context, query string, page, maxResults int) ([]string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, searchCall{Query: query, Page: page, MaxResults: maxResults})
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, page, maxResults)
	}
	return nil, nil
}

// CallCount returns the number of captured calls
func (m *MockSearchProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockCatalogRepository implements output.CatalogRepository for testing
type MockCatalogRepository struct {
	ListTitlesFunc  func(ctx context.Context) ([]string, error)
	ListGenresFunc  func(ctx context.Context) ([]string, error)
	ListByGenreFunc func(ctx context.Context, condition domain.QueryGameRequest) (*domain.GameListResponse, error)
	GetGameFunc     func(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	InsertGameFunc  func(ctx context.Context, game *domain.Game) error

	mu sync.Mutex

	// Captured values for assertions
	Inserted         []*domain.Game
	LastListByGenre  *domain.QueryGameRequest
	ListTitlesCalled int
}

func (m *MockCatalogRepository) ListTitles(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	m.ListTitlesCalled++
	m.mu.Unlock()
	if m.ListTitlesFunc != nil {
		return m.ListTitlesFunc(ctx)
	}
	return nil, nil
}

func (m *MockCatalogRepository) ListGenres(ctx context.Context) ([]string, error) {
	if m.ListGenresFunc != nil {
		return m.ListGenresFunc(ctx)
	}
	return nil, nil
}

func (m *MockCatalogRepository) ListByGenre(ctx context.Context, condition domain.QueryGameRequest) (*domain.GameListResponse, error) {
	m.mu.Lock()
	m.LastListByGenre = &condition
	m.mu.Unlock()
	if m.ListByGenreFunc != nil {
		return m.ListByGenreFunc(ctx, condition)
	}
	return &domain.GameListResponse{}, nil
}

func (m *MockCatalogRepository) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	if m.GetGameFunc != nil {
		return m.GetGameFunc(ctx, id)
	}
	return nil, domain.ErrGameNotFound
}

func (m *MockCatalogRepository) InsertGame(ctx context.Context, game *domain.Game) error {
	m.mu.Lock()
	m.Inserted = append(m.Inserted, game)
	m.mu.Unlock()
	if m.InsertGameFunc != nil {
		return m.InsertGameFunc(ctx, game)
	}
	return nil
}

// MockResultCache implements output.ResultCache for testing
type MockResultCache struct {
	GetFunc func(ctx context.Context, key string) (string, bool, error)
	PutFunc func(ctx context.Context, key, rendered string) error

	mu      sync.Mutex
	entries map[string]string
	PutKeys []string
}

func (m *MockResultCache) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MockResultCache) Put(ctx context.Context, key, rendered string) error {
	m.mu.Lock()
	m.PutKeys = append(m.PutKeys, key)
	if m.entries == nil {
		m.entries = map[string]string{}
	}
	if _, ok := m.entries[key]; !ok {
		m.entries[key] = rendered
	}
	m.mu.Unlock()
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, rendered)
	}
	return nil
}

// recordingReplier collects outgoing messages instead of sending them
type recordingReplier struct {
	Messages []domain.LineOutgoingMessage
	SendErr  error
}

func (r *recordingReplier) Send(messages ...domain.LineOutgoingMessage) error {
	r.Messages = append(r.Messages, messages...)
	return r.SendErr
}

// Last returns the most recent message
func (r *recordingReplier) Last() domain.LineOutgoingMessage {
	if len(r.Messages) == 0 {
		return domain.LineOutgoingMessage{}
	}
	return r.Messages[len(r.Messages)-1]
}

// Texts returns the text of every recorded message
func (r *recordingReplier) Texts() []string {
	texts := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		texts = append(texts, m.Text)
	}
	return texts
}
