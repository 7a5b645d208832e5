package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"gamelink-finder/internal/domain"
	gormDriver "gamelink-finder/pkg/database_driver/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MockCatalogService implements input.CatalogService for testing
type MockCatalogService struct {
	AddGameFunc    func(ctx context.Context, request domain.GameRequest) (*domain.GameResponse, error)
	GetGameFunc    func(ctx context.Context, id uuid.UUID) (*domain.GameResponse, error)
	ListGamesFunc  func(ctx context.Context, condition domain.QueryGameRequest) (*domain.GameListResponse, error)
	ListGenresFunc func(ctx context.Context) ([]string, error)

	// Captured values for assertions
	LastAddRequest *domain.GameRequest
	LastCondition  *domain.QueryGameRequest
}

func (m *MockCatalogService) AddGame(ctx context.Context, request domain.GameRequest) (*domain.GameResponse, error) {
	m.LastAddRequest = &request
	if m.AddGameFunc != nil {
		return m.AddGameFunc(ctx, request)
	}
	id := uuid.New()
	return &domain.GameResponse{ID: &id, Name: request.Name, Genre: request.Genre, SteamLink: request.SteamLink}, nil
}

func (m *MockCatalogService) GetGame(ctx context.Context, id uuid.UUID) (*domain.GameResponse, error) {
	if m.GetGameFunc != nil {
		return m.GetGameFunc(ctx, id)
	}
	return nil, domain.ErrGameNotFound
}

func (m *MockCatalogService) ListGames(ctx context.Context, condition domain.QueryGameRequest) (*domain.GameListResponse, error) {
	m.LastCondition = &condition
	if m.ListGamesFunc != nil {
		return m.ListGamesFunc(ctx, condition)
	}
	return &domain.GameListResponse{}, nil
}

func (m *MockCatalogService) ListGenres(ctx context.Context) ([]string, error) {
	if m.ListGenresFunc != nil {
		return m.ListGenresFunc(ctx)
	}
	return nil, nil
}

func (m *MockCatalogService) ListTitles(ctx context.Context) ([]string, error) {
	return nil, nil
}

const testAdminKey = "s3cret"

func newTestApp(t *testing.T, srv *MockCatalogService) *fiber.App {
	t.Helper()
	db, err := gormDriver.ConnectToSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { gormDriver.Disconnect(db.Catalog) })

	hdl := New(srv, db.Catalog, testAdminKey)
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/health", hdl.HealthCheck)
	api := app.Group("/v1/api")
	api.Get("/genres", hdl.GetGenres)
	api.Get("/games", hdl.GetGames)
	api.Get("/games/:id", hdl.GetGame)
	api.Post("/games", hdl.CreateGame)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return out
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t, &MockCatalogService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestGetGenres(t *testing.T) {
	srv := &MockCatalogService{
		ListGenresFunc: func(ctx context.Context) ([]string, error) {
			return []string{"Metroidvania", "Roguelike"}, nil
		},
	}
	app := newTestApp(t, srv)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/api/genres", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body := decodeBody(t, resp.Body)
	data, ok := body["data"].([]interface{})
	if !ok || len(data) != 2 || data[0] != "Metroidvania" {
		t.Errorf("unexpected data %v", body["data"])
	}
}

func TestGetGenres_EmptyCatalogIsEmptyList(t *testing.T) {
	app := newTestApp(t, &MockCatalogService{})

	resp, _ := app.Test(httptest.NewRequest("GET", "/v1/api/genres", nil))

	body := decodeBody(t, resp.Body)
	if data, ok := body["data"].([]interface{}); !ok || len(data) != 0 {
		t.Errorf("expected an empty list, got %v", body["data"])
	}
}

func TestGetGames_PassesQuery(t *testing.T) {
	total := int64(7)
	srv := &MockCatalogService{
		ListGamesFunc: func(ctx context.Context, condition domain.QueryGameRequest) (*domain.GameListResponse, error) {
			return &domain.GameListResponse{
				Games:       []domain.GameSummary{{ID: uuid.New(), Name: "Hades"}},
				CurrentPage: condition.Page,
				PerPage:     condition.Limit,
				TotalItem:   &total,
			}, nil
		},
	}
	app := newTestApp(t, srv)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/api/games?genre=Roguelike&page=2&limit=5", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	c := srv.LastCondition
	if c == nil || c.Genre == nil || *c.Genre != "Roguelike" || *c.Page != 2 || *c.Limit != 5 {
		t.Errorf("unexpected condition %+v", c)
	}
	body := decodeBody(t, resp.Body)
	if body["total_item"] != float64(7) {
		t.Errorf("expected total_item 7, got %v", body["total_item"])
	}
}

func TestGetGames_RejectsBadLimit(t *testing.T) {
	srv := &MockCatalogService{}
	app := newTestApp(t, srv)

	resp, _ := app.Test(httptest.NewRequest("GET", "/v1/api/games?limit=1000", nil))

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	if srv.LastCondition != nil {
		t.Error("expected the service not to be called")
	}
}

func TestGetGame(t *testing.T) {
	id := uuid.New()
	steam := "https://store.steampowered.com/app/1145360"
	srv := &MockCatalogService{
		GetGameFunc: func(ctx context.Context, got uuid.UUID) (*domain.GameResponse, error) {
			if got != id {
				return nil, domain.ErrGameNotFound
			}
			return &domain.GameResponse{ID: &id, Name: "Hades", Genre: "Roguelike", SteamLink: &steam}, nil
		},
	}
	app := newTestApp(t, srv)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"found", "/v1/api/games/" + id.String(), fiber.StatusOK},
		{"unknown", "/v1/api/games/" + uuid.NewString(), fiber.StatusNotFound},
		{"malformed", "/v1/api/games/42", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("expected %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}

func TestCreateGame(t *testing.T) {
	payload := `{"name":"Celeste","genre":"Platformer","steam_link":"https://store.steampowered.com/app/504230"}`

	tests := []struct {
		name     string
		key      string
		body     string
		addErr   error
		want     int
		wantCall bool
	}{
		{"created", testAdminKey, payload, nil, fiber.StatusCreated, true},
		{"missing key", "", payload, nil, fiber.StatusForbidden, false},
		{"wrong key", "guess", payload, nil, fiber.StatusForbidden, false},
		{"key prefix", testAdminKey[:len(testAdminKey)-1], payload, nil, fiber.StatusForbidden, false},
		{"missing genre", testAdminKey, `{"name":"Celeste"}`, nil, fiber.StatusBadRequest, false},
		{"bad link", testAdminKey, `{"name":"Celeste","genre":"Platformer","gog_link":"nope"}`, nil, fiber.StatusBadRequest, false},
		{"service rejects", testAdminKey, payload, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest), fiber.StatusBadRequest, true},
		{"write fails", testAdminKey, payload, fmt.Errorf("%w: disk full", domain.ErrCatalogWrite), fiber.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &MockCatalogService{}
			if tt.addErr != nil {
				srv.AddGameFunc = func(ctx context.Context, request domain.GameRequest) (*domain.GameResponse, error) {
					return nil, tt.addErr
				}
			}
			app := newTestApp(t, srv)

			req := httptest.NewRequest("POST", "/v1/api/games", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.key != "" {
				req.Header.Set(AdminKeyHeader, tt.key)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}

			if resp.StatusCode != tt.want {
				t.Errorf("expected %d, got %d", tt.want, resp.StatusCode)
			}
			if (srv.LastAddRequest != nil) != tt.wantCall {
				t.Errorf("expected service call %v, got %v", tt.wantCall, srv.LastAddRequest != nil)
			}
		})
	}
}

func TestCreateGame_DisabledWithoutAdminKey(t *testing.T) {
	db, err := gormDriver.ConnectToSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer gormDriver.Disconnect(db.Catalog)

	srv := &MockCatalogService{}
	hdl := New(srv, db.Catalog, "")
	app := fiber.New()
	app.Post("/v1/api/games", hdl.CreateGame)

	req := httptest.NewRequest("POST", "/v1/api/games", strings.NewReader(`{"name":"Celeste","genre":"Platformer"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)

	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("expected 403, got %d", resp.StatusCode)
	}
}

func TestAdminKeyMatches(t *testing.T) {
	tests := []struct {
		given, configured string
		want              bool
	}{
		{"s3cret", "s3cret", true},
		{"s3cre", "s3cret", false},
		{"s3cret!", "s3cret", false},
		{"", "s3cret", false},
		{"", "", false},
	}

	for _, tt := range tests {
		if got := adminKeyMatches(tt.given, tt.configured); got != tt.want {
			t.Errorf("adminKeyMatches(%q, %q) = %v, want %v", tt.given, tt.configured, got, tt.want)
		}
	}
}

func TestGetGenres_ServiceError(t *testing.T) {
	srv := &MockCatalogService{
		ListGenresFunc: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("connection refused")
		},
	}
	app := newTestApp(t, srv)

	resp, _ := app.Test(httptest.NewRequest("GET", "/v1/api/genres", nil))

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("expected 500, got %d", resp.StatusCode)
	}
}
