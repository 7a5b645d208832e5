package googlesearch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamelink-finder/configs"
	"gamelink-finder/internal/domain"
)

func newTestAdapter(t *testing.T, baseURL string) *SearchClientAdapter {
	t.Helper()
	adapter, err := NewSearchClientAdapter(configs.Search{
		BaseURL:  baseURL,
		APIKey:   "test-key",
		EngineID: "test-engine",
		Timeout:  5,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	return adapter
}

// TestNewSearchClientAdapterWithDefaultValues tests adapter construction defaults
func TestNewSearchClientAdapterWithDefaultValues(t *testing.T) {
	adapter, err := NewSearchClientAdapter(configs.Search{APIKey: "k", EngineID: "e"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if adapter.baseURL != defaultBaseURL {
		t.Errorf("expected default baseURL, got: %s", adapter.baseURL)
	}

	if adapter.timeout != 15*time.Second {
		t.Errorf("expected default timeout to be 15s, got: %v", adapter.timeout)
	}
}

// TestNewSearchClientAdapterRequiresCredentials tests missing credentials
func TestNewSearchClientAdapterRequiresCredentials(t *testing.T) {
	if _, err := NewSearchClientAdapter(configs.Search{APIKey: "k"}); err == nil {
		t.Error("expected error without engine id")
	}
}

// TestSearchSendsPagingParameters tests the request shape and link extraction
func TestSearchSendsPagingParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "Hollow Knight" {
			t.Errorf("expected q 'Hollow Knight', got %q", q.Get("q"))
		}
		if q.Get("key") != "test-key" || q.Get("cx") != "test-engine" {
			t.Errorf("expected credentials to be sent, got key=%q cx=%q", q.Get("key"), q.Get("cx"))
		}
		if q.Get("num") != "5" {
			t.Errorf("expected num 5, got %q", q.Get("num"))
		}
		if q.Get("start") != "11" {
			t.Errorf("expected start 11 for the third page, got %q", q.Get("start"))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[{"title":"a","link":"https://store.steampowered.com/app/1"},{"title":"b","link":""},{"title":"c","link":"https://www.gog.com/game/x"}]}`)
	}))
	defer server.Close()

	adapter := newTestAdapter(t, server.URL)

	links, err := adapter.Search(context.Background(), "Hollow Knight", 2, 5)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %v", links)
	}
	if links[0] != "https://store.steampowered.com/app/1" || links[1] != "https://www.gog.com/game/x" {
		t.Errorf("unexpected links: %v", links)
	}
}

// TestSearchWithoutItems tests a page with no results
func TestSearchWithoutItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"searchInformation":{"totalResults":"0"}}`)
	}))
	defer server.Close()

	links, err := newTestAdapter(t, server.URL).Search(context.Background(), "x", 0, 5)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected no links, got %v", links)
	}
}

// TestSearchMapsTooManyRequests tests the rate limit error mapping
func TestSearchMapsTooManyRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestAdapter(t, server.URL).Search(context.Background(), "x", 0, 5)
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

// TestSearchMapsServerErrors tests that other failures are provider errors
func TestSearchMapsServerErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"forbidden", http.StatusForbidden, `{"error":{"message":"bad key"}}`},
		{"server error", http.StatusInternalServerError, "boom"},
		{"malformed body", http.StatusOK, "not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			_, err := newTestAdapter(t, server.URL).Search(context.Background(), "x", 0, 5)
			if !errors.Is(err, domain.ErrSearchProvider) {
				t.Errorf("expected ErrSearchProvider, got %v", err)
			}
			if errors.Is(err, domain.ErrRateLimited) {
				t.Error("expected non-429 failure not to be a rate limit")
			}
		})
	}
}

// TestSearchHonorsCancelledContext tests that a cancelled context fails the call
func TestSearchHonorsCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, server.URL).Search(ctx, "x", 0, 5)
	if !errors.Is(err, domain.ErrSearchProvider) {
		t.Errorf("expected ErrSearchProvider, got %v", err)
	}
}
