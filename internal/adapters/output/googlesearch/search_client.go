package googlesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gamelink-finder/configs"
	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/output"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Compile-time check to ensure SearchClientAdapter implements SearchProvider interface
var _ output.SearchProvider = (*SearchClientAdapter)(nil)

const defaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// SearchClientAdapter struct - Output adapter for the Google Custom Search JSON API.
// One call is one HTTP request. Retrying throttled requests is left to the caller.
type SearchClientAdapter struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	engineID   string
	timeout    time.Duration
	limiter    *rate.Limiter
}

// NewSearchClientAdapter func - Creates new search client adapter
func NewSearchClientAdapter(config configs.Search) (*SearchClientAdapter, error) {
	if config.APIKey == "" || config.EngineID == "" {
		return nil, errors.New("search api key and engine id are required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 15 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	limit := rate.Inf
	if config.RequestsPerSecond > 0 {
		limit = rate.Limit(config.RequestsPerSecond)
	}

	adapter := &SearchClientAdapter{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		engineID:   config.EngineID,
		timeout:    timeout,
		limiter:    rate.NewLimiter(limit, 1),
	}

	logrus.Infof("Search client adapter initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return adapter, nil
}

// Search fetches one zero-based page of results and returns their URLs in ranking order
func (a *SearchClientAdapter) Search(ctx context.Context, query string, page, maxResults int) ([]string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchProvider, err)
	}

	params := url.Values{}
	params.Set("key", a.apiKey)
	params.Set("cx", a.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(maxResults))
	params.Set("start", strconv.Itoa(page*maxResults+1))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrSearchProvider, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: status %d", domain.ErrRateLimited, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d - %s", domain.ErrSearchProvider, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var apiResp searchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", domain.ErrSearchProvider, err)
	}

	links := make([]string, 0, len(apiResp.Items))
	for _, item := range apiResp.Items {
		if item.Link != "" {
			links = append(links, item.Link)
		}
	}

	logrus.Debugf("Search page %d for %q returned %d links", page, query, len(links))

	return links, nil
}

// searchAPIResponse represents the parts of a Custom Search response the adapter reads
type searchAPIResponse struct {
	Items []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"items"`
}
