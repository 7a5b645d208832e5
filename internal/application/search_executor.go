package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gamelink-finder/configs"
	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/input"
	"gamelink-finder/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure SearchExecutor implements LinkSearchService interface
var _ input.LinkSearchService = (*SearchExecutor)(nil)

// SearchPolicy holds the retry and budget settings of a link search
type SearchPolicy struct {
	BaseDelay      time.Duration // applied before every attempt
	DelayFactor    float64       // growth of BaseDelay after each rate limit
	MaxAttempts    int
	MaxJitter      time.Duration // upper bound of the random pause after a rate limit
	MaxPages       int
	ResultsPerPage int
	LinkBudget     int
}

// DefaultSearchPolicy returns the stock policy: 2s base delay growing 1.5x, five attempts,
// up to 5s jitter, ten pages of five results, five links.
func DefaultSearchPolicy() SearchPolicy {
	return SearchPolicy{
		BaseDelay:      2 * time.Second,
		DelayFactor:    1.5,
		MaxAttempts:    5,
		MaxJitter:      5 * time.Second,
		MaxPages:       10,
		ResultsPerPage: 5,
		LinkBudget:     5,
	}
}

// SearchPolicyFromConfig builds a policy from configuration, keeping defaults for unset values
func SearchPolicyFromConfig(config configs.Search) SearchPolicy {
	policy := DefaultSearchPolicy()
	if config.BaseDelayMs > 0 {
		policy.BaseDelay = time.Duration(config.BaseDelayMs) * time.Millisecond
	}
	if config.DelayFactor > 1 {
		policy.DelayFactor = config.DelayFactor
	}
	if config.MaxRetries > 0 {
		policy.MaxAttempts = config.MaxRetries
	}
	if config.JitterMs > 0 {
		policy.MaxJitter = time.Duration(config.JitterMs) * time.Millisecond
	} else if config.JitterMs < 0 {
		policy.MaxJitter = 0
	}
	if config.MaxPages > 0 {
		policy.MaxPages = config.MaxPages
	}
	if config.ResultsPerPage > 0 {
		policy.ResultsPerPage = config.ResultsPerPage
	}
	if config.LinkBudget > 0 {
		policy.LinkBudget = config.LinkBudget
	}
	return policy
}

// SearchExecutor struct - finds purchase links through the search provider, backing off
// while the provider reports rate limiting
type SearchExecutor struct {
	provider output.SearchProvider
	policy   SearchPolicy
	sleep    func(ctx context.Context, d time.Duration) error
	jitter   func(max time.Duration) time.Duration
}

// NewSearchExecutor func - Creates new search executor
func NewSearchExecutor(provider output.SearchProvider, policy SearchPolicy) *SearchExecutor {
	return &SearchExecutor{
		provider: provider,
		policy:   policy,
		sleep:    sleepContext,
		jitter:   randomJitter,
	}
}

// Policy returns the policy the executor runs with
func (e *SearchExecutor) Policy() SearchPolicy {
	return e.policy
}

// Execute runs the search for gameName. Every attempt walks the result pages from the
// start; a rate limit aborts the attempt, grows the delay and retries.
func (e *SearchExecutor) Execute(ctx context.Context, gameName string, filter domain.Store) (*domain.SearchResult, error) {
	query := strings.Join(strings.Fields(gameName), " ")
	if query == "" {
		return nil, fmt.Errorf("%w: empty game name", domain.ErrInvalidRequest)
	}

	delay := e.policy.BaseDelay
	for attempt := 1; attempt <= e.policy.MaxAttempts; attempt++ {
		if err := e.pause(ctx, delay); err != nil {
			searchOutcomes.WithLabelValues("failed").Inc()
			return nil, fmt.Errorf("%w: %v", domain.ErrSearchProvider, err)
		}

		result, err := e.collect(ctx, query, filter)
		switch {
		case err == nil:
			searchOutcomes.WithLabelValues("found").Inc()
			logrus.Infof("Search for %q found %d links on attempt %d", query, len(result.Links), attempt)
			return result, nil

		case errors.Is(err, domain.ErrEmptyResult):
			searchOutcomes.WithLabelValues("empty").Inc()
			logrus.Infof("Search for %q found no links", query)
			return nil, err

		case errors.Is(err, domain.ErrRateLimited):
			delay = time.Duration(float64(delay) * e.policy.DelayFactor)
			logrus.Warnf("Search for %q rate limited on attempt %d/%d, next delay %v", query, attempt, e.policy.MaxAttempts, delay)
			if attempt < e.policy.MaxAttempts {
				if err := e.pause(ctx, e.jitter(e.policy.MaxJitter)); err != nil {
					searchOutcomes.WithLabelValues("failed").Inc()
					return nil, fmt.Errorf("%w: %v", domain.ErrSearchProvider, err)
				}
			}

		default:
			searchOutcomes.WithLabelValues("failed").Inc()
			logrus.Errorf("Search for %q failed: %v", query, err)
			if errors.Is(err, domain.ErrSearchProvider) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", domain.ErrSearchProvider, err)
		}
	}

	searchOutcomes.WithLabelValues("exhausted").Inc()
	return nil, fmt.Errorf("%w: gave up after %d attempts", domain.ErrRetriesExhausted, e.policy.MaxAttempts)
}

// collect walks the result pages until the link budget is spent or a page comes back empty
func (e *SearchExecutor) collect(ctx context.Context, query string, filter domain.Store) (*domain.SearchResult, error) {
	result := &domain.SearchResult{GameName: query}

	for page := 0; page < e.policy.MaxPages && len(result.Links) < e.policy.LinkBudget; page++ {
		links, err := e.provider.Search(ctx, query, page, e.policy.ResultsPerPage)
		if err != nil {
			if errors.Is(err, domain.ErrRateLimited) {
				searchAttempts.WithLabelValues("rate_limited").Inc()
			} else {
				searchAttempts.WithLabelValues("error").Inc()
			}
			return nil, err
		}
		searchAttempts.WithLabelValues("ok").Inc()
		logrus.Debugf("Search %q page %d returned %d results", query, page, len(links))

		if len(links) == 0 {
			if page == 0 {
				return nil, fmt.Errorf("%w: no results for %q", domain.ErrEmptyResult, query)
			}
			break
		}

		for _, link := range links {
			if len(result.Links) >= e.policy.LinkBudget {
				break
			}
			if filter != domain.StoreUnknown && domain.ClassifyLink(link) != filter {
				continue
			}
			result.Links = append(result.Links, link)
			result.Buckets.Add(link)
		}
	}

	if len(result.Links) == 0 {
		return nil, fmt.Errorf("%w: no qualifying links for %q", domain.ErrEmptyResult, query)
	}
	return result, nil
}

func (e *SearchExecutor) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	backoffSeconds.Observe(d.Seconds())
	return e.sleep(ctx, d)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max)))
}
