package application

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"gamelink-finder/internal/domain"
	"gamelink-finder/internal/ports/input"
	"gamelink-finder/internal/ports/output"
	"gamelink-finder/pkg/fuzzy"

	"github.com/sirupsen/logrus"
)

// storeChoices is the order of the store filter buttons
var storeChoices = []struct {
	label string
	store domain.Store
}{
	{"Any", domain.StoreUnknown},
	{"Steam", domain.StoreSteam},
	{"GOG", domain.StoreGOG},
	{"Epic", domain.StoreEpic},
}

// SearchOrchestrator struct - drives a free-text query through cache lookup, fuzzy
// matching, disambiguation, store filter selection and the link search
type SearchOrchestrator struct {
	catalog     output.CatalogRepository
	search      input.LinkSearchService
	cache       output.ResultCache
	maxAttempts int
}

// NewSearchOrchestrator func - Creates new search orchestrator.
// maxAttempts is only used to word the "gave up" message.
func NewSearchOrchestrator(catalog output.CatalogRepository, search input.LinkSearchService, cache output.ResultCache, maxAttempts int) *SearchOrchestrator {
	return &SearchOrchestrator{
		catalog:     catalog,
		search:      search,
		cache:       cache,
		maxAttempts: maxAttempts,
	}
}

// HandleQuery starts a search for free text. Any pending prompt of the session is
// abandoned.
func (o *SearchOrchestrator) HandleQuery(ctx context.Context, session *domain.ConversationSession, text string, reply Replier) error {
	query := domain.NewSearchQuery(text)
	session.Reset()

	if query.NormalizedText == "" {
		return nil
	}
	if utf8.RuneCountInString(query.NormalizedText) > domain.MaxQueryLength {
		return reply.Send(domain.TextMessage(queryTooLongMessage()))
	}

	rendered, hit, err := o.cache.Get(ctx, query.NormalizedText)
	switch {
	case err != nil:
		cacheLookups.WithLabelValues("error").Inc()
		logrus.Warnf("Result cache lookup failed, continuing without it: %v", err)
	case hit:
		cacheLookups.WithLabelValues("hit").Inc()
		logrus.Infof("Result cache hit for %q", query.NormalizedText)
		return reply.Send(domain.TextMessage(rendered))
	default:
		cacheLookups.WithLabelValues("miss").Inc()
	}

	titles, err := o.catalog.ListTitles(ctx)
	if err != nil {
		logrus.Errorf("Failed to list catalog titles: %v", err)
		return reply.Send(domain.TextMessage(searchErrorMessage(err)))
	}
	match, err := MatchTitle(query.NormalizedText, titles)
	if errors.Is(err, domain.ErrEmptyCatalog) {
		logrus.Error("Catalog is empty, free-text search cannot match anything")
		return reply.Send(domain.TextMessage("The catalog is empty, so there is nothing to match against yet."))
	}

	if errors.Is(err, domain.ErrNoMatch) {
		matchDecisions.WithLabelValues("rejected").Inc()
		logrus.Infof("No match for %q (best %q, score %d)", query.NormalizedText, match.BestMatch, match.Confidence)
		return reply.Send(domain.TextMessage(noMatchMessage(query.NormalizedText)))
	}

	if !match.IsExact(query.NormalizedText) {
		matchDecisions.WithLabelValues("ambiguous").Inc()
		return o.askDisambiguation(session, query.NormalizedText, match.BestMatch, reply)
	}

	matchDecisions.WithLabelValues("exact").Inc()
	return o.askStoreFilter(session, query.NormalizedText, match.BestMatch, reply)
}

// HandleChoice resumes a search from a pick or store button. The token carries everything
// needed to resume, so it is honored even when the session no longer holds the prompt.
func (o *SearchOrchestrator) HandleChoice(ctx context.Context, session *domain.ConversationSession, token domain.ChoiceToken, reply Replier) error {
	switch token.Kind {
	case domain.ChoicePick:
		return o.askStoreFilter(session, token.Query, token.Game, reply)
	case domain.ChoiceStore:
		session.Reset()
		return o.runSearch(ctx, token.Query, token.Game, token.Store, reply)
	default:
		return fmt.Errorf("%w: %s is not a search choice", domain.ErrProtocol, token.Kind)
	}
}

func (o *SearchOrchestrator) askDisambiguation(session *domain.ConversationSession, original, candidate string, reply Replier) error {
	var choices []domain.LineChoice
	for _, name := range []string{original, candidate} {
		data, err := domain.ChoiceToken{Kind: domain.ChoicePick, Query: original, Game: name}.Format()
		if err != nil {
			return reply.Send(domain.TextMessage(queryTooLongMessage()))
		}
		choices = append(choices, domain.LineChoice{
			Label:       fmt.Sprintf("Search '%s'", name),
			Data:        data,
			DisplayText: name,
		})
	}

	session.Transition(domain.StateAwaitingDisambiguation{
		Pending: domain.PendingDisambiguation{OriginalQuery: original, CandidateQuery: candidate},
	})
	text := fmt.Sprintf("You typed '%s'. Did you mean '%s'? Which one should I search for?", original, candidate)
	return reply.Send(domain.TextMessage(text, choices...))
}

func (o *SearchOrchestrator) askStoreFilter(session *domain.ConversationSession, cacheKey, gameName string, reply Replier) error {
	choices := make([]domain.LineChoice, 0, len(storeChoices))
	for _, c := range storeChoices {
		data, err := domain.ChoiceToken{Kind: domain.ChoiceStore, Query: cacheKey, Game: gameName, Store: c.store}.Format()
		if err != nil {
			session.Reset()
			return reply.Send(domain.TextMessage(queryTooLongMessage()))
		}
		choices = append(choices, domain.LineChoice{Label: c.label, Data: data, DisplayText: c.label})
	}

	session.Transition(domain.StateAwaitingStoreFilter{
		Pending: domain.PendingStoreFilter{CacheKey: cacheKey, ResolvedGameName: gameName},
	})
	text := fmt.Sprintf("Searching for '%s'. Pick a store or leave it open:", gameName)
	return reply.Send(domain.TextMessage(text, choices...))
}

func (o *SearchOrchestrator) runSearch(ctx context.Context, cacheKey, gameName string, filter domain.Store, reply Replier) error {
	logrus.Infof("Searching links for %q (store filter %q)", gameName, filter)

	result, err := o.search.Execute(ctx, gameName, filter)
	if err != nil {
		return reply.Send(domain.TextMessage(o.failureMessage(gameName, err)))
	}

	rendered := RenderSearchResult(result)
	if err := o.cache.Put(ctx, cacheKey, rendered); err != nil {
		logrus.Warnf("Failed to cache result for %q: %v", cacheKey, err)
	}
	return reply.Send(domain.TextMessage(rendered))
}

func (o *SearchOrchestrator) failureMessage(gameName string, err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyResult):
		return fmt.Sprintf("Could not find any store links for '%s'.", gameName)
	case errors.Is(err, domain.ErrRetriesExhausted):
		return fmt.Sprintf("The search did not succeed after %d attempts. Please try again later.", o.maxAttempts)
	default:
		return searchErrorMessage(err)
	}
}

// MatchTitle picks the catalog title closest to query. A best match under the threshold
// is still returned, together with domain.ErrNoMatch.
func MatchTitle(query string, titles []string) (domain.MatchResult, error) {
	best, score, ok := fuzzy.ExtractOne(query, titles)
	if !ok {
		return domain.MatchResult{}, domain.ErrEmptyCatalog
	}
	match := domain.MatchResult{BestMatch: best, Confidence: score}
	if score < domain.MatchThreshold {
		return match, domain.ErrNoMatch
	}
	return match, nil
}

func noMatchMessage(query string) string {
	return fmt.Sprintf("No close match for '%s'. Try typing the exact title.", query)
}

func queryTooLongMessage() string {
	return fmt.Sprintf("That query is too long. Please keep it under %d characters.", domain.MaxQueryLength)
}

func searchErrorMessage(err error) string {
	return fmt.Sprintf("Something went wrong while searching: %v", err)
}
