package domain

import "strings"

// Match policy thresholds
const (
	// MatchThreshold is the lowest confidence accepted as a catalog match
	MatchThreshold = 50
	// MaxQueryLength bounds free-text queries so they fit into a choice token
	MaxQueryLength = 100
)

// SearchQuery is a free-text query as received from the user
type SearchQuery struct {
	RawText        string
	NormalizedText string
}

// NewSearchQuery trims the raw text; case is preserved. NormalizedText is the cache key.
func NewSearchQuery(raw string) SearchQuery {
	return SearchQuery{
		RawText:        raw,
		NormalizedText: strings.TrimSpace(raw),
	}
}

// MatchResult is the best catalog title for a query and its 0..100 confidence
type MatchResult struct {
	BestMatch  string
	Confidence int
}

// IsExact reports whether the best match equals the query byte for byte
func (m MatchResult) IsExact(query string) bool {
	return m.BestMatch == query
}

// SearchResult is the outcome of a successful link search
type SearchResult struct {
	GameName string
	Links    []string
	Buckets  StoreLinkBucket
}

// PendingDisambiguation is held while the user chooses between the typed and the suggested title
type PendingDisambiguation struct {
	OriginalQuery  string
	CandidateQuery string
}

// PendingStoreFilter is held while the user chooses a storefront filter
type PendingStoreFilter struct {
	CacheKey         string
	ResolvedGameName string
}
