package domain

import "errors"

// Search pipeline error types
var (
	// ErrNoMatch indicates the query scored below the match threshold against every catalog title
	ErrNoMatch = errors.New("no catalog title matches the query")

	// ErrRateLimited indicates the search provider is throttling the caller (HTTP 429)
	ErrRateLimited = errors.New("search provider rate limit")

	// ErrSearchProvider indicates any other search provider failure
	ErrSearchProvider = errors.New("search provider error")

	// ErrRetriesExhausted indicates every attempt of a search was rate limited
	ErrRetriesExhausted = errors.New("search retries exhausted")

	// ErrEmptyResult indicates the search succeeded but yielded no qualifying links
	ErrEmptyResult = errors.New("search yielded no links")

	// ErrEmptyCatalog indicates the matcher was asked to score against no titles
	ErrEmptyCatalog = errors.New("catalog has no titles")
)

// Catalog and conversation error types
var (
	// ErrCatalogWrite indicates inserting a catalog entry failed
	ErrCatalogWrite = errors.New("catalog write failed")

	// ErrGameNotFound indicates the requested catalog entry does not exist
	ErrGameNotFound = errors.New("game not found")

	// ErrPermissionDenied indicates the caller is not the privileged catalog editor
	ErrPermissionDenied = errors.New("permission denied")

	// ErrProtocol indicates a malformed or unexpected choice token
	ErrProtocol = errors.New("choice token protocol error")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")
)
