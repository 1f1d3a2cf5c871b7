// Package feed provides the feed resolution use cases: turning pagination
// parameters plus a caller identity into a page of article summaries, and
// full-text search with an authoritative total count.
package feed

import "errors"

// Sentinel errors for feed use case operations.
var (
	// ErrIdentityRequired indicates that the following feed was
	// requested without an authenticated caller. Reported distinctly
	// from an empty result so a UI bug can't masquerade as "no data".
	ErrIdentityRequired = errors.New("identity required for following feed")

	// ErrEmptyQuery indicates a search call with an empty query.
	// The query is never issued; zero results and "not executed" are
	// different outcomes.
	ErrEmptyQuery = errors.New("search query must not be empty")
)
