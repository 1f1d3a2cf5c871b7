package repository

import (
	"context"

	"conduit/internal/domain/entity"
)

// HighlightMarkers are the caller-supplied spans wrapped around matched
// terms in search snippets. Empty markers disable highlighting.
type HighlightMarkers struct {
	Start string
	Stop  string
}

type SearchRepository interface {
	// Count returns the number of articles matching the query. The
	// match predicate is identical to the one used by Search so the
	// count never drifts from the content.
	Count(ctx context.Context, query string) (int64, error)
	// Search retrieves one page of matches ordered by rank, each field
	// independently snippet-highlighted with the given markers. Fields
	// without a match are returned as their original content.
	Search(ctx context.Context, query string, markers HighlightMarkers, offset, limit int) ([]*entity.SearchHit, error)
}
