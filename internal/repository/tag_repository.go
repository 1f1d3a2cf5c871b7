package repository

import "context"

type TagRepository interface {
	// Popular returns the sidebar tag list: the most-used tags merged
	// with the most recently used ones, deduplicated.
	Popular(ctx context.Context) ([]string, error)
}
