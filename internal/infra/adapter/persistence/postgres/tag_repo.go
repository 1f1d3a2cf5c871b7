package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"conduit/internal/repository"
)

// popularTagLimit bounds each half of the sidebar tag query.
const popularTagLimit = 10

type TagRepo struct {
	db *sql.DB
}

func NewTagRepo(db *sql.DB) repository.TagRepository {
	return &TagRepo{db: db}
}

// Popular returns the sidebar tag list: the ten most-used tags merged
// with the ten most recently used ones. UNION deduplicates the overlap.
func (repo *TagRepo) Popular(ctx context.Context) ([]string, error) {
	const query = `
SELECT tag FROM (
    SELECT t.tag, COUNT(*) AS uses, MAX(a.created_at) AS last_used
    FROM article_tags t
    INNER JOIN articles a ON a.slug = t.article_slug
    GROUP BY t.tag
    ORDER BY uses DESC
    LIMIT $1
) AS most_used
UNION
SELECT tag FROM (
    SELECT t.tag, MAX(a.created_at) AS last_used
    FROM article_tags t
    INNER JOIN articles a ON a.slug = t.article_slug
    GROUP BY t.tag
    ORDER BY last_used DESC
    LIMIT $1
) AS most_recent`

	rows, err := repo.db.QueryContext(ctx, query, popularTagLimit)
	if err != nil {
		return nil, fmt.Errorf("Popular: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]string, 0, popularTagLimit*2)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("Popular: Scan: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
