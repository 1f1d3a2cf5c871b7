package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"
)

// searchPredicate is the single match predicate shared by Count and
// Search. Keeping it in one place is what guarantees the total can never
// drift from the content.
const searchPredicate = `a.search_vector @@ websearch_to_tsquery('english', $1)`

// snippetMaxWords bounds the context tokens ts_headline keeps around a
// matched span in description and body snippets.
const snippetMaxWords = 24

type SearchRepo struct {
	db *sql.DB
}

func NewSearchRepo(db *sql.DB) repository.SearchRepository {
	return &SearchRepo{db: db}
}

// Count returns the number of articles matching the query.
func (repo *SearchRepo) Count(ctx context.Context, query string) (int64, error) {
	sqlQuery := fmt.Sprintf(`SELECT COUNT(*) FROM articles a WHERE %s`, searchPredicate)
	var count int64
	if err := repo.db.QueryRowContext(ctx, sqlQuery, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

// Search retrieves one page of matches ordered by rank. Each field is
// highlighted independently; ts_headline returns the original content
// unmarked when the field has no match, which is exactly the contract.
func (repo *SearchRepo) Search(ctx context.Context, query string, markers repository.HighlightMarkers, offset, limit int) ([]*entity.SearchHit, error) {
	sqlQuery := fmt.Sprintf(`
SELECT a.slug,
       ts_headline('english', a.title, websearch_to_tsquery('english', $1),
                   'StartSel=' || $2 || ', StopSel=' || $3 || ', HighlightAll=true') AS title,
       ts_headline('english', a.description, websearch_to_tsquery('english', $1),
                   'StartSel=' || $2 || ', StopSel=' || $3 || ', MaxWords=%d, MinWords=1') AS description,
       ts_headline('english', a.body, websearch_to_tsquery('english', $1),
                   'StartSel=' || $2 || ', StopSel=' || $3 || ', MaxWords=%d, MinWords=1') AS body,
       a.author, a.created_at
FROM articles a
WHERE %s
ORDER BY ts_rank(a.search_vector, websearch_to_tsquery('english', $1)) DESC, a.created_at DESC
LIMIT $4 OFFSET $5`, snippetMaxWords, snippetMaxWords, searchPredicate)

	rows, err := repo.db.QueryContext(ctx, sqlQuery, query, markers.Start, markers.Stop, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	hits := make([]*entity.SearchHit, 0, limit)
	for rows.Next() {
		var hit entity.SearchHit
		if err := rows.Scan(&hit.Slug, &hit.Title, &hit.Description, &hit.Body,
			&hit.Author, &hit.CreatedAt); err != nil {
			return nil, fmt.Errorf("Search: Scan: %w", err)
		}
		hits = append(hits, &hit)
	}
	return hits, rows.Err()
}
