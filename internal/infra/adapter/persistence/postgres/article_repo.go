package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"

	"github.com/lib/pq"
)

// summaryColumns is the projection shared by every feed target. $1 is
// always the viewer so the derived fav/following fields stay consistent
// regardless of which filter is applied.
const summaryColumns = `
a.slug, a.title, a.description, a.created_at,
(SELECT COALESCE(array_agg(t.tag ORDER BY t.tag), '{}') FROM article_tags t WHERE t.article_slug = a.slug) AS tags,
u.username, u.bio, u.image,
EXISTS (SELECT 1 FROM follows f WHERE f.follower = $1 AND f.influencer = a.author) AS following,
EXISTS (SELECT 1 FROM favorite_articles v WHERE v.username = $1 AND v.article_slug = a.slug) AS fav,
(SELECT COUNT(*) FROM favorite_articles v WHERE v.article_slug = a.slug) AS fav_count,
(SELECT COUNT(*) FROM comments c WHERE c.article_slug = a.slug) AS comments_count`

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *FeedQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewFeedQueryBuilder(),
	}
}

// ListFeed retrieves one page of article summaries, newest first.
// All five feed targets share this query; only the WHERE clause differs.
func (repo *ArticleRepo) ListFeed(ctx context.Context, query repository.FeedQuery) ([]*entity.ArticleSummary, error) {
	whereClause, args, nextParam := repo.queryBuilder.BuildWhereClause(query, 2)

	sqlQuery := fmt.Sprintf(`
SELECT %s
FROM articles a
INNER JOIN users u ON u.username = a.author
%s
ORDER BY a.created_at DESC
LIMIT $%d OFFSET $%d`, summaryColumns, whereClause, nextParam, nextParam+1)

	queryArgs := make([]interface{}, 0, len(args)+3)
	queryArgs = append(queryArgs, query.Viewer)
	queryArgs = append(queryArgs, args...)
	queryArgs = append(queryArgs, query.Limit, query.Offset)

	rows, err := repo.db.QueryContext(ctx, sqlQuery, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("ListFeed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]*entity.ArticleSummary, 0, query.Limit)
	for rows.Next() {
		var summary entity.ArticleSummary
		if err := rows.Scan(&summary.Slug, &summary.Title, &summary.Description, &summary.CreatedAt,
			pq.Array(&summary.Tags),
			&summary.Author.Username, &summary.Author.Bio, &summary.Author.Image,
			&summary.Author.Following, &summary.Fav, &summary.FavCount, &summary.CommentsCnt); err != nil {
			return nil, fmt.Errorf("ListFeed: Scan: %w", err)
		}
		summaries = append(summaries, &summary)
	}
	return summaries, rows.Err()
}

// Get retrieves a single article by slug with viewer-relative derived fields.
// Returns (nil, nil) if the article is not found.
func (repo *ArticleRepo) Get(ctx context.Context, slug, viewer string) (*entity.Article, error) {
	sqlQuery := fmt.Sprintf(`
SELECT %s, a.body
FROM articles a
INNER JOIN users u ON u.username = a.author
WHERE a.slug = $2`, summaryColumns)

	var article entity.Article
	err := repo.db.QueryRowContext(ctx, sqlQuery, viewer, slug).Scan(
		&article.Slug, &article.Title, &article.Description, &article.CreatedAt,
		pq.Array(&article.Tags),
		&article.Author.Username, &article.Author.Bio, &article.Author.Image,
		&article.Author.Following, &article.Fav, &article.FavCount, &article.CommentsCnt,
		&article.Body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

// Create inserts the article and its tag memberships in one transaction.
func (repo *ArticleRepo) Create(ctx context.Context, draft repository.ArticleDraft) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertArticle = `
INSERT INTO articles (slug, title, description, body, author)
VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.ExecContext(ctx, insertArticle,
		draft.Slug, draft.Title, draft.Description, draft.Body, draft.Author); err != nil {
		return fmt.Errorf("Create: insert article: %w", err)
	}

	if err := insertTags(ctx, tx, draft.Slug, draft.Tags); err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Create: commit: %w", err)
	}
	return nil
}

// Update rewrites the article row and atomically replaces its tag set.
// The update and the tag swap commit together so no reader observes new
// content with stale tags.
func (repo *ArticleRepo) Update(ctx context.Context, draft repository.ArticleDraft) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Update: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// The author predicate backstops the service-level ownership check,
	// so a raced author change can never make one user's update land on
	// another's article.
	const updateArticle = `
UPDATE articles
SET title = $2, description = $3, body = $4
WHERE slug = $1 AND author = $5`
	result, err := tx.ExecContext(ctx, updateArticle,
		draft.Slug, draft.Title, draft.Description, draft.Body, draft.Author)
	if err != nil {
		return fmt.Errorf("Update: update article: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: rows affected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}

	const deleteTags = `DELETE FROM article_tags WHERE article_slug = $1`
	if _, err := tx.ExecContext(ctx, deleteTags, draft.Slug); err != nil {
		return fmt.Errorf("Update: delete tags: %w", err)
	}
	if err := insertTags(ctx, tx, draft.Slug, draft.Tags); err != nil {
		return fmt.Errorf("Update: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Update: commit: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, slug string) error {
	const query = `DELETE FROM articles WHERE slug = $1`
	result, err := repo.db.ExecContext(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: rows affected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// AuthorOf returns the username that authored the slug.
// Returns ("", nil) if the article is not found.
func (repo *ArticleRepo) AuthorOf(ctx context.Context, slug string) (string, error) {
	const query = `SELECT author FROM articles WHERE slug = $1`
	var author string
	err := repo.db.QueryRowContext(ctx, query, slug).Scan(&author)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("AuthorOf: %w", err)
	}
	return author, nil
}

// insertTags bulk-inserts tag memberships inside the caller's transaction.
func insertTags(ctx context.Context, tx *sql.Tx, slug string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	const query = `
INSERT INTO article_tags (article_slug, tag)
SELECT $1, unnest($2::text[])`
	if _, err := tx.ExecContext(ctx, query, slug, pq.Array(tags)); err != nil {
		return fmt.Errorf("insert tags: %w", err)
	}
	return nil
}
