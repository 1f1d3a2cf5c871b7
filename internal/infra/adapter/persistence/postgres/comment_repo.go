package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"
)

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

// ListByArticle retrieves all comments on the article, newest first.
func (repo *CommentRepo) ListByArticle(ctx context.Context, slug, viewer string) ([]*entity.Comment, error) {
	const query = `
SELECT c.id, c.article_slug, c.body, c.created_at,
       u.username, u.bio, u.image,
       EXISTS (SELECT 1 FROM follows f WHERE f.follower = $2 AND f.influencer = u.username) AS following
FROM comments c
INNER JOIN users u ON u.username = c.username
WHERE c.article_slug = $1
ORDER BY c.created_at DESC`
	rows, err := repo.db.QueryContext(ctx, query, slug, viewer)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 20)
	for rows.Next() {
		var comment entity.Comment
		if err := rows.Scan(&comment.ID, &comment.ArticleSlug, &comment.Body, &comment.CreatedAt,
			&comment.Author.Username, &comment.Author.Bio, &comment.Author.Image,
			&comment.Author.Following); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) Create(ctx context.Context, slug, author, body string) (*entity.Comment, error) {
	const query = `
INSERT INTO comments (article_slug, username, body)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	comment := entity.Comment{
		ArticleSlug: slug,
		Author:      entity.Author{Username: author},
		Body:        body,
	}
	err := repo.db.QueryRowContext(ctx, query, slug, author, body).Scan(
		&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &comment, nil
}

// Get retrieves a comment by ID. Returns (nil, nil) if not found.
func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT id, article_slug, username, body, created_at
FROM comments
WHERE id = $1`
	var comment entity.Comment
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.ArticleSlug, &comment.Author.Username,
		&comment.Body, &comment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &comment, nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = $1`
	result, err := repo.db.ExecContext(ctx, query, id)
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
