package repository

import (
	"context"

	"conduit/internal/domain/entity"
)

type CommentRepository interface {
	// ListByArticle retrieves all comments on the article, newest
	// first.
	ListByArticle(ctx context.Context, slug, viewer string) ([]*entity.Comment, error)
	Create(ctx context.Context, slug, author, body string) (*entity.Comment, error)
	// Get retrieves a comment by ID.
	// Returns (nil, nil) if the comment is not found.
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	Delete(ctx context.Context, id int64) error
}
