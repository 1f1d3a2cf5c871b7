package comment

import (
	"context"
	"errors"
	"fmt"

	"conduit/internal/domain/entity"
	"conduit/internal/observability/metrics"
	"conduit/internal/repository"
)

var (
	// ErrIdentityRequired indicates a write was attempted anonymously.
	ErrIdentityRequired = errors.New("identity required")
	// ErrArticleNotFound indicates the parent article does not exist.
	ErrArticleNotFound = errors.New("article not found")
	// ErrCommentNotFound indicates the comment id does not exist on the article.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrNotCommentAuthor indicates the caller does not own the comment.
	ErrNotCommentAuthor = errors.New("not the comment author")
)

// Service implements comment listing and moderation on articles.
type Service struct {
	Comments repository.CommentRepository
	Articles repository.ArticleRepository
}

// List returns the article's comments newest first, with author.following
// derived relative to viewer.
func (s *Service) List(ctx context.Context, slug, viewer string) ([]*entity.Comment, error) {
	if err := s.requireArticle(ctx, slug); err != nil {
		return nil, err
	}
	comments, err := s.Comments.ListByArticle(ctx, slug, viewer)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return comments, nil
}

// Add validates the body and attaches a comment authored by caller.
func (s *Service) Add(ctx context.Context, slug, caller, body string) (*entity.Comment, error) {
	if caller == "" {
		return nil, ErrIdentityRequired
	}
	if err := entity.ValidateCommentBody(body); err != nil {
		return nil, err
	}
	if err := s.requireArticle(ctx, slug); err != nil {
		return nil, err
	}
	comment, err := s.Comments.Create(ctx, slug, caller, body)
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	metrics.CommentsPosted.Inc()
	return comment, nil
}

// Delete removes a comment. Only its author may delete it.
func (s *Service) Delete(ctx context.Context, slug string, id int64, caller string) error {
	if caller == "" {
		return ErrIdentityRequired
	}
	comment, err := s.Comments.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if comment == nil || comment.ArticleSlug != slug {
		return ErrCommentNotFound
	}
	if comment.Author.Username != caller {
		return ErrNotCommentAuthor
	}
	if err := s.Comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (s *Service) requireArticle(ctx context.Context, slug string) error {
	author, err := s.Articles.AuthorOf(ctx, slug)
	if err != nil {
		return fmt.Errorf("requireArticle: %w", err)
	}
	if author == "" {
		return ErrArticleNotFound
	}
	return nil
}
