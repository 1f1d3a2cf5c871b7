package article

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"conduit/internal/domain/entity"
	"conduit/internal/observability/metrics"
	"conduit/internal/repository"
)

// Service implements article CRUD on top of the article repository.
type Service struct {
	Repo repository.ArticleRepository
}

// Get returns a single article with viewer-relative derived fields.
func (s *Service) Get(ctx context.Context, slug, viewer string) (*entity.Article, error) {
	article, err := s.Repo.Get(ctx, slug, viewer)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Draft carries caller-supplied article fields for create and update.
type Draft struct {
	Title       string
	Description string
	Body        string
	Tags        []string
}

// Create validates the draft, derives a slug and persists the article.
func (s *Service) Create(ctx context.Context, author string, draft Draft) (*entity.Article, error) {
	if author == "" {
		return nil, ErrIdentityRequired
	}
	if err := entity.ValidateArticleDraft(draft.Title, draft.Description, draft.Body); err != nil {
		return nil, err
	}
	tags, err := entity.NormalizeTags(draft.Tags)
	if err != nil {
		return nil, err
	}

	slug := makeSlug(draft.Title)
	if err := s.Repo.Create(ctx, repository.ArticleDraft{
		Slug:        slug,
		Title:       draft.Title,
		Description: draft.Description,
		Body:        draft.Body,
		Author:      author,
		Tags:        tags,
	}); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	metrics.ArticlesCreated.Inc()
	return s.Get(ctx, slug, author)
}

// Update replaces the article's content and tags. Only the author may update.
func (s *Service) Update(ctx context.Context, slug, caller string, draft Draft) (*entity.Article, error) {
	if caller == "" {
		return nil, ErrIdentityRequired
	}
	if err := s.requireAuthor(ctx, slug, caller); err != nil {
		return nil, err
	}
	if err := entity.ValidateArticleDraft(draft.Title, draft.Description, draft.Body); err != nil {
		return nil, err
	}
	tags, err := entity.NormalizeTags(draft.Tags)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, repository.ArticleDraft{
		Slug:        slug,
		Title:       draft.Title,
		Description: draft.Description,
		Body:        draft.Body,
		Author:      caller,
		Tags:        tags,
	}); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return s.Get(ctx, slug, caller)
}

// Delete removes the article. Only the author may delete.
func (s *Service) Delete(ctx context.Context, slug, caller string) error {
	if caller == "" {
		return ErrIdentityRequired
	}
	if err := s.requireAuthor(ctx, slug, caller); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, slug); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	metrics.ArticlesDeleted.Inc()
	return nil
}

func (s *Service) requireAuthor(ctx context.Context, slug, caller string) error {
	author, err := s.Repo.AuthorOf(ctx, slug)
	if err != nil {
		return fmt.Errorf("requireAuthor: %w", err)
	}
	if author == "" {
		return ErrArticleNotFound
	}
	if author != caller {
		return ErrNotAuthor
	}
	return nil
}

// makeSlug lowercases the title, replaces runs of non-alphanumerics with
// a single hyphen and appends a random suffix to keep slugs unique.
func makeSlug(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	base := strings.Trim(b.String(), "-")
	suffix := uuid.NewString()[:8]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
