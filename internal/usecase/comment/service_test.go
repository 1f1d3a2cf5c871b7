package comment

import (
	"context"
	"errors"
	"testing"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"
)

type stubCommentRepo struct {
	byID    map[int64]*entity.Comment
	listed  []*entity.Comment
	nextID  int64
	deleted int64
}

func (s *stubCommentRepo) ListByArticle(_ context.Context, _, _ string) ([]*entity.Comment, error) {
	return s.listed, nil
}

func (s *stubCommentRepo) Create(_ context.Context, slug, author, body string) (*entity.Comment, error) {
	s.nextID++
	c := &entity.Comment{
		ID:          s.nextID,
		ArticleSlug: slug,
		Author:      entity.Author{Username: author},
		Body:        body,
	}
	if s.byID == nil {
		s.byID = map[int64]*entity.Comment{}
	}
	s.byID[c.ID] = c
	return c, nil
}

func (s *stubCommentRepo) Get(_ context.Context, id int64) (*entity.Comment, error) {
	return s.byID[id], nil
}

func (s *stubCommentRepo) Delete(_ context.Context, id int64) error {
	s.deleted = id
	return nil
}

type stubArticleRepo struct {
	repository.ArticleRepository
	authors map[string]string
}

func (s *stubArticleRepo) AuthorOf(_ context.Context, slug string) (string, error) {
	return s.authors[slug], nil
}

func newService() (*Service, *stubCommentRepo) {
	comments := &stubCommentRepo{}
	return &Service{
		Comments: comments,
		Articles: &stubArticleRepo{authors: map[string]string{"a-post": "bob"}},
	}, comments
}

func TestList(t *testing.T) {
	svc, comments := newService()
	comments.listed = []*entity.Comment{{ID: 2}, {ID: 1}}

	got, err := svc.List(context.Background(), "a-post", "")
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}

	if _, err := svc.List(context.Background(), "missing", ""); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("missing article err=%v, want ErrArticleNotFound", err)
	}
}

func TestAdd(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	got, err := svc.Add(ctx, "a-post", "alice", "nice read, thanks")
	if err != nil {
		t.Fatalf("Add err=%v", err)
	}
	if got.ID == 0 || got.Author.Username != "alice" {
		t.Errorf("comment = %+v", got)
	}

	if _, err := svc.Add(ctx, "a-post", "", "nice read"); !errors.Is(err, ErrIdentityRequired) {
		t.Errorf("anonymous err=%v, want ErrIdentityRequired", err)
	}

	var vErr *entity.ValidationError
	if _, err := svc.Add(ctx, "a-post", "alice", "hi"); !errors.As(err, &vErr) {
		t.Errorf("short body err=%v, want ValidationError", err)
	}

	if _, err := svc.Add(ctx, "missing", "alice", "nice read"); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("missing article err=%v, want ErrArticleNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	svc, comments := newService()
	ctx := context.Background()

	created, err := svc.Add(ctx, "a-post", "alice", "nice read, thanks")
	if err != nil {
		t.Fatalf("Add err=%v", err)
	}

	if err := svc.Delete(ctx, "a-post", created.ID, "mallory"); !errors.Is(err, ErrNotCommentAuthor) {
		t.Errorf("foreign delete err=%v, want ErrNotCommentAuthor", err)
	}
	if err := svc.Delete(ctx, "other-post", created.ID, "alice"); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("wrong slug err=%v, want ErrCommentNotFound", err)
	}
	if err := svc.Delete(ctx, "a-post", 99, "alice"); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("unknown id err=%v, want ErrCommentNotFound", err)
	}

	if err := svc.Delete(ctx, "a-post", created.ID, "alice"); err != nil {
		t.Fatalf("owner delete err=%v", err)
	}
	if comments.deleted != created.ID {
		t.Errorf("deleted id = %d, want %d", comments.deleted, created.ID)
	}
}
