package article_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/article"
	"conduit/internal/handler/http/auth"
	"conduit/internal/repository"
	artUC "conduit/internal/usecase/article"
	socialUC "conduit/internal/usecase/social"
)

type stubArticleRepo struct {
	repository.ArticleRepository
	bySlug  map[string]*entity.Article
	authors map[string]string
	deleted string
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{bySlug: map[string]*entity.Article{}, authors: map[string]string{}}
}

func (s *stubArticleRepo) Get(_ context.Context, slug, _ string) (*entity.Article, error) {
	return s.bySlug[slug], nil
}

func (s *stubArticleRepo) AuthorOf(_ context.Context, slug string) (string, error) {
	return s.authors[slug], nil
}

func (s *stubArticleRepo) Create(_ context.Context, draft repository.ArticleDraft) error {
	s.bySlug[draft.Slug] = &entity.Article{
		Slug:   draft.Slug,
		Title:  draft.Title,
		Body:   draft.Body,
		Tags:   draft.Tags,
		Author: entity.Author{Username: draft.Author},
	}
	s.authors[draft.Slug] = draft.Author
	return nil
}

func (s *stubArticleRepo) Update(_ context.Context, draft repository.ArticleDraft) error {
	a := s.bySlug[draft.Slug]
	a.Title = draft.Title
	a.Body = draft.Body
	return nil
}

func (s *stubArticleRepo) Delete(_ context.Context, slug string) error {
	s.deleted = slug
	delete(s.bySlug, slug)
	return nil
}

type stubSocialRepo struct {
	repository.SocialRepository
	favorited map[string]bool
}

func (s *stubSocialRepo) IsFavorited(_ context.Context, _, slug string) (bool, error) {
	return s.favorited[slug], nil
}

func (s *stubSocialRepo) InsertFavorite(_ context.Context, _, slug string) (bool, error) {
	s.favorited[slug] = true
	return true, nil
}

func (s *stubSocialRepo) DeleteFavorite(_ context.Context, _, slug string) (bool, error) {
	delete(s.favorited, slug)
	return true, nil
}

func newMux(repo *stubArticleRepo, social *stubSocialRepo) *http.ServeMux {
	articleSvc := &artUC.Service{Repo: repo}
	socialSvc := &socialUC.Service{Social: social, Articles: repo}

	mux := http.NewServeMux()
	mux.Handle("GET /api/articles/{slug}", article.GetHandler{Articles: articleSvc})
	mux.Handle("POST /api/articles", article.CreateHandler{Articles: articleSvc})
	mux.Handle("PUT /api/articles/{slug}", article.UpdateHandler{Articles: articleSvc})
	mux.Handle("DELETE /api/articles/{slug}", article.DeleteHandler{Articles: articleSvc})
	mux.Handle("POST /api/articles/{slug}/favorite", article.FavoriteHandler{Social: socialSvc})
	return mux
}

func asUser(req *http.Request, username string) *http.Request {
	return req.WithContext(auth.WithViewer(req.Context(), username))
}

func TestGetHandler(t *testing.T) {
	repo := newStubArticleRepo()
	repo.bySlug["a-post"] = &entity.Article{Slug: "a-post", Title: "A Post", Author: entity.Author{Username: "bob"}}
	mux := newMux(repo, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/a-post", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"a-post"`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateHandler(t *testing.T) {
	repo := newStubArticleRepo()
	mux := newMux(repo, nil)

	body := `{"title":"A Fresh Take","description":"on testing","body":"long enough body text","tagList":["go"]}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)), "alice"))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"A Fresh Take"`)
}

func TestCreateHandler_BadInput(t *testing.T) {
	mux := newMux(newStubArticleRepo(), nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader("{not json")), "alice"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	short := `{"title":"ab","description":"on testing","body":"long enough body text"}`
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(short)), "alice"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title")
}

func TestUpdateHandler_OwnershipEnforced(t *testing.T) {
	repo := newStubArticleRepo()
	repo.bySlug["a-post"] = &entity.Article{Slug: "a-post", Author: entity.Author{Username: "bob"}}
	repo.authors["a-post"] = "bob"
	mux := newMux(repo, nil)

	body := `{"title":"New Title Here","description":"desc","body":"long enough body text"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPut, "/api/articles/a-post", strings.NewReader(body)), "mallory"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPut, "/api/articles/a-post", strings.NewReader(body)), "bob"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteHandler(t *testing.T) {
	repo := newStubArticleRepo()
	repo.authors["a-post"] = "bob"
	repo.bySlug["a-post"] = &entity.Article{Slug: "a-post"}
	mux := newMux(repo, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodDelete, "/api/articles/a-post", nil), "bob"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "a-post", repo.deleted)
}

func TestFavoriteHandler_Toggles(t *testing.T) {
	repo := newStubArticleRepo()
	repo.authors["a-post"] = "bob"
	social := &stubSocialRepo{favorited: map[string]bool{}}
	mux := newMux(repo, social)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPost, "/api/articles/a-post/favorite", nil), "alice"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorited":true`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPost, "/api/articles/a-post/favorite", nil), "alice"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorited":false`)
}

func TestFavoriteHandler_OwnArticle(t *testing.T) {
	repo := newStubArticleRepo()
	repo.authors["a-post"] = "bob"
	mux := newMux(repo, &stubSocialRepo{favorited: map[string]bool{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPost, "/api/articles/a-post/favorite", nil), "bob"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
