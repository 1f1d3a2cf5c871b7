package article_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/article"
	"conduit/internal/repository"
	feedUC "conduit/internal/usecase/feed"
)

type stubSearchRepo struct {
	total   int64
	hits    []*entity.SearchHit
	markers repository.HighlightMarkers
	query   string
}

func (s *stubSearchRepo) Count(_ context.Context, query string) (int64, error) {
	s.query = query
	return s.total, nil
}

func (s *stubSearchRepo) Search(_ context.Context, _ string, markers repository.HighlightMarkers, _, _ int) ([]*entity.SearchHit, error) {
	s.markers = markers
	return s.hits, nil
}

func TestSearchHandler(t *testing.T) {
	search := &stubSearchRepo{
		total: 1,
		hits:  []*entity.SearchHit{{Slug: "a", Title: "On <mark>ethics</mark>"}},
	}
	h := article.SearchHandler{Feed: &feedUC.Service{Search: search}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/search?q=ethics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	assert.Contains(t, rec.Body.String(), "<mark>ethics</mark>")
	assert.Equal(t, "ethics", search.query)
	assert.Equal(t, repository.HighlightMarkers{Start: "<mark>", Stop: "</mark>"}, search.markers)
}

func TestSearchHandler_CustomMarkers(t *testing.T) {
	search := &stubSearchRepo{total: 1, hits: []*entity.SearchHit{{Slug: "a"}}}
	h := article.SearchHandler{Feed: &feedUC.Service{Search: search}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/search?q=x&hl_start=%3Cb%3E&hl_stop=%3C%2Fb%3E", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, repository.HighlightMarkers{Start: "<b>", Stop: "</b>"}, search.markers)
}

func TestSearchHandler_EmptyQuery(t *testing.T) {
	search := &stubSearchRepo{}
	h := article.SearchHandler{Feed: &feedUC.Service{Search: search}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/search?q=+", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, search.query, "repository must not be called")
}
