package article

import (
	"errors"
	"net/http"
	"time"

	"conduit/internal/common/pagination"
	"conduit/internal/handler/http/respond"
	"conduit/internal/repository"
	feedUC "conduit/internal/usecase/feed"
)

const (
	defaultHighlightStart = "<mark>"
	defaultHighlightStop  = "</mark>"
)

// SearchHandler serves full-text article search with per-field snippet
// highlighting.
type SearchHandler struct {
	Feed *feedUC.Service
	Cfg  pagination.Config
}

// ServeHTTP article search
// @Summary      Search articles
// @Description  Full-text search over title, description and body. Matching fields come back as snippets wrapped in the highlight markers; non-matching fields are returned unmarked.
// @Tags         articles
// @Produce      json
// @Param        q         query  string  true   "Search query (web search syntax)"
// @Param        page      query  int     false  "Page number (0-based)" default(0)
// @Param        amount    query  int     false  "Page size" default(10)
// @Param        hl_start  query  string  false  "Opening highlight marker" default(<mark>)
// @Param        hl_stop   query  string  false  "Closing highlight marker" default(</mark>)
// @Success      200 {object} pagination.Response[SearchHitDTO]
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/articles/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	values := r.URL.Query()
	params := h.Cfg.Clamp(pagination.Decode(values))

	markers := repository.HighlightMarkers{
		Start: defaultHighlightStart,
		Stop:  defaultHighlightStop,
	}
	if s := values.Get("hl_start"); s != "" {
		markers.Start = s
	}
	if s := values.Get("hl_stop"); s != "" {
		markers.Stop = s
	}

	result, err := h.Feed.ResolveSearch(ctx, values.Get("q"), params, markers)
	if err != nil {
		if errors.Is(err, feedUC.ErrEmptyQuery) {
			respond.JSON(w, http.StatusBadRequest,
				map[string]string{"error": "search query must not be empty"})
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]SearchHitDTO, 0, len(result.Hits))
	for _, hit := range result.Hits {
		dtos = append(dtos, toSearchHitDTO(hit))
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("search", time.Since(start).Seconds())
	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
