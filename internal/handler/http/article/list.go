package article

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"conduit/internal/common/pagination"
	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/requestid"
	"conduit/internal/handler/http/respond"
	feedUC "conduit/internal/usecase/feed"
)

// ListHandler serves the article feed: global, tag-filtered, the
// caller's following feed, and profile listings via the author and
// favourites query keys.
type ListHandler struct {
	Feed   *feedUC.Service
	MyFeed bool // true on the /feed route, which is following-only
	Cfg    pagination.Config
	Logger *slog.Logger
}

// ServeHTTP article feed
// @Summary      List articles
// @Description  Returns a page of article summaries, newest first. Filter by tag or author; add the bare `favourites` key with `author` to list articles the user favorited.
// @Tags         articles
// @Produce      json
// @Param        page        query  int     false  "Page number (0-based)" default(0)
// @Param        amount      query  int     false  "Page size" default(10) Enums(1, 5, 10, 20, 100)
// @Param        tag         query  string  false  "Only articles carrying this tag"
// @Param        author      query  string  false  "Only articles authored by this user"
// @Param        favourites  query  string  false  "Presence flag: list articles the author favorited instead"
// @Success      200 {object} pagination.Response[SummaryDTO]
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	viewer := auth.ViewerFromContext(ctx)

	values := r.URL.Query()
	params := h.Cfg.Clamp(pagination.Decode(values))
	if h.MyFeed {
		params = params.WithMyFeed(true)
	}

	target := feedUC.HomeTarget(params)
	if author := values.Get("author"); author != "" && !h.MyFeed {
		if pagination.HasFavourites(values) {
			target = feedUC.FavoritedTarget(author)
		} else {
			target = feedUC.AuthoredTarget(author)
		}
	}

	requestID := requestid.FromContext(ctx)
	pagination.LogRequest(h.logger(), requestID, viewer, params)

	page, err := h.Feed.Resolve(ctx, params, viewer, target)
	if err != nil {
		if errors.Is(err, feedUC.ErrIdentityRequired) {
			respond.JSON(w, http.StatusUnauthorized,
				map[string]string{"error": "authentication required"})
			return
		}
		pagination.LogError(h.logger(), requestID, params, err, "resolve")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]SummaryDTO, 0, len(page.Summaries))
	for _, s := range page.Summaries {
		dtos = append(dtos, toSummaryDTO(s))
	}

	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", time.Since(start).Seconds())
	pagination.LogResponse(h.logger(), requestID, params, len(dtos), time.Since(start), http.StatusOK)
	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, page.Pagination))
}

func (h ListHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
