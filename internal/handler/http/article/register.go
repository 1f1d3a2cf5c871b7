package article

import (
	"log/slog"
	"net/http"

	"conduit/internal/common/pagination"
	"conduit/internal/handler/http/auth"
	artUC "conduit/internal/usecase/article"
	feedUC "conduit/internal/usecase/feed"
	socialUC "conduit/internal/usecase/social"
)

// Register wires the article routes. The feed and search routes allow
// anonymous access; writes require authentication.
func Register(mux *http.ServeMux, feedSvc *feedUC.Service, articleSvc *artUC.Service, socialSvc *socialUC.Service, logger *slog.Logger) {
	cfg := pagination.LoadFromEnv()

	mux.Handle("GET /api/articles", ListHandler{Feed: feedSvc, Cfg: cfg, Logger: logger})
	mux.Handle("GET /api/articles/feed", auth.RequireAuth(ListHandler{Feed: feedSvc, MyFeed: true, Cfg: cfg, Logger: logger}))
	mux.Handle("GET /api/articles/search", SearchHandler{Feed: feedSvc, Cfg: cfg})
	mux.Handle("GET /api/articles/{slug}", GetHandler{Articles: articleSvc})

	mux.Handle("POST /api/articles", auth.RequireAuth(CreateHandler{Articles: articleSvc}))
	mux.Handle("PUT /api/articles/{slug}", auth.RequireAuth(UpdateHandler{Articles: articleSvc}))
	mux.Handle("DELETE /api/articles/{slug}", auth.RequireAuth(DeleteHandler{Articles: articleSvc}))
	mux.Handle("POST /api/articles/{slug}/favorite", auth.RequireAuth(FavoriteHandler{Social: socialSvc}))
}
