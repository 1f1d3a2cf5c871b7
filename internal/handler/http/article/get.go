package article

import (
	"errors"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	artUC "conduit/internal/usecase/article"
)

// GetHandler serves a single article by slug.
type GetHandler struct {
	Articles *artUC.Service
}

// ServeHTTP get article
// @Summary      Get an article
// @Description  Returns the full article. favorited and author.following are derived for the authenticated caller; both are false for anonymous requests.
// @Tags         articles
// @Produce      json
// @Param        slug  path  string  true  "Article slug"
// @Success      200 {object} DTO
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/articles/{slug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	viewer := auth.ViewerFromContext(ctx)

	got, err := h.Articles.Get(ctx, r.PathValue("slug"), viewer)
	if err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.JSON(w, http.StatusNotFound, map[string]string{"error": "article not found"})
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(got))
}
