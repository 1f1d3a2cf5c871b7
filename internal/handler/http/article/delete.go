package article

import (
	"net/http"

	"conduit/internal/handler/http/auth"
	artUC "conduit/internal/usecase/article"
)

// DeleteHandler removes an article. Author-only; tags, favorites and
// comments cascade in the database.
type DeleteHandler struct {
	Articles *artUC.Service
}

// ServeHTTP delete article
// @Summary      Delete an article
// @Tags         articles
// @Security     BearerAuth
// @Param        slug  path  string  true  "Article slug"
// @Success      204 {string} string "deleted"
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/articles/{slug} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.ViewerFromContext(ctx)

	if err := h.Articles.Delete(ctx, r.PathValue("slug"), caller); err != nil {
		writeArticleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
