package article

import (
	"errors"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	socialUC "conduit/internal/usecase/social"
)

// FavoriteHandler toggles the caller's favorite mark on an article.
type FavoriteHandler struct {
	Social *socialUC.Service
}

// ServeHTTP toggle favorite
// @Summary      Toggle favorite
// @Description  Flips the favorite mark and returns the resulting state. Two calls return to the original state.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        slug  path  string  true  "Article slug"
// @Success      200 {object} map[string]bool
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      422 {object} map[string]string
// @Router       /api/articles/{slug}/favorite [post]
func (h FavoriteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.ViewerFromContext(ctx)

	state, err := h.Social.ToggleFavorite(ctx, caller, r.PathValue("slug"))
	if err != nil {
		switch {
		case errors.Is(err, socialUC.ErrIdentityRequired):
			respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		case errors.Is(err, socialUC.ErrArticleNotFound):
			respond.JSON(w, http.StatusNotFound, map[string]string{"error": "article not found"})
		case errors.Is(err, socialUC.ErrOwnArticle):
			respond.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"favorited": state})
}
