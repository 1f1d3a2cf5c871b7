package article

import (
	"encoding/json"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	artUC "conduit/internal/usecase/article"
)

// UpdateHandler replaces an article's content. Author-only.
type UpdateHandler struct {
	Articles *artUC.Service
}

// ServeHTTP update article
// @Summary      Update an article
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        slug     path  string         true  "Article slug"
// @Param        article  body  UpsertRequest  true  "Replacement fields"
// @Success      200 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/articles/{slug} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.ViewerFromContext(ctx)

	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	updated, err := h.Articles.Update(ctx, r.PathValue("slug"), caller, artUC.Draft{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Tags:        req.Tags,
	})
	if err != nil {
		writeArticleError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated))
}
