package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	artUC "conduit/internal/usecase/article"
)

// CreateHandler creates a new article for the authenticated caller.
type CreateHandler struct {
	Articles *artUC.Service
}

// ServeHTTP create article
// @Summary      Create an article
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article  body  UpsertRequest  true  "Article fields"
// @Success      201 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.ViewerFromContext(ctx)

	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	created, err := h.Articles.Create(ctx, caller, artUC.Draft{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		Tags:        req.Tags,
	})
	if err != nil {
		writeArticleError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}

// writeArticleError maps article usecase errors onto status codes shared
// by create, update and delete.
func writeArticleError(w http.ResponseWriter, err error) {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": vErr.Error()})
	case errors.Is(err, artUC.ErrIdentityRequired):
		respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	case errors.Is(err, artUC.ErrNotAuthor):
		respond.JSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, artUC.ErrArticleNotFound):
		respond.JSON(w, http.StatusNotFound, map[string]string{"error": "article not found"})
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
