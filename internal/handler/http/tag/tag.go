// Package tag provides the popular tags endpoint.
package tag

import (
	"net/http"

	"conduit/internal/handler/http/respond"
	"conduit/internal/repository"
)

// Handler serves the popular tag list.
type Handler struct {
	Tags repository.TagRepository
}

// ServeHTTP popular tags
// @Summary      Popular tags
// @Description  Returns the most used tags blended with recently active ones.
// @Tags         tags
// @Produce      json
// @Success      200 {object} map[string][]string
// @Failure      500 {object} map[string]string
// @Router       /api/tags [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Tags.Popular(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	respond.JSON(w, http.StatusOK, map[string][]string{"tags": tags})
}

// Register wires the tag route.
func Register(mux *http.ServeMux, tags repository.TagRepository) {
	mux.Handle("GET /api/tags", Handler{Tags: tags})
}
