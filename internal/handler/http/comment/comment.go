// Package comment provides HTTP handlers for article comments.
package comment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	commentUC "conduit/internal/usecase/comment"
)

// DTO represents one comment in API payloads.
type DTO struct {
	ID        int64     `json:"id" example:"42"`
	Body      string    `json:"body" example:"nice read, thanks"`
	CreatedAt time.Time `json:"createdAt" example:"2026-03-14T12:00:00Z"`
	Author    struct {
		Username  string `json:"username"`
		Image     string `json:"image"`
		Following bool   `json:"following"`
	} `json:"author"`
}

// CreateRequest is the JSON body for posting a comment.
type CreateRequest struct {
	Body string `json:"body" example:"nice read, thanks"`
}

func toDTO(c *entity.Comment) DTO {
	var d DTO
	d.ID = c.ID
	d.Body = c.Body
	d.CreatedAt = c.CreatedAt
	d.Author.Username = c.Author.Username
	d.Author.Image = c.Author.Image
	d.Author.Following = c.Author.Following
	return d
}

// ListHandler serves an article's comments.
type ListHandler struct {
	Comments *commentUC.Service
}

// ServeHTTP list comments
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        slug  path  string  true  "Article slug"
// @Success      200 {array} DTO
// @Failure      404 {object} map[string]string
// @Router       /api/articles/{slug}/comments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	viewer := auth.ViewerFromContext(ctx)

	comments, err := h.Comments.List(ctx, r.PathValue("slug"), viewer)
	if err != nil {
		writeCommentError(w, err)
		return
	}
	dtos := make([]DTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// CreateHandler posts a comment on an article.
type CreateHandler struct {
	Comments *commentUC.Service
}

// ServeHTTP post comment
// @Summary      Post a comment
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        slug     path  string         true  "Article slug"
// @Param        comment  body  CreateRequest  true  "Comment body"
// @Success      201 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/articles/{slug}/comments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.ViewerFromContext(ctx)

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	created, err := h.Comments.Add(ctx, r.PathValue("slug"), caller, req.Body)
	if err != nil {
		writeCommentError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created))
}

// DeleteHandler removes a comment. Author-only.
type DeleteHandler struct {
	Comments *commentUC.Service
}

// ServeHTTP delete comment
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        slug  path  string  true  "Article slug"
// @Param        id    path  int     true  "Comment ID"
// @Success      204 {string} string "deleted"
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/articles/{slug}/comments/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.ViewerFromContext(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid comment id"})
		return
	}

	if err := h.Comments.Delete(ctx, r.PathValue("slug"), id, caller); err != nil {
		writeCommentError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeCommentError(w http.ResponseWriter, err error) {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": vErr.Error()})
	case errors.Is(err, commentUC.ErrIdentityRequired):
		respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	case errors.Is(err, commentUC.ErrNotCommentAuthor):
		respond.JSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, commentUC.ErrArticleNotFound):
		respond.JSON(w, http.StatusNotFound, map[string]string{"error": "article not found"})
	case errors.Is(err, commentUC.ErrCommentNotFound):
		respond.JSON(w, http.StatusNotFound, map[string]string{"error": "comment not found"})
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// Register wires the comment routes.
func Register(mux *http.ServeMux, commentSvc *commentUC.Service) {
	mux.Handle("GET /api/articles/{slug}/comments", ListHandler{Comments: commentSvc})
	mux.Handle("POST /api/articles/{slug}/comments", auth.RequireAuth(CreateHandler{Comments: commentSvc}))
	mux.Handle("DELETE /api/articles/{slug}/comments/{id}", auth.RequireAuth(DeleteHandler{Comments: commentSvc}))
}
