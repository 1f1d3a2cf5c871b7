// Package profile provides HTTP handlers for public profiles and the
// follow toggle.
package profile

import (
	"errors"
	"net/http"

	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	socialUC "conduit/internal/usecase/social"
)

// DTO represents a public profile.
type DTO struct {
	Username  string `json:"username" example:"alice"`
	Bio       string `json:"bio" example:"writes about Go"`
	Image     string `json:"image" example:"https://example.com/alice.png"`
	Following bool   `json:"following" example:"false"`
}

func toDTO(p *entity.Profile) DTO {
	return DTO{
		Username:  p.Username,
		Bio:       p.Bio,
		Image:     p.Image,
		Following: p.Following,
	}
}

// GetHandler serves a public profile with following derived for the
// caller.
type GetHandler struct {
	Social *socialUC.Service
}

// ServeHTTP get profile
// @Summary      Get a profile
// @Tags         profiles
// @Produce      json
// @Param        username  path  string  true  "Profile username"
// @Success      200 {object} DTO
// @Failure      404 {object} map[string]string
// @Router       /api/profiles/{username} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	viewer := auth.ViewerFromContext(ctx)

	p, err := h.Social.Profile(ctx, r.PathValue("username"), viewer)
	if err != nil {
		if errors.Is(err, socialUC.ErrUserNotFound) {
			respond.JSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p))
}

// FollowHandler toggles the caller's follow edge toward a profile.
type FollowHandler struct {
	Social *socialUC.Service
}

// ServeHTTP toggle follow
// @Summary      Toggle follow
// @Description  Flips the follow state and returns the result. Two calls return to the original state.
// @Tags         profiles
// @Security     BearerAuth
// @Produce      json
// @Param        username  path  string  true  "Profile username"
// @Success      200 {object} map[string]bool
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      422 {object} map[string]string
// @Router       /api/profiles/{username}/follow [post]
func (h FollowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := auth.ViewerFromContext(ctx)

	state, err := h.Social.ToggleFollow(ctx, caller, r.PathValue("username"))
	if err != nil {
		switch {
		case errors.Is(err, socialUC.ErrIdentityRequired):
			respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		case errors.Is(err, socialUC.ErrUserNotFound):
			respond.JSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
		case errors.Is(err, socialUC.ErrSelfFollow):
			respond.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"following": state})
}

// Register wires the profile routes.
func Register(mux *http.ServeMux, socialSvc *socialUC.Service) {
	mux.Handle("GET /api/profiles/{username}", GetHandler{Social: socialSvc})
	mux.Handle("POST /api/profiles/{username}/follow", auth.RequireAuth(FollowHandler{Social: socialSvc}))
}
