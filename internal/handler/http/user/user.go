// Package user provides HTTP handlers for accounts: signup, login, the
// current-user endpoints and the password reset flow.
package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	userUC "conduit/internal/usecase/user"
)

// DTO represents the account payload. Token is set on signup and login.
type DTO struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Bio      string `json:"bio" example:"writes about Go"`
	Image    string `json:"image" example:"https://example.com/alice.png"`
	Token    string `json:"token,omitempty"`
}

func toDTO(u *entity.User, token string) DTO {
	return DTO{
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		Image:    u.Image,
		Token:    token,
	}
}

// SignupRequest is the body for POST /api/users.
type SignupRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct horse battery"`
}

// LoginRequest is the body for POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"correct horse battery"`
}

// SettingsRequest is the body for PUT /api/user. Absent fields are left
// unchanged.
type SettingsRequest struct {
	Email    *string `json:"email,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Image    *string `json:"image,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ResetRequest is the body for POST /api/users/reset-password.
type ResetRequest struct {
	Email string `json:"email" example:"alice@example.com"`
}

// ResetConfirmRequest is the body for PUT /api/users/reset-password.
type ResetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// SignupHandler creates a new account and returns a session token.
type SignupHandler struct {
	Users *userUC.Service
}

// ServeHTTP signup
// @Summary      Register a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body  SignupRequest  true  "Account fields"
// @Success      201 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      422 {object} map[string]string
// @Router       /api/users [post]
func (h SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	session, err := h.Users.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeUserError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(session.User, session.Token))
}

// LoginHandler exchanges credentials for a session token.
type LoginHandler struct {
	Users *userUC.Service
}

// ServeHTTP login
// @Summary      Log in
// @Description  Unknown usernames and wrong passwords produce the same 401 response.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Credentials"
// @Success      200 {object} DTO
// @Failure      401 {object} map[string]string
// @Router       /api/users/login [post]
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	session, err := h.Users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, userUC.ErrInvalidCredentials) {
			respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(session.User, session.Token))
}

// CurrentHandler returns the authenticated account.
type CurrentHandler struct {
	Users *userUC.Service
}

// ServeHTTP current user
// @Summary      Get the current user
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} DTO
// @Failure      401 {object} map[string]string
// @Router       /api/user [get]
func (h CurrentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	got, err := h.Users.Current(r.Context(), auth.ViewerFromContext(r.Context()))
	if err != nil {
		writeUserError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(got, ""))
}

// SettingsHandler updates the authenticated account's mutable fields.
type SettingsHandler struct {
	Users *userUC.Service
}

// ServeHTTP update settings
// @Summary      Update account settings
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        settings  body  SettingsRequest  true  "Fields to change"
// @Success      200 {object} DTO
// @Failure      400 {object} map[string]string
// @Failure      422 {object} map[string]string
// @Router       /api/user [put]
func (h SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	updated, err := h.Users.UpdateSettings(r.Context(), auth.ViewerFromContext(r.Context()), userUC.Settings{
		Email:    req.Email,
		Bio:      req.Bio,
		Image:    req.Image,
		Password: req.Password,
	})
	if err != nil {
		writeUserError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated, ""))
}

// ResetRequestHandler mails a password reset token. It answers 202 for
// unknown addresses too, so the endpoint cannot probe for accounts.
type ResetRequestHandler struct {
	Users *userUC.Service
}

// ServeHTTP request reset
// @Summary      Request a password reset
// @Tags         users
// @Accept       json
// @Success      202 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /api/users/reset-password [post]
func (h ResetRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.Users.RequestPasswordReset(r.Context(), req.Email); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusAccepted, map[string]string{"status": "reset mail sent if the address exists"})
}

// ResetConfirmHandler sets a new password using a reset token.
type ResetConfirmHandler struct {
	Users *userUC.Service
}

// ServeHTTP confirm reset
// @Summary      Confirm a password reset
// @Tags         users
// @Accept       json
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /api/users/reset-password [put]
func (h ResetConfirmHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ResetConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.Users.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, userUC.ErrInvalidResetToken) {
			respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}
		writeUserError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

func writeUserError(w http.ResponseWriter, err error) {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": vErr.Error()})
	case errors.Is(err, entity.ErrAlreadyExists):
		respond.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, userUC.ErrUserNotFound):
		respond.JSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// Register wires the account routes. limiter guards the abuse-prone
// endpoints (signup, login, reset).
func Register(mux *http.ServeMux, userSvc *userUC.Service, limit func(http.Handler) http.Handler) {
	mux.Handle("POST /api/users", limit(SignupHandler{Users: userSvc}))
	mux.Handle("POST /api/users/login", limit(LoginHandler{Users: userSvc}))
	mux.Handle("POST /api/users/reset-password", limit(ResetRequestHandler{Users: userSvc}))
	mux.Handle("PUT /api/users/reset-password", limit(ResetConfirmHandler{Users: userSvc}))

	mux.Handle("GET /api/user", auth.RequireAuth(CurrentHandler{Users: userSvc}))
	mux.Handle("PUT /api/user", auth.RequireAuth(SettingsHandler{Users: userSvc}))
}
