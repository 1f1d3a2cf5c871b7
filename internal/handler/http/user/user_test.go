package user_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/user"
	"conduit/internal/repository"
	authservice "conduit/internal/service/auth"
	userUC "conduit/internal/usecase/user"
)

type stubUserRepo struct {
	repository.UserRepository
	byUsername map[string]*entity.User
	byEmail    map[string]*entity.User
	newHash    string
}

func newStubRepo() *stubUserRepo {
	return &stubUserRepo{byUsername: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (s *stubUserRepo) add(u *entity.User) {
	s.byUsername[u.Username] = u
	s.byEmail[u.Email] = u
}

func (s *stubUserRepo) Get(_ context.Context, username string) (*entity.User, error) {
	return s.byUsername[username], nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.byEmail[email], nil
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := s.byUsername[u.Username]; ok {
		return fmt.Errorf("username %w", entity.ErrAlreadyExists)
	}
	s.add(u)
	return nil
}

func (s *stubUserRepo) Update(_ context.Context, u *entity.User) error {
	s.add(u)
	return nil
}

func (s *stubUserRepo) UpdatePassword(_ context.Context, email, hash string) error {
	if _, ok := s.byEmail[email]; !ok {
		return entity.ErrNotFound
	}
	s.newHash = hash
	return nil
}

type stubMailer struct {
	token string
}

func (m *stubMailer) SendPasswordReset(_ context.Context, _, token string) error {
	m.token = token
	return nil
}

func newMux() (*http.ServeMux, *stubUserRepo, *stubMailer) {
	repo := newStubRepo()
	mailer := &stubMailer{}
	svc := &userUC.Service{
		Users:  repo,
		Tokens: authservice.NewTokenService([]byte("0123456789abcdef0123456789abcdef")),
		Mailer: mailer,
	}
	mux := http.NewServeMux()
	user.Register(mux, svc, func(next http.Handler) http.Handler { return next })
	return mux, repo, mailer
}

func asUser(req *http.Request, username string) *http.Request {
	return req.WithContext(auth.WithViewer(req.Context(), username))
}

func postJSON(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestSignupLoginFlow(t *testing.T) {
	mux, _, _ := newMux()

	rec := postJSON(mux, http.MethodPost, "/api/users",
		`{"username":"alice","email":"alice@example.com","password":"correct horse battery"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created user.DTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "alice", created.Username)
	assert.NotEmpty(t, created.Token)

	rec = postJSON(mux, http.MethodPost, "/api/users/login",
		`{"username":"alice","password":"correct horse battery"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(mux, http.MethodPost, "/api/users/login",
		`{"username":"alice","password":"wrong password here"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignup_Rejections(t *testing.T) {
	mux, repo, _ := newMux()
	repo.add(&entity.User{Username: "alice", Email: "alice@example.com"})

	rec := postJSON(mux, http.MethodPost, "/api/users",
		`{"username":"alice","email":"other@example.com","password":"a long password"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = postJSON(mux, http.MethodPost, "/api/users",
		`{"username":"bob","email":"not-an-email","password":"a long password"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(mux, http.MethodPost, "/api/users", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurrentAndSettings(t *testing.T) {
	mux, repo, _ := newMux()
	repo.add(&entity.User{Username: "alice", Email: "alice@example.com"})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/user", nil), "alice"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"alice@example.com"`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodPut, "/api/user",
		strings.NewReader(`{"bio":"writes about Go"}`)), "alice"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bio":"writes about Go"`)

	// anonymous requests are rejected by RequireAuth
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	mux, repo, mailer := newMux()
	repo.add(&entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "old"})

	rec := postJSON(mux, http.MethodPost, "/api/users/reset-password", `{"email":"alice@example.com"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.NotEmpty(t, mailer.token)

	rec = postJSON(mux, http.MethodPut, "/api/users/reset-password",
		fmt.Sprintf(`{"token":%q,"password":"a brand new password"}`, mailer.token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, repo.newHash)

	// unknown address looks identical to a known one
	rec = postJSON(mux, http.MethodPost, "/api/users/reset-password", `{"email":"ghost@example.com"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = postJSON(mux, http.MethodPut, "/api/users/reset-password",
		`{"token":"garbage","password":"a brand new password"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
