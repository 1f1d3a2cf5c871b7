package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"
	"conduit/internal/service/auth"
)

type stubUserRepo struct {
	repository.UserRepository
	byUsername map[string]*entity.User
	byEmail    map[string]*entity.User
	updated    *entity.User
	newHash    string
}

func newStubRepo() *stubUserRepo {
	return &stubUserRepo{
		byUsername: map[string]*entity.User{},
		byEmail:    map[string]*entity.User{},
	}
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
	if _, ok := s.byEmail[u.Email]; ok {
		return fmt.Errorf("email %w", entity.ErrAlreadyExists)
	}
	s.add(u)
	return nil
}

func (s *stubUserRepo) Update(_ context.Context, u *entity.User) error {
	s.updated = u
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
	to    string
	token string
	err   error
}

func (m *stubMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.to = email
	m.token = token
	return m.err
}

func newService(repo *stubUserRepo, m *stubMailer) *Service {
	return &Service{
		Users:  repo,
		Tokens: auth.NewTokenService([]byte("0123456789abcdef0123456789abcdef")),
		Mailer: m,
	}
}

func TestSignupAndLogin(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo, &stubMailer{})
	ctx := context.Background()

	session, err := svc.Signup(ctx, "alice", "alice@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Signup err=%v", err)
	}
	if session.Token == "" {
		t.Error("signup session has no token")
	}
	if repo.byUsername["alice"].PasswordHash == "correct horse battery" {
		t.Error("password stored in plain text")
	}

	session, err = svc.Login(ctx, "alice", "correct horse battery")
	if err != nil {
		t.Fatalf("Login err=%v", err)
	}
	username, err := svc.Tokens.VerifySession(session.Token)
	if err != nil || username != "alice" {
		t.Errorf("session token verifies to (%q, %v)", username, err)
	}
}

func TestSignup_Duplicates(t *testing.T) {
	repo := newStubRepo()
	repo.add(&entity.User{Username: "alice", Email: "alice@example.com"})
	svc := newService(repo, &stubMailer{})

	_, err := svc.Signup(context.Background(), "alice", "other@example.com", "a long password")
	if !errors.Is(err, entity.ErrAlreadyExists) {
		t.Errorf("duplicate username err=%v, want ErrAlreadyExists", err)
	}
	_, err = svc.Signup(context.Background(), "bob", "alice@example.com", "a long password")
	if !errors.Is(err, entity.ErrAlreadyExists) {
		t.Errorf("duplicate email err=%v, want ErrAlreadyExists", err)
	}
}

func TestSignup_Validation(t *testing.T) {
	svc := newService(newStubRepo(), &stubMailer{})
	ctx := context.Background()

	var vErr *entity.ValidationError
	if _, err := svc.Signup(ctx, "ab", "a@example.com", "a long password"); !errors.As(err, &vErr) {
		t.Errorf("short username err=%v, want ValidationError", err)
	}
	if _, err := svc.Signup(ctx, "alice", "not-an-email", "a long password"); !errors.As(err, &vErr) {
		t.Errorf("bad email err=%v, want ValidationError", err)
	}
	if _, err := svc.Signup(ctx, "alice", "a@example.com", "short"); !errors.As(err, &vErr) {
		t.Errorf("short password err=%v, want ValidationError", err)
	}
}

// Unknown usernames and wrong passwords must be indistinguishable.
func TestLogin_UniformFailure(t *testing.T) {
	repo := newStubRepo()
	hash, _ := auth.HashPassword("a long password")
	repo.add(&entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: hash})
	svc := newService(repo, &stubMailer{})
	ctx := context.Background()

	_, errUnknown := svc.Login(ctx, "ghost", "whatever password")
	_, errWrong := svc.Login(ctx, "alice", "wrong password here")
	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Errorf("errs = (%v, %v), both want ErrInvalidCredentials", errUnknown, errWrong)
	}
}

func TestUpdateSettings(t *testing.T) {
	repo := newStubRepo()
	repo.add(&entity.User{Username: "alice", Email: "alice@example.com"})
	svc := newService(repo, &stubMailer{})

	bio := "writes about Go"
	got, err := svc.UpdateSettings(context.Background(), "alice", Settings{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateSettings err=%v", err)
	}
	if got.Bio != bio {
		t.Errorf("bio = %q", got.Bio)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("email changed unexpectedly to %q", got.Email)
	}

	bad := "not-an-email"
	var vErr *entity.ValidationError
	if _, err := svc.UpdateSettings(context.Background(), "alice", Settings{Email: &bad}); !errors.As(err, &vErr) {
		t.Errorf("bad email err=%v, want ValidationError", err)
	}
}

func TestUpdateSettings_Password(t *testing.T) {
	repo := newStubRepo()
	oldHash, _ := auth.HashPassword("old password here")
	repo.add(&entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: oldHash})
	svc := newService(repo, &stubMailer{})

	pw := "brand new password"
	got, err := svc.UpdateSettings(context.Background(), "alice", Settings{Password: &pw})
	if err != nil {
		t.Fatalf("UpdateSettings err=%v", err)
	}
	if got.PasswordHash == oldHash {
		t.Error("password hash unchanged")
	}
	if err := auth.VerifyPassword(got.PasswordHash, pw); err != nil {
		t.Errorf("new password does not verify: %v", err)
	}

	short := "hi"
	var vErr *entity.ValidationError
	if _, err := svc.UpdateSettings(context.Background(), "alice", Settings{Password: &short}); !errors.As(err, &vErr) {
		t.Errorf("short password err=%v, want ValidationError", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	repo := newStubRepo()
	hash, _ := auth.HashPassword("old password here")
	repo.add(&entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: hash})
	m := &stubMailer{}
	svc := newService(repo, m)
	ctx := context.Background()

	if err := svc.RequestPasswordReset(ctx, "alice@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset err=%v", err)
	}
	if m.to != "alice@example.com" || m.token == "" {
		t.Fatalf("mailer saw (%q, %q)", m.to, m.token)
	}

	if err := svc.ResetPassword(ctx, m.token, "a brand new password"); err != nil {
		t.Fatalf("ResetPassword err=%v", err)
	}
	if repo.newHash == "" || repo.newHash == hash {
		t.Error("password hash was not replaced")
	}
}

// Requesting a reset for an unknown address succeeds silently.
func TestRequestPasswordReset_UnknownAddress(t *testing.T) {
	m := &stubMailer{}
	svc := newService(newStubRepo(), m)

	if err := svc.RequestPasswordReset(context.Background(), "ghost@example.com"); err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
	if m.to != "" {
		t.Error("mailer was invoked for unknown address")
	}
}

func TestResetPassword_BadToken(t *testing.T) {
	svc := newService(newStubRepo(), &stubMailer{})
	ctx := context.Background()

	if err := svc.ResetPassword(ctx, "garbage", "a brand new password"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("garbage token err=%v, want ErrInvalidResetToken", err)
	}

	// A session token must not pass as a reset token.
	session, err := svc.Tokens.IssueSession("alice")
	if err != nil {
		t.Fatalf("IssueSession err=%v", err)
	}
	if err := svc.ResetPassword(ctx, session, "a brand new password"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("session token err=%v, want ErrInvalidResetToken", err)
	}
}
