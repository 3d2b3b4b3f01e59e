package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
	"github.com/pravoline/legal-site-api/internal/security"
)

type stubUserRepo struct {
	users             map[string]*domain.User // keyed by ID
	nextID            int
	findUsernameCalls int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "u" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.findUsernameCalls++
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email != "" && u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) FindNotifiable(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if u.Notify && u.Email != "" {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) seed(t *testing.T, username, password, role string) *domain.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	created, err := r.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return created
}

// stubLimiter replays a fixed sequence of Allow answers.
type stubLimiter struct {
	answers []bool
	err     error
	calls   int
}

func (l *stubLimiter) Allow(context.Context, string) (bool, error) {
	l.calls++
	if l.err != nil {
		return false, l.err
	}
	if len(l.answers) == 0 {
		return true, nil
	}
	a := l.answers[0]
	l.answers = l.answers[1:]
	return a, nil
}

func newAuthService(repo ports.UserRepository, limiter ports.LoginLimiter) *AuthService {
	codec := security.NewTokenCodec("test-secret", time.Hour)
	return NewAuthService(repo, codec, limiter, zerolog.Nop())
}

func TestAuthService_LoginThenCurrentUser(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "hunter22", domain.RoleAdmin)
	svc := newAuthService(repo, nil)

	res, err := svc.Login(context.Background(), "1.2.3.4", "alice", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.User.Username != "alice" || res.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", res.User)
	}
	if res.SessionToken == "" || res.CSRFSecret == "" || res.CSRFToken == "" {
		t.Fatalf("incomplete login result: %+v", res)
	}
	if !security.VerifyCSRFToken(res.CSRFSecret, res.CSRFToken) {
		t.Fatalf("issued csrf token does not verify against its secret")
	}

	id, err := svc.CurrentUser(res.SessionToken)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if id.Username != "alice" || id.Role != domain.RoleAdmin || id.ID != res.User.ID {
		t.Fatalf("introspection drifted from stored credential: %+v", id)
	}
}

func TestAuthService_LoginInvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "bob", "goodpass", domain.RoleUser)
	svc := newAuthService(repo, nil)

	res, err := svc.Login(context.Background(), "1.2.3.4", "bob", "badpass")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected no login result, got %+v", res)
	}
}

func TestAuthService_LoginUnknownUserSameError(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	if _, err := svc.Login(context.Background(), "1.2.3.4", "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user must surface as ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginRateLimitedSkipsStore(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "carol", "s3cret1", domain.RoleUser)
	limiter := &stubLimiter{answers: []bool{true, false}}
	svc := newAuthService(repo, limiter)

	if _, err := svc.Login(context.Background(), "9.9.9.9", "carol", "s3cret1"); err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	if _, err := svc.Login(context.Background(), "9.9.9.9", "carol", "s3cret1"); err != domain.ErrRateLimited {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if repo.findUsernameCalls != 1 {
		t.Fatalf("throttled attempt reached the store: %d lookups", repo.findUsernameCalls)
	}
}

func TestAuthService_LimiterFailureFailsOpen(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "dave", "passw0rd", domain.RoleUser)
	limiter := &stubLimiter{err: context.DeadlineExceeded}
	svc := newAuthService(repo, limiter)

	if _, err := svc.Login(context.Background(), "1.2.3.4", "dave", "passw0rd"); err != nil {
		t.Fatalf("limiter outage must not block login: %v", err)
	}
}

func TestAuthService_CurrentUserMissingToken(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)
	if _, err := svc.CurrentUser(""); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
