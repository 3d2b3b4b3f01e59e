package ports

import (
	"context"

	"github.com/pravoline/legal-site-api/internal/core/domain"
)

// UserRepository persists credentials.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	// FindNotifiable returns users with notify enabled and an e-mail set.
	FindNotifiable(ctx context.Context) ([]domain.User, error)
}

// LoginResult carries everything the handler needs to establish a session:
// the identity for the response body plus the two cookie values.
type LoginResult struct {
	User         domain.Identity
	SessionToken string
	CSRFSecret   string
	CSRFToken    string
}

// AuthService is the authentication gateway: credential verification and
// session introspection. Logout is pure cookie clearing and lives in the
// handler.
type AuthService interface {
	Login(ctx context.Context, clientIP, username, password string) (*LoginResult, error)
	CurrentUser(token string) (*domain.Identity, error)
}

// CreateUserInput is the admin-supplied payload for a new credential.
type CreateUserInput struct {
	Username string
	Password string
	Email    string
	Role     string
	Notify   bool
}

// UpdateUserInput mutates a credential; nil fields are left untouched.
type UpdateUserInput struct {
	ID       string
	Email    *string
	Notify   *bool
	Password *string
}

// UserService manages credentials on behalf of administrators.
type UserService interface {
	Create(ctx context.Context, adminName string, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, adminName string, input UpdateUserInput) error
	// Delete removes a credential. callerID is the subject of the caller's
	// session; deleting it is rejected with domain.ErrSelfDelete.
	Delete(ctx context.Context, adminName, callerID, id string) error
}

// LoginLimiter throttles login attempts per client network address.
// Allow reports whether an attempt from key may proceed now. Best-effort:
// implementations may lose a race under load.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
