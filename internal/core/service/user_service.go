package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
	"github.com/pravoline/legal-site-api/internal/security"
)

var (
	usernameRe = regexp.MustCompile(`^\S{3,}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const minPasswordLen = 6

// UserService manages credentials. There is no self-registration: every
// operation here is performed by an administrator, whose username is
// recorded in the audit log.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Create(ctx context.Context, adminName string, input ports.CreateUserInput) (*domain.User, error) {
	if !usernameRe.MatchString(input.Username) {
		return nil, &domain.FieldError{Field: "username", Message: "must be at least 3 characters with no whitespace"}
	}
	if len(input.Password) < minPasswordLen {
		return nil, &domain.FieldError{Field: "password", Message: "must be at least 6 characters"}
	}
	if !domain.ValidRole(input.Role) {
		return nil, &domain.FieldError{Field: "role", Message: "must be admin or user"}
	}
	if input.Email != "" && !emailRe.MatchString(input.Email) {
		return nil, &domain.FieldError{Field: "email", Message: "must be a valid email address"}
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	// Uniqueness is checked against the email field, never the username.
	if input.Email != "" {
		if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
			return nil, domain.ErrEmailExists
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Notify:       input.Notify,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("action", "create_user").
		Str("admin", adminName).
		Str("username", created.Username).
		Str("role", created.Role).
		Msg("user created")

	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Update applies the non-nil fields of input. An empty new password is
// rejected rather than silently skipped.
func (s *UserService) Update(ctx context.Context, adminName string, input ports.UpdateUserInput) error {
	user, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if input.Email != nil {
		email := *input.Email
		if email != "" && !emailRe.MatchString(email) {
			return &domain.FieldError{Field: "email", Message: "must be a valid email address"}
		}
		if email != "" && email != user.Email {
			if other, err := s.repo.FindByEmail(ctx, email); err == nil && other.ID != user.ID {
				return domain.ErrEmailExists
			} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
				return err
			}
		}
		user.Email = email
	}
	if input.Notify != nil {
		user.Notify = *input.Notify
	}
	if input.Password != nil {
		if len(*input.Password) < minPasswordLen {
			return &domain.FieldError{Field: "password", Message: "must be at least 6 characters"}
		}
		hash, err := security.HashPassword(*input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().
		Str("action", "update_user").
		Str("admin", adminName).
		Str("user_id", user.ID).
		Bool("password_changed", input.Password != nil).
		Msg("user updated")

	return nil
}

// Delete removes a credential. The credential bound to the caller's own
// session is protected: deleting it would strand the active session.
func (s *UserService) Delete(ctx context.Context, adminName, callerID, id string) error {
	if id == callerID {
		return domain.ErrSelfDelete
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Str("action", "delete_user").
		Str("admin", adminName).
		Str("user_id", id).
		Msg("user deleted")

	return nil
}
