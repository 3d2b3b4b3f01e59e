package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
	"github.com/pravoline/legal-site-api/internal/security"
)

// AuthService is the authentication gateway: it verifies credentials,
// issues session tokens and CSRF secrets, and introspects sessions.
type AuthService struct {
	repo    ports.UserRepository
	codec   *security.TokenCodec
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *security.TokenCodec, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, limiter: limiter, logger: logger}
}

// Login verifies the credential and, on success, returns the identity
// plus a signed session token and a fresh CSRF secret/token pair.
//
// The rate limiter runs before any store access, so a throttled attempt
// never reaches the repository. "No such user" and "wrong password" both
// come back as domain.ErrInvalidCredentials; the audit log distinguishes
// them server-side. The password itself is never logged.
func (s *AuthService) Login(ctx context.Context, clientIP, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, clientIP)
		if err != nil {
			// Fail open: a broken limiter backend must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if !ok {
			s.logger.Warn().Str("action", "login_throttled").Str("ip", clientIP).Msg("login attempt rate limited")
			return nil, domain.ErrRateLimited
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Str("action", "login_failed").Str("username", username).Str("reason", "unknown_user").Msg("login failed")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		s.logger.Warn().Str("action", "login_failed").Str("username", username).Str("reason", "bad_password").Msg("login failed")
		return nil, domain.ErrInvalidCredentials
	}

	identity := domain.Identity{ID: user.ID, Username: user.Username, Role: user.Role}
	token, err := s.codec.Issue(identity)
	if err != nil {
		return nil, err
	}

	csrfSecret, err := security.NewCSRFSecret()
	if err != nil {
		return nil, err
	}
	csrfToken, err := security.DeriveCSRFToken(csrfSecret)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("action", "login_success").Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")

	return &ports.LoginResult{
		User:         identity,
		SessionToken: token,
		CSRFSecret:   csrfSecret,
		CSRFToken:    csrfToken,
	}, nil
}

// CurrentUser reconstructs the identity from a session token. Any
// verification failure yields domain.ErrUnauthenticated; callers should
// clear the stale cookie when they see it.
func (s *AuthService) CurrentUser(token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.codec.Verify(token)
}
