package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pravoline/legal-site-api/internal/api/metrics"
	"github.com/pravoline/legal-site-api/internal/api/middleware"
	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
	"github.com/pravoline/legal-site-api/internal/security"
)

// AuthHandler owns the session lifecycle endpoints: login, logout, session
// introspection, and CSRF secret issuance.
type AuthHandler struct {
	authService ports.AuthService
	cookieTTL   time.Duration
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type csrfResponse struct {
	Token string `json:"token"`
}

// Login handles POST /login: verify credentials, set the session and CSRF
// cookies, and return the identity.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.authService.Login(c.Request().Context(), c.RealIP(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRateLimited):
			metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	h.setSessionCookies(c, res)
	return c.JSON(http.StatusOK, res.User)
}

// Logout handles DELETE /login: clear both cookies. Idempotent; never
// errors, even without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookies(c)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Me handles GET /me. The session middleware has already verified the
// cookie; this just echoes the identity back.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}

// CSRFToken handles GET /csrf: issue a fresh secret cookie and return a
// token derived from it. The public lead form calls this before its
// first POST; logged-in clients get their pair at login.
func (h *AuthHandler) CSRFToken(c echo.Context) error {
	secret, err := security.NewCSRFSecret()
	if err != nil {
		return err
	}
	token, err := security.DeriveCSRFToken(secret)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CSRFCookie,
		Value:    secret,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		SameSite: http.SameSiteLaxMode,
		// Readable by script: the double-submit pattern depends on client
		// JS copying a derivation of this value into the request header.
		HttpOnly: false,
	})

	return c.JSON(http.StatusOK, csrfResponse{Token: token})
}

func (h *AuthHandler) setSessionCookies(c echo.Context, res *ports.LoginResult) {
	maxAge := int(h.cookieTTL.Seconds())
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    res.SessionToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     middleware.CSRFCookie,
		Value:    res.CSRFSecret,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookies(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	c.SetCookie(&http.Cookie{
		Name:   middleware.CSRFCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
