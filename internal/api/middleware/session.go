package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
)

// Cookie and header names shared by the guards and the auth handlers.
const (
	SessionCookie = "token"
	CSRFCookie    = "csrfSecret"
	CSRFHeader    = "X-CSRF-Token"

	// ContextIdentity is the echo context key the verified identity is
	// stored under.
	ContextIdentity = "identity"
)

// Session verifies the session cookie and injects the identity into the
// request context. Any verification failure surfaces as the single
// opaque unauthenticated outcome, and the stale cookie is cleared so the
// client stops resending it.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return domain.ErrUnauthenticated
			}

			identity, err := auth.CurrentUser(cookie.Value)
			if err != nil {
				// drop the pair together, same as logout
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
				})
				c.SetCookie(&http.Cookie{
					Name:   CSRFCookie,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
				return domain.ErrUnauthenticated
			}

			c.Set(ContextIdentity, *identity)
			return next(c)
		}
	}
}

// IdentityFrom extracts the identity injected by Session. The second
// return is false when the middleware did not run on this route.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(ContextIdentity).(domain.Identity)
	return id, ok
}
