package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/security"
)

// CSRF verifies the double-submit token: the X-CSRF-Token header must
// have been derived from the csrfSecret cookie of this same session.
// Routers register it ahead of Session so a cross-site request is
// rejected before any auth or datastore work. The failure outcome is
// deliberately distinct from auth failures; it carries no identity
// information.
func CSRF() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CSRFCookie)
			if err != nil || cookie.Value == "" {
				return domain.ErrCsrfInvalid
			}
			token := c.Request().Header.Get(CSRFHeader)
			if !security.VerifyCSRFToken(cookie.Value, token) {
				return domain.ErrCsrfInvalid
			}
			return next(c)
		}
	}
}
