package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/pravoline/legal-site-api/internal/core/domain"
)

// RequireRole enforces role-based access on routes already behind
// Session. An insufficient role yields ErrForbidden, which the error
// handler renders with the exact same status and body as an absent
// session, so responses never reveal whether a role exists.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[identity.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
