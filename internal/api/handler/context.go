package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/pravoline/legal-site-api/internal/api/middleware"
	"github.com/pravoline/legal-site-api/internal/core/domain"
)

// requireIdentity extracts the identity injected by the session
// middleware. Its absence means the route was wired without the guard;
// fail closed rather than proceed anonymously.
func requireIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}
