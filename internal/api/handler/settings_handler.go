package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
)

// SettingsHandler serves the singleton site configuration record.
type SettingsHandler struct {
	repo ports.SettingsRepository
}

func NewSettingsHandler(repo ports.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// Get handles GET /settings. Before the first save an empty record comes
// back rather than a 404; the public pages render blanks.
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.repo.Get(c.Request().Context())
	if err != nil {
		return err
	}
	if settings == nil {
		settings = &domain.Settings{}
	}
	return c.JSON(http.StatusOK, settings)
}

// Put handles POST /settings (admin only): create-or-replace. Fields
// missing from the payload reset to empty, matching the admin form which
// always submits the full record.
func (h *SettingsHandler) Put(c echo.Context) error {
	var settings domain.Settings
	if err := c.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.repo.Put(c.Request().Context(), &settings); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
