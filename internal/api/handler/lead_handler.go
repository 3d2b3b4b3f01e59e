package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pravoline/legal-site-api/internal/api/metrics"
	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
)

// LeadHandler serves the public intake form and the staff-facing lead
// list.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

type createLeadRequest struct {
	Name  string `json:"name"  validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,ruphone"`
}

type leadListResponse struct {
	Requests []domain.Lead `json:"requests"`
}

type deleteRequest struct {
	ID string `json:"id" validate:"required"`
}

// Create handles POST /request — the public lead-capture form. CSRF is
// verified by middleware before this runs.
func (h *LeadHandler) Create(c echo.Context) error {
	var req createLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lead, err := h.service.Create(c.Request().Context(), req.Name, req.Phone)
	if err != nil {
		return err
	}

	metrics.LeadsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, lead)
}

// List handles GET /request for authenticated staff, newest first.
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	return c.JSON(http.StatusOK, leadListResponse{Requests: leads})
}

// Delete handles DELETE /request with a JSON body {"id": "..."}.
func (h *LeadHandler) Delete(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
