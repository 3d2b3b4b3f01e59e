package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
)

// catalogHandler serves one ordered content collection. All four
// collections (services, advantages, team, reviews) share the same CRUD
// contract: public ordered listing, admin-only mutations, ids carried in
// the JSON body the way the admin panel has always sent them.
type catalogHandler[T any] struct {
	repo    ports.CatalogRepository[T]
	listKey string
	itemID  func(T) string
}

func newCatalogHandler[T any](repo ports.CatalogRepository[T], listKey string, itemID func(T) string) *catalogHandler[T] {
	return &catalogHandler[T]{repo: repo, listKey: listKey, itemID: itemID}
}

func (h *catalogHandler[T]) List(c echo.Context) error {
	items, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, map[string][]T{h.listKey: items})
}

func (h *catalogHandler[T]) Create(c echo.Context) error {
	var item T
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	created, err := h.repo.Create(c.Request().Context(), item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler[T]) Update(c echo.Context) error {
	var item T
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	id := h.itemID(item)
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	updated, err := h.repo.Update(c.Request().Context(), id, item)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *catalogHandler[T]) Delete(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.repo.Delete(c.Request().Context(), req.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *catalogHandler[T]) register(e *echo.Echo, path string, guards []echo.MiddlewareFunc) {
	e.GET(path, h.List)
	e.POST(path, h.Create, guards...)
	e.PUT(path, h.Update, guards...)
	e.DELETE(path, h.Delete, guards...)
}

// ContentHandler bundles the four collection handlers for routing.
type ContentHandler struct {
	Services   *catalogHandler[domain.Service]
	Advantages *catalogHandler[domain.Advantage]
	Team       *catalogHandler[domain.TeamMember]
	Reviews    *catalogHandler[domain.Review]
}

func NewContentHandler(
	services ports.CatalogRepository[domain.Service],
	advantages ports.CatalogRepository[domain.Advantage],
	team ports.CatalogRepository[domain.TeamMember],
	reviews ports.CatalogRepository[domain.Review],
) *ContentHandler {
	return &ContentHandler{
		Services:   newCatalogHandler(services, "services", func(s domain.Service) string { return s.ID }),
		Advantages: newCatalogHandler(advantages, "advantages", func(a domain.Advantage) string { return a.ID }),
		Team:       newCatalogHandler(team, "team", func(m domain.TeamMember) string { return m.ID }),
		Reviews:    newCatalogHandler(reviews, "reviews", func(r domain.Review) string { return r.ID }),
	}
}

// Register wires the four collections under their paths. Listings are
// public; mutations take the supplied guard chain. The review collection
// additionally accepts PATCH, which the admin panel has always sent.
func (h *ContentHandler) Register(e *echo.Echo, guards ...echo.MiddlewareFunc) {
	h.Services.register(e, "/service", guards)
	h.Advantages.register(e, "/advantage", guards)
	h.Team.register(e, "/team", guards)
	h.Reviews.register(e, "/review", guards)
	e.PATCH("/review", h.Reviews.Update, guards...)
}
