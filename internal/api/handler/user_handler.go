package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
)

// UserHandler exposes credential management to administrators.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,excludesall= "`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Role     string `json:"role"     validate:"required,oneof=admin user"`
	Notify   bool   `json:"notify"`
}

type updateUserRequest struct {
	ID       string  `json:"id" validate:"required"`
	Email    *string `json:"email"`
	Notify   *bool   `json:"notify"`
	Password *string `json:"password"`
}

// userView is the list representation: everything except the hash.
type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	Notify   bool   `json:"notify"`
}

type userListResponse struct {
	Users []userView `json:"users"`
}

// Create handles POST /user (admin only).
func (h *UserHandler) Create(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), identity.Username, ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
		Notify:   req.Notify,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserView(*user))
}

// List handles GET /user for any authenticated user.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	return c.JSON(http.StatusOK, userListResponse{Users: views})
}

// Update handles PUT and PATCH /user (admin only). Absent fields are left
// untouched.
func (h *UserHandler) Update(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), identity.Username, ports.UpdateUserInput{
		ID:       req.ID,
		Email:    req.Email,
		Notify:   req.Notify,
		Password: req.Password,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /user (admin only). Deleting the credential bound
// to the caller's own session is rejected.
func (h *UserHandler) Delete(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity.Username, identity.ID, req.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func toUserView(u domain.User) userView {
	return userView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Notify:   u.Notify,
	}
}
