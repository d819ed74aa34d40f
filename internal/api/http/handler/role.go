package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkarpovich/identity-server/internal/logger"
	"github.com/mkarpovich/identity-server/internal/model"
)

// RoleService defines role-definition management operations.
type RoleService interface {
	CreateRole(ctx context.Context, name model.RoleName) (model.Result, error)
	DeleteRole(ctx context.Context, name model.RoleName) (model.Result, error)
}

// Role handles admin endpoints for role definitions.
type Role struct {
	roles  RoleService
	logger *logger.Logger
}

// NewRole creates a new Role handler.
func NewRole(roles RoleService, logger *logger.Logger) *Role {
	return &Role{roles: roles, logger: logger}
}

type createRoleRequest struct {
	Role string `json:"role"`
}

// Create creates a role definition from the fixed enumeration.
func (h *Role) Create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	result, err := h.roles.CreateRole(c.Request().Context(), model.RoleName(req.Role))
	if err != nil {
		return handleError(c, err)
	}

	return respondResult(c, result)
}

// Delete removes a role definition.
func (h *Role) Delete(c echo.Context) error {
	result, err := h.roles.DeleteRole(c.Request().Context(), model.RoleName(c.Param("name")))
	if err != nil {
		return handleError(c, err)
	}

	return respondResult(c, result)
}
