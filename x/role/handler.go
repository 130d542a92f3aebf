package role

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deco-cx/gatekeeper/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	GetUserRoles(c echo.Context) error
	Grant(c echo.Context) error
	Revoke(c echo.Context) error
}

type handler struct {
	service core.RoleService
}

// NewHandler creates a new handler
func NewHandler(service core.RoleService) Handler {
	return &handler{service: service}
}

func mapError(c echo.Context, err error) error {
	if errors.Is(err, core.ErrorNotFound{}) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found"})
	}
	var invalid core.ErrorInvalidInput
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": invalid.Error()})
	}
	return err
}

// List returns the roles visible to a team
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.List")
	defer span.End()

	roles, err := h.service.ListTeamRoles(ctx, core.TeamRef(c.Param("team")))
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": roles})
}

type roleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PolicyIDs   []string `json:"policyIds"`
}

// Create creates a team-scoped role
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.Create")
	defer span.End()

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	role, err := h.service.CreateRole(ctx, core.TeamRef(c.Param("team")), req.Name, req.Description, req.PolicyIDs)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": role})
}

// Update updates a team-scoped role
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.Update")
	defer span.End()

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	role, err := h.service.UpdateRole(ctx, core.TeamRef(c.Param("team")), c.Param("id"), req.Name, req.Description)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": role})
}

// Delete deletes a team-scoped role and its links
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.Delete")
	defer span.End()

	if err := h.service.DeleteRole(ctx, core.TeamRef(c.Param("team")), c.Param("id")); err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// GetUserRoles returns the roles granted to a principal within a team
func (h handler) GetUserRoles(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.GetUserRoles")
	defer span.End()

	refs, err := h.service.GetUserRoles(ctx, c.Param("principal"), core.TeamRef(c.Param("team")))
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": refs})
}

// Grant grants a role to a principal
func (h handler) Grant(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.Grant")
	defer span.End()

	err := h.service.UpdateUserRole(ctx, core.TeamRef(c.Param("team")), c.Param("principal"), c.Param("id"), true)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Revoke revokes a role from a principal
func (h handler) Revoke(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Role.Handler.Revoke")
	defer span.End()

	err := h.service.UpdateUserRole(ctx, core.TeamRef(c.Param("team")), c.Param("principal"), c.Param("id"), false)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
