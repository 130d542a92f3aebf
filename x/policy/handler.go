package policy

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deco-cx/gatekeeper/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.PolicyService
}

// NewHandler creates a new handler
func NewHandler(service core.PolicyService) Handler {
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

// Get returns a policy by id within the team scope
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Get")
	defer span.End()

	policy, err := h.service.GetPolicy(ctx, core.TeamRef(c.Param("team")), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": policy})
}

// List returns the policies scoped to a team
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.List")
	defer span.End()

	policies, err := h.service.ListTeamPolicies(ctx, core.TeamRef(c.Param("team")))
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": policies})
}

type policyRequest struct {
	Name       string           `json:"name"`
	Statements []core.Statement `json:"statements"`
}

// Create creates a team-scoped policy
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Create")
	defer span.End()

	var req policyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	policy, err := h.service.CreatePolicy(ctx, core.TeamRef(c.Param("team")), req.Name, req.Statements)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": policy})
}

// Update replaces a team-scoped policy
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Update")
	defer span.End()

	var req policyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	policy, err := h.service.UpdatePolicy(ctx, core.TeamRef(c.Param("team")), c.Param("id"), req.Name, req.Statements)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": policy})
}

// Delete deletes a team-scoped policy
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Policy.Handler.Delete")
	defer span.End()

	if err := h.service.DeletePolicy(ctx, core.TeamRef(c.Param("team")), c.Param("id")); err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
