package team

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deco-cx/gatekeeper/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	Create(c echo.Context) error
	List(c echo.Context) error
}

type handler struct {
	service core.TeamService
}

// NewHandler creates a new handler
func NewHandler(service core.TeamService) Handler {
	return &handler{service: service}
}

// Get returns a team by id or slug
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Team.Handler.Get")
	defer span.End()

	ref := core.TeamRef(c.Param("team"))
	id, err := h.service.ResolveID(ctx, ref)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Team not found"})
		}
		return err
	}

	team, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Team not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": team})
}

type createRequest struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Create registers a new team
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Team.Handler.Create")
	defer span.End()

	var req createRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	principal, _ := c.Get(core.PrincipalCtxKey).(string)
	team, err := h.service.Create(ctx, req.Slug, req.Name, principal)
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Team already exists"})
		}
		var invalid core.ErrorInvalidInput
		if errors.As(err, &invalid) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": invalid.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": team})
}

// List returns all teams
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Team.Handler.List")
	defer span.End()

	teams, err := h.service.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": teams})
}
