package access

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deco-cx/gatekeeper/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Check(c echo.Context) error
}

type handler struct {
	service core.AccessService
}

// NewHandler creates a new handler
func NewHandler(service core.AccessService) Handler {
	return &handler{service: service}
}

type checkRequest struct {
	Principal string           `json:"principal"`
	Team      string           `json:"team"`
	Resource  string           `json:"resource"`
	Context   core.AuthContext `json:"context"`
}

// Check evaluates an access decision for a trusted internal caller. The
// boolean result distinguishes "denied" from the error path, which means
// the check could not be completed.
func (h handler) Check(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Access.Handler.Check")
	defer span.End()

	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	if req.Resource == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "resource is required"})
	}

	allowed, err := h.service.CanAccess(ctx, req.Principal, core.TeamRef(req.Team), req.Resource, req.Context)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Team not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": echo.Map{"allowed": allowed}})
}
