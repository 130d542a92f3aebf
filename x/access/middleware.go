package access

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deco-cx/gatekeeper/core"
)

// Identify extracts the authenticated principal propagated by the upstream
// gateway and stores it on the request context. Requests without a principal
// still pass through; the Restrict middleware is what denies them, since an
// unknown principal resolves to an empty statement set.
func Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(core.PrincipalCtxKey, c.Request().Header.Get(core.PrincipalHeader))
		c.Set(core.IntegrationCtxKey, c.Request().Header.Get(core.IntegrationHeader))
		return next(c)
	}
}

// Restrict guards a handler behind an access check for the given resource.
// The team is taken from the :team path parameter. A failed check is a 403;
// an aborted check (directory store unreachable) is a 500, never a silent
// allow.
func Restrict(service core.AccessService, resource string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Access.Middleware.Restrict")
			defer span.End()

			principal, _ := c.Get(core.PrincipalCtxKey).(string)
			integration, _ := c.Get(core.IntegrationCtxKey).(string)

			allowed, err := service.CanAccess(
				ctx,
				principal,
				core.TeamRef(c.Param("team")),
				resource,
				core.AuthContext{IntegrationID: integration},
			)
			if err != nil {
				span.RecordError(err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Authorization check failed"})
			}
			if !allowed {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Forbidden"})
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
