package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole rejects the request unless the JWT claims include the given
// role. The check runs before the handler, so an unauthorized caller never
// triggers any report query.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFromContext(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No autorizado"})
			}
			if !claims.HasRole(role) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "No autorizado"})
			}
			return next(c)
		}
	}
}
