package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dermatosalud/reportes-backend/pkg/utils"
)

// ContextKeyClaims is the echo context key the validated claims are stored under.
const ContextKeyClaims = "claims"

// JWTMiddleware validates the Bearer token and stores the claims in the
// request context. Requests without a valid token never reach a handler.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No autorizado"})
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No autorizado"})
			}
			claims, err := utils.ValidateJWTToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No autorizado"})
			}

			c.Set(ContextKeyClaims, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims stored by JWTMiddleware, or nil.
func ClaimsFromContext(c echo.Context) *utils.Claims {
	claims, _ := c.Get(ContextKeyClaims).(*utils.Claims)
	return claims
}
