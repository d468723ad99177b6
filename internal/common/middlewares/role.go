package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/janakpur-hospital/census-backend/pkg/utils"
)

// RequireRole allows the request through only when the JWT claims
// carry one of the given roles. Must run after JWTMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(string(ContextKeyClaims)).(*utils.Claims)
			if !ok || claims == nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Missing or invalid JWT claims",
					"data":    nil,
				})
			}

			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"status":  http.StatusForbidden,
				"message": "You do not have access to this resource",
				"data":    nil,
			})
		}
	}
}
