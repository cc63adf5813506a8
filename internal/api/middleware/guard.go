package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsemark/agency-platform/internal/api/metrics"
	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// RequirePermission guards a route with a single permission token. The
// caller's role (injected by Auth) is looked up in the permission table; a
// role that does not hold the permission gets 403. An unknown or missing
// role holds no permissions and is rejected the same way.
func RequirePermission(perm domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleStr, _ := c.Get("role").(string)
			role := domain.Role(roleStr)
			if !domain.HasPermission(role, perm) {
				metrics.PermissionDenialsTotal.WithLabelValues(string(perm)).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireAgency restricts a route to agency-side roles.
func RequireAgency() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleStr, _ := c.Get("role").(string)
			if !domain.IsAgencyRole(domain.Role(roleStr)) {
				metrics.PermissionDenialsTotal.WithLabelValues("agency_only").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
