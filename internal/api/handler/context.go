package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// principal is the authenticated caller as seen by handlers, assembled from
// the claims the Auth middleware injects.
type principal struct {
	UserID   string
	Name     string
	Role     domain.Role
	ClientID string
}

// ctxPrincipal extracts the auth claims and performs a fast-fail check before
// any service call:
//   - user_id and role must be non-empty (presence proves the middleware ran).
//   - client roles require a non-empty client_id; without it the JWT is
//     structurally valid but operationally unusable — reject with 401.
func ctxPrincipal(c echo.Context) (principal, error) {
	userID, _ := c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" || roleStr == "" {
		return principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role := domain.Role(roleStr)
	clientID, _ := c.Get("client_id").(string)
	if domain.IsClientRole(role) && clientID == "" {
		return principal{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing client identity")
	}

	name, _ := c.Get("name").(string)
	return principal{UserID: userID, Name: name, Role: role, ClientID: clientID}, nil
}
