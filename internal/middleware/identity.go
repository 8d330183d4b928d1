package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/renterra/rental-service/internal/models"
	"github.com/renterra/rental-service/internal/repository"
)

// HeaderUserID carries the authenticated principal's id. Authentication
// itself happens upstream (gateway); this service trusts the header and
// only resolves it to a persisted user.
const HeaderUserID = "X-User-ID"

const principalKey = "principal"

// Identity resolves the acting user and stores it on the request context.
// Handlers read it back with Principal and pass it explicitly into the
// service layer.
func Identity(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderUserID)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing "+HeaderUserID+" header")
			}
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid "+HeaderUserID+" header")
			}
			user, err := userRepo.FindByID(c.Request().Context(), uint(id))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}
			c.Set(principalKey, user)
			return next(c)
		}
	}
}

func Principal(c echo.Context) *models.User {
	user, _ := c.Get(principalKey).(*models.User)
	return user
}

// SetPrincipal injects the acting user directly; test helper.
func SetPrincipal(c echo.Context, user *models.User) {
	c.Set(principalKey, user)
}
