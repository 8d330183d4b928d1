package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/renterra/rental-service/internal/middleware"
	"github.com/renterra/rental-service/internal/models"
	"github.com/renterra/rental-service/internal/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get routes to the caller's role-specific view.
func (h *DashboardHandler) Get(c echo.Context) error {
	caller := middleware.Principal(c)
	if caller == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing principal")
	}

	if caller.Role == models.RoleLandlord {
		view, err := h.svc.Landlord(c.Request().Context(), caller)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, view)
	}

	view, err := h.svc.Tenant(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
