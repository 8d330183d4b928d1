package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/renterra/rental-service/internal/dto"
	"github.com/renterra/rental-service/internal/middleware"
	"github.com/renterra/rental-service/internal/service"
)

type ApplicationHandler struct {
	svc service.ApplicationService
}

func NewApplicationHandler(svc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}
	var req dto.SubmitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	application, err := h.svc.Submit(c.Request().Context(), middleware.Principal(c), uint(propertyID), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToApplicationResponse(application))
}

// Approve flips the application and returns the booking it spawned.
func (h *ApplicationHandler) Approve(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}
	booking, err := h.svc.Approve(c.Request().Context(), middleware.Principal(c), uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *ApplicationHandler) Reject(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}
	application, err := h.svc.Reject(c.Request().Context(), middleware.Principal(c), uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToApplicationResponse(application))
}

func (h *ApplicationHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application id")
	}
	application, err := h.svc.Cancel(c.Request().Context(), middleware.Principal(c), uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToApplicationResponse(application))
}

func (h *ApplicationHandler) List(c echo.Context) error {
	applications, err := h.svc.List(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return err
	}
	resp := make([]dto.ApplicationResponse, len(applications))
	for i := range applications {
		resp[i] = dto.ToApplicationResponse(&applications[i])
	}
	return c.JSON(http.StatusOK, resp)
}
