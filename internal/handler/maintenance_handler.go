package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/renterra/rental-service/internal/dto"
	"github.com/renterra/rental-service/internal/middleware"
	"github.com/renterra/rental-service/internal/models"
	"github.com/renterra/rental-service/internal/service"
)

type MaintenanceHandler struct {
	svc service.MaintenanceService
}

func NewMaintenanceHandler(svc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

func (h *MaintenanceHandler) File(c echo.Context) error {
	var req dto.FileTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ticket, err := h.svc.File(c.Request().Context(), middleware.Principal(c), service.TicketInput{
		Title:    req.Title,
		Issue:    req.Issue,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *MaintenanceHandler) Advance(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ticket id")
	}
	var req dto.AdvanceTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ticket, err := h.svc.Advance(c.Request().Context(), middleware.Principal(c), uint(id), models.TicketStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *MaintenanceHandler) List(c echo.Context) error {
	tickets, err := h.svc.List(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return err
	}
	resp := make([]dto.TicketResponse, len(tickets))
	for i := range tickets {
		resp[i] = dto.ToTicketResponse(&tickets[i])
	}
	return c.JSON(http.StatusOK, resp)
}
