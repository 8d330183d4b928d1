package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/renterra/rental-service/internal/dto"
	"github.com/renterra/rental-service/internal/middleware"
	"github.com/renterra/rental-service/internal/service"
)

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) Record(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}
	payment, err := h.svc.Record(c.Request().Context(), middleware.Principal(c), uint(bookingID))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.svc.List(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return err
	}
	resp := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		resp[i] = dto.ToPaymentResponse(&payments[i])
	}
	return c.JSON(http.StatusOK, resp)
}
