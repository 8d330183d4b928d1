package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/renterra/rental-service/internal/dto"
	"github.com/renterra/rental-service/internal/middleware"
	"github.com/renterra/rental-service/internal/repository"
	"github.com/renterra/rental-service/internal/service"
)

type PropertyHandler struct {
	svc service.PropertyService
}

func NewPropertyHandler(svc service.PropertyService) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

func (h *PropertyHandler) Create(c echo.Context) error {
	var req dto.PropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	property, err := h.svc.Create(c.Request().Context(), middleware.Principal(c), propertyInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, property)
}

func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}
	var req dto.PropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	property, err := h.svc.Update(c.Request().Context(), middleware.Principal(c), uint(id), propertyInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}
	if err := h.svc.Delete(c.Request().Context(), middleware.Principal(c), uint(id)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}
	property, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// List is the public browse path. Malformed numeric filters are dropped
// rather than rejected.
func (h *PropertyHandler) List(c echo.Context) error {
	filter := repository.PropertyFilter{
		District:     c.QueryParam("district"),
		PropertyType: c.QueryParam("property_type"),
		Query:        c.QueryParam("q"),
	}
	if filter.District == "all" {
		filter.District = ""
	}
	if raw := c.QueryParam("max_rent"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxRent = &v
		}
	}
	if raw := c.QueryParam("bedrooms"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.Bedrooms = &v
		}
	}

	properties, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// ListOwned is the landlord's view of their own portfolio.
func (h *PropertyHandler) ListOwned(c echo.Context) error {
	properties, err := h.svc.ListOwned(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) ContactLandlord(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}
	var req dto.ContactLandlordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.ContactLandlord(c.Request().Context(), middleware.Principal(c), uint(id), req.Message); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "sent"})
}

func propertyInput(req dto.PropertyRequest) service.PropertyInput {
	return service.PropertyInput{
		Title:        req.Title,
		District:     req.District,
		Address:      req.Address,
		Description:  req.Description,
		Rent:         req.Rent,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SizeSqft:     req.SizeSqft,
		PropertyType: req.PropertyType,
		Available:    req.Available,
	}
}
