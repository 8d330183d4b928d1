package handler

import (
	"github.com/labstack/echo/v4"
)

type Handlers struct {
	User        *UserHandler
	Property    *PropertyHandler
	Application *ApplicationHandler
	Booking     *BookingHandler
	Payment     *PaymentHandler
	Maintenance *MaintenanceHandler
	Dashboard   *DashboardHandler
}

// RegisterRoutes wires the API. identity resolves the acting user; the
// browse endpoints and user registration stay public.
func (h *Handlers) RegisterRoutes(e *echo.Echo, identity echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	api.POST("/users", h.User.Register)
	api.GET("/users/:id", h.User.Get)
	api.GET("/properties", h.Property.List)
	api.GET("/properties/:id", h.Property.Get)

	auth := api.Group("", identity)

	auth.GET("/my/properties", h.Property.ListOwned)
	auth.POST("/properties", h.Property.Create)
	auth.PUT("/properties/:id", h.Property.Update)
	auth.DELETE("/properties/:id", h.Property.Delete)
	auth.POST("/properties/:id/contact", h.Property.ContactLandlord)

	auth.POST("/properties/:id/applications", h.Application.Submit)
	auth.GET("/applications", h.Application.List)
	auth.POST("/applications/:id/approve", h.Application.Approve)
	auth.POST("/applications/:id/reject", h.Application.Reject)
	auth.POST("/applications/:id/cancel", h.Application.Cancel)

	auth.POST("/properties/:id/bookings", h.Booking.Request)
	auth.GET("/bookings", h.Booking.List)
	auth.GET("/bookings/:id", h.Booking.Get)
	auth.POST("/bookings/:id/decision", h.Booking.Decide)
	auth.DELETE("/bookings/:id", h.Booking.Cancel)

	auth.POST("/bookings/:id/payments", h.Payment.Record)
	auth.GET("/payments", h.Payment.List)

	auth.POST("/maintenance", h.Maintenance.File)
	auth.GET("/maintenance", h.Maintenance.List)
	auth.POST("/maintenance/:id/status", h.Maintenance.Advance)

	auth.GET("/dashboard", h.Dashboard.Get)
}
