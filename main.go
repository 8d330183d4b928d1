package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/renterra/rental-service/config"
	"github.com/renterra/rental-service/internal/handler"
	"github.com/renterra/rental-service/internal/middleware"
	"github.com/renterra/rental-service/internal/notifier"
	"github.com/renterra/rental-service/internal/repository"
	"github.com/renterra/rental-service/internal/service"
	"github.com/renterra/rental-service/pkg/database"
	"github.com/renterra/rental-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ carries outbound notification mail; the service runs
	// degraded without a broker rather than refusing to start.
	var notify notifier.Notifier
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, notifications disabled: %v", err)
		notify = notifier.NewNoopNotifier()
	} else {
		defer publisher.Close()
		notify = notifier.NewAMQPNotifier(publisher)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo)
	propertySvc := service.NewPropertyService(propertyRepo, bookingRepo, applicationRepo, paymentRepo, maintenanceRepo, notify)
	applicationSvc := service.NewApplicationService(applicationRepo, bookingRepo, propertyRepo, notify)
	bookingSvc := service.NewBookingService(bookingRepo, propertyRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, bookingRepo)
	maintenanceSvc := service.NewMaintenanceService(maintenanceRepo, bookingRepo)
	dashboardSvc := service.NewDashboardService(propertyRepo, applicationRepo, bookingRepo, paymentRepo, maintenanceRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "rental-service"})
	})

	handlers := &handler.Handlers{
		User:        handler.NewUserHandler(userSvc),
		Property:    handler.NewPropertyHandler(propertySvc),
		Application: handler.NewApplicationHandler(applicationSvc),
		Booking:     handler.NewBookingHandler(bookingSvc),
		Payment:     handler.NewPaymentHandler(paymentSvc),
		Maintenance: handler.NewMaintenanceHandler(maintenanceSvc),
		Dashboard:   handler.NewDashboardHandler(dashboardSvc),
	}
	handlers.RegisterRoutes(e, middleware.Identity(userRepo))

	log.Printf("Rental Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
