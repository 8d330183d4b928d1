//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/renterra/rental-service/internal/models"
	"github.com/renterra/rental-service/internal/notifier"
	"github.com/renterra/rental-service/internal/repository"
	"github.com/renterra/rental-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type services struct {
	user        service.UserService
	property    service.PropertyService
	application service.ApplicationService
	booking     service.BookingService
	payment     service.PaymentService
	maintenance service.MaintenanceService
	dashboard   service.DashboardService
}

func newServices() *services {
	userRepo := repository.NewUserRepository(testDB)
	propertyRepo := repository.NewPropertyRepository(testDB)
	applicationRepo := repository.NewApplicationRepository(testDB)
	bookingRepo := repository.NewBookingRepository(testDB)
	paymentRepo := repository.NewPaymentRepository(testDB)
	maintenanceRepo := repository.NewMaintenanceRepository(testDB)
	n := notifier.NewNoopNotifier()

	return &services{
		user:        service.NewUserService(userRepo),
		property:    service.NewPropertyService(propertyRepo, bookingRepo, applicationRepo, paymentRepo, maintenanceRepo, n),
		application: service.NewApplicationService(applicationRepo, bookingRepo, propertyRepo, n),
		booking:     service.NewBookingService(bookingRepo, propertyRepo),
		payment:     service.NewPaymentService(paymentRepo, bookingRepo),
		maintenance: service.NewMaintenanceService(maintenanceRepo, bookingRepo),
		dashboard:   service.NewDashboardService(propertyRepo, applicationRepo, bookingRepo, paymentRepo, maintenanceRepo),
	}
}

func TestFullLifecycle(t *testing.T) {
	cleanTables()
	svc := newServices()
	ctx := context.Background()

	landlord, err := svc.user.Register(ctx, service.RegisterInput{Email: "owner@example.com", Role: models.RoleLandlord, DisplayName: "Owner"})
	require.NoError(t, err)
	tenant, err := svc.user.Register(ctx, service.RegisterInput{Email: "tenant@example.com", Role: models.RoleTenant, DisplayName: "Tenant"})
	require.NoError(t, err)

	property, err := svc.property.Create(ctx, landlord, service.PropertyInput{
		Title:        "Sea Breeze Apartment",
		District:     "kochi",
		Rent:         15000,
		Bedrooms:     3,
		PropertyType: models.PropertyTypeApartment,
	})
	require.NoError(t, err)

	application, err := svc.application.Submit(ctx, tenant, property.ID, "please")
	require.NoError(t, err)

	booking, err := svc.application.Approve(ctx, landlord, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingApproved, booking.Status)
	assert.Equal(t, 365*24*time.Hour, booking.EndDate.Sub(booking.StartDate))

	payment, err := svc.payment.Record(ctx, tenant, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, payment.Amount)

	ticket, err := svc.maintenance.File(ctx, tenant, service.TicketInput{Title: "Leaky tap", Category: models.TicketCategoryPlumbing})
	require.NoError(t, err)
	assert.Equal(t, property.ID, ticket.PropertyID)

	_, err = svc.maintenance.Advance(ctx, landlord, ticket.ID, models.TicketCompleted)
	require.NoError(t, err)

	view, err := svc.dashboard.Landlord(ctx, landlord)
	require.NoError(t, err)
	assert.EqualValues(t, 1, view.TotalProperties)
	assert.Equal(t, 100.0, view.OccupancyRate)
	assert.Equal(t, 15000.0, view.MonthlyIncome)

	tenantView, err := svc.dashboard.Tenant(ctx, tenant)
	require.NoError(t, err)
	require.NotNil(t, tenantView.ActiveBooking)
	assert.Equal(t, 15000.0, tenantView.MonthlyRent)
	assert.Equal(t, 15000.0, tenantView.TotalSpent)

	// Cascade: nothing survives the property.
	require.NoError(t, svc.property.Delete(ctx, landlord, property.ID))
	var count int64
	require.NoError(t, testDB.Model(&models.Payment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, testDB.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, testDB.Model(&models.MaintenanceTicket{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

// Concurrent approvals of the same application: exactly one booking.
func TestConcurrentApproval(t *testing.T) {
	cleanTables()
	svc := newServices()
	ctx := context.Background()

	landlord, err := svc.user.Register(ctx, service.RegisterInput{Email: "owner@example.com", Role: models.RoleLandlord})
	require.NoError(t, err)
	tenant, err := svc.user.Register(ctx, service.RegisterInput{Email: "tenant@example.com", Role: models.RoleTenant})
	require.NoError(t, err)
	property, err := svc.property.Create(ctx, landlord, service.PropertyInput{Title: "Flat", Rent: 9000})
	require.NoError(t, err)
	application, err := svc.application.Submit(ctx, tenant, property.ID, "")
	require.NoError(t, err)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.application.Approve(ctx, landlord, application.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, service.ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, testDB.Model(&models.Booking{}).Where("application_id = ?", application.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
