package service

import (
	"context"
	"testing"
	"time"

	"github.com/renterra/rental-service/internal/models"
	"github.com/renterra/rental-service/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixture wires every service against a fresh in-memory database.
type fixture struct {
	db *gorm.DB

	users        repository.UserRepository
	properties   repository.PropertyRepository
	applications repository.ApplicationRepository
	bookings     repository.BookingRepository
	payments     repository.PaymentRepository
	maintenance  repository.MaintenanceRepository

	userSvc        UserService
	propertySvc    PropertyService
	applicationSvc ApplicationService
	bookingSvc     BookingService
	paymentSvc     PaymentService
	maintenanceSvc MaintenanceService
	dashboardSvc   DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Application{},
		&models.Booking{},
		&models.Payment{},
		&models.MaintenanceTicket{},
	))

	f := &fixture{
		db:           db,
		users:        repository.NewUserRepository(db),
		properties:   repository.NewPropertyRepository(db),
		applications: repository.NewApplicationRepository(db),
		bookings:     repository.NewBookingRepository(db),
		payments:     repository.NewPaymentRepository(db),
		maintenance:  repository.NewMaintenanceRepository(db),
	}
	f.userSvc = NewUserService(f.users)
	f.propertySvc = NewPropertyService(f.properties, f.bookings, f.applications, f.payments, f.maintenance, recordingNotifier{})
	f.applicationSvc = NewApplicationService(f.applications, f.bookings, f.properties, recordingNotifier{})
	f.bookingSvc = NewBookingService(f.bookings, f.properties)
	f.paymentSvc = NewPaymentService(f.payments, f.bookings)
	f.maintenanceSvc = NewMaintenanceService(f.maintenance, f.bookings)
	f.dashboardSvc = NewDashboardService(f.properties, f.applications, f.bookings, f.payments, f.maintenance)
	return f
}

type recordingNotifier struct{}

func (recordingNotifier) Send(ctx context.Context, to, subject, body string) error {
	return nil
}

func (f *fixture) newUser(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Email: email, Role: role, DisplayName: email}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) newProperty(t *testing.T, owner *models.User, title string, rent float64) *models.Property {
	t.Helper()
	property := &models.Property{
		OwnerID:      owner.ID,
		Title:        title,
		District:     "ernakulam",
		Rent:         rent,
		Bedrooms:     2,
		Bathrooms:    1,
		PropertyType: models.PropertyTypeApartment,
		Available:    true,
	}
	require.NoError(t, f.db.Create(property).Error)
	return property
}

func (f *fixture) newApprovedBooking(t *testing.T, tenant *models.User, property *models.Property) *models.Booking {
	t.Helper()
	return f.newBooking(t, tenant, property, models.BookingApproved)
}

func (f *fixture) newBooking(t *testing.T, tenant *models.User, property *models.Property, status models.BookingStatus) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		PropertyID: property.ID,
		TenantID:   tenant.ID,
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(1, 0, 0),
		Status:     status,
	}
	require.NoError(t, f.db.Create(booking).Error)
	return booking
}
