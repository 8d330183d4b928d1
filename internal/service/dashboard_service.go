package service

import (
	"context"
	"errors"
	"math"

	"github.com/renterra/rental-service/internal/models"
	"github.com/renterra/rental-service/internal/repository"
	"gorm.io/gorm"
)

const recentLimit = 5

type LandlordDashboard struct {
	TotalProperties     int64                      `json:"total_properties"`
	OccupancyRate       float64                    `json:"occupancy_rate"`
	MonthlyIncome       float64                    `json:"monthly_income"`
	PendingApplications int64                      `json:"pending_applications"`
	RecentApplications  []models.Application       `json:"recent_applications"`
	RecentPayments      []models.Payment           `json:"recent_payments"`
	RecentMaintenance   []models.MaintenanceTicket `json:"recent_maintenance"`
}

type TenantDashboard struct {
	ActiveBooking       *models.Booking  `json:"active_booking,omitempty"`
	MonthlyRent         float64          `json:"monthly_rent"`
	TotalSpent          float64          `json:"total_spent"`
	PendingApplications int64            `json:"pending_applications"`
	MaintenanceTickets  int64            `json:"maintenance_tickets"`
	RecentPayments      []models.Payment `json:"recent_payments"`
}

// DashboardService is purely read-side. Each view runs inside a single
// transaction so the counts and sums come from one snapshot.
type DashboardService interface {
	Landlord(ctx context.Context, caller *models.User) (*LandlordDashboard, error)
	Tenant(ctx context.Context, caller *models.User) (*TenantDashboard, error)
}

type dashboardService struct {
	propertyRepo    repository.PropertyRepository
	applicationRepo repository.ApplicationRepository
	bookingRepo     repository.BookingRepository
	paymentRepo     repository.PaymentRepository
	maintenanceRepo repository.MaintenanceRepository
}

func NewDashboardService(
	propertyRepo repository.PropertyRepository,
	applicationRepo repository.ApplicationRepository,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	maintenanceRepo repository.MaintenanceRepository,
) DashboardService {
	return &dashboardService{
		propertyRepo:    propertyRepo,
		applicationRepo: applicationRepo,
		bookingRepo:     bookingRepo,
		paymentRepo:     paymentRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

func (s *dashboardService) Landlord(ctx context.Context, caller *models.User) (*LandlordDashboard, error) {
	if err := requireRole(caller, models.RoleLandlord); err != nil {
		return nil, err
	}

	var view LandlordDashboard
	err := s.propertyRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total, err := s.propertyRepo.CountByOwner(ctx, tx, caller.ID)
		if err != nil {
			return err
		}
		occupied, err := s.bookingRepo.CountApprovedByOwner(ctx, tx, caller.ID)
		if err != nil {
			return err
		}
		income, err := s.paymentRepo.SumReceivedByOwner(ctx, tx, caller.ID)
		if err != nil {
			return err
		}
		pending, err := s.applicationRepo.CountPendingByOwner(ctx, tx, caller.ID)
		if err != nil {
			return err
		}
		applications, err := s.applicationRepo.FindRecentByOwner(ctx, tx, caller.ID, recentLimit)
		if err != nil {
			return err
		}
		payments, err := s.paymentRepo.FindRecentByOwner(ctx, tx, caller.ID, recentLimit)
		if err != nil {
			return err
		}
		tickets, err := s.maintenanceRepo.FindRecentByOwner(ctx, tx, caller.ID, recentLimit)
		if err != nil {
			return err
		}

		view = LandlordDashboard{
			TotalProperties:     total,
			OccupancyRate:       occupancyRate(occupied, total),
			MonthlyIncome:       income,
			PendingApplications: pending,
			RecentApplications:  applications,
			RecentPayments:      payments,
			RecentMaintenance:   tickets,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *dashboardService) Tenant(ctx context.Context, caller *models.User) (*TenantDashboard, error) {
	if err := requireRole(caller, models.RoleTenant); err != nil {
		return nil, err
	}

	var view TenantDashboard
	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindCurrentByTenant(ctx, tx, caller.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		spent, err := s.paymentRepo.SumReceivedByTenant(ctx, tx, caller.ID)
		if err != nil {
			return err
		}
		pending, err := s.applicationRepo.CountPendingByTenant(ctx, tx, caller.ID)
		if err != nil {
			return err
		}
		tickets, err := s.maintenanceRepo.CountByTenant(ctx, tx, caller.ID)
		if err != nil {
			return err
		}
		payments, err := s.paymentRepo.FindRecentByTenant(ctx, tx, caller.ID, recentLimit)
		if err != nil {
			return err
		}

		view = TenantDashboard{
			ActiveBooking:       booking,
			TotalSpent:          spent,
			PendingApplications: pending,
			MaintenanceTickets:  tickets,
			RecentPayments:      payments,
		}
		if booking != nil && booking.Property != nil {
			view.MonthlyRent = booking.Property.Rent
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// occupancyRate is occupied/total as a percentage with one decimal, zero
// when the landlord owns nothing.
func occupancyRate(occupied, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(occupied)/float64(total)*1000) / 10
}
