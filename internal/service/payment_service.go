package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renterra/rental-service/internal/models"
	"github.com/renterra/rental-service/internal/repository"
	"gorm.io/gorm"
)

type PaymentService interface {
	// Record writes a rent payment against the caller's approved booking.
	// The amount is always the property's current rent; recording always
	// succeeds once authorization and booking state check out.
	Record(ctx context.Context, caller *models.User, bookingID uint) (*models.Payment, error)
	List(ctx context.Context, caller *models.User) ([]models.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, bookingRepo repository.BookingRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, bookingRepo: bookingRepo}
}

func (s *paymentService) Record(ctx context.Context, caller *models.User, bookingID uint) (*models.Payment, error) {
	if err := requireRole(caller, models.RoleTenant); err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.FindByIDWithProperty(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, err
	}
	if booking.TenantID != caller.ID {
		return nil, fmt.Errorf("%w: this booking belongs to another tenant", ErrForbidden)
	}
	if booking.Status != models.BookingApproved {
		return nil, fmt.Errorf("%w: payments require an approved booking", ErrInvalid)
	}
	if booking.Property == nil {
		return nil, fmt.Errorf("%w: property for booking %d", ErrNotFound, bookingID)
	}

	now := time.Now()
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	dueDate := now.AddDate(0, 0, 7)
	payment := &models.Payment{
		BookingID: booking.ID,
		Amount:    booking.Property.Rent,
		Status:    models.PaymentReceived,
		Month:     &month,
		DueDate:   &dueDate,
	}
	if err := s.paymentRepo.Create(ctx, s.paymentRepo.GetDB(), payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) List(ctx context.Context, caller *models.User) ([]models.Payment, error) {
	if caller.Role == models.RoleLandlord {
		return s.paymentRepo.FindByOwner(ctx, caller.ID)
	}
	return s.paymentRepo.FindByTenant(ctx, caller.ID)
}
