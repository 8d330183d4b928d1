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

type BookingService interface {
	Request(ctx context.Context, caller *models.User, propertyID uint, startDate, endDate time.Time) (*models.Booking, error)
	Decide(ctx context.Context, caller *models.User, bookingID uint, approve bool) (*models.Booking, error)
	Cancel(ctx context.Context, caller *models.User, bookingID uint) (*models.Booking, error)
	Get(ctx context.Context, caller *models.User, bookingID uint) (*models.Booking, error)
	List(ctx context.Context, caller *models.User) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, propertyRepo repository.PropertyRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo, propertyRepo: propertyRepo}
}

// Request is the direct booking path: the tenant proposes dates without
// going through an application.
func (s *bookingService) Request(ctx context.Context, caller *models.User, propertyID uint, startDate, endDate time.Time) (*models.Booking, error) {
	if err := requireRole(caller, models.RoleTenant); err != nil {
		return nil, err
	}
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrInvalid)
	}
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: property %d", ErrNotFound, propertyID)
		}
		return nil, err
	}

	booking := &models.Booking{
		PropertyID: propertyID,
		TenantID:   caller.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     models.BookingPending,
	}
	if err := s.bookingRepo.Create(ctx, s.bookingRepo.GetDB(), booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Decide(ctx context.Context, caller *models.User, bookingID uint, approve bool) (*models.Booking, error) {
	if err := requireRole(caller, models.RoleLandlord); err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.FindByIDWithProperty(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, err
	}
	if booking.Property == nil || booking.Property.OwnerID != caller.ID {
		return nil, fmt.Errorf("%w: this booking targets another landlord's property", ErrForbidden)
	}

	target := models.BookingApproved
	if !approve {
		target = models.BookingRejected
	}
	ok, err := s.bookingRepo.UpdateStatusIf(ctx, s.bookingRepo.GetDB(), bookingID, models.BookingPending, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: booking is no longer pending", ErrInvalidTransition)
	}
	booking.Status = target
	return booking, nil
}

func (s *bookingService) Cancel(ctx context.Context, caller *models.User, bookingID uint) (*models.Booking, error) {
	if err := requireRole(caller, models.RoleTenant); err != nil {
		return nil, err
	}
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, err
	}
	if booking.TenantID != caller.ID {
		return nil, fmt.Errorf("%w: this booking belongs to another tenant", ErrForbidden)
	}

	ok, err := s.bookingRepo.UpdateStatusIf(ctx, s.bookingRepo.GetDB(), bookingID, models.BookingPending, models.BookingCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: only pending bookings can be cancelled", ErrInvalidTransition)
	}
	booking.Status = models.BookingCancelled
	return booking, nil
}

func (s *bookingService) Get(ctx context.Context, caller *models.User, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByIDWithProperty(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, err
	}
	// Out-of-scope records read as missing rather than forbidden.
	if booking.TenantID != caller.ID && (booking.Property == nil || booking.Property.OwnerID != caller.ID) {
		return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, caller *models.User) ([]models.Booking, error) {
	if caller.Role == models.RoleLandlord {
		return s.bookingRepo.FindByOwner(ctx, caller.ID)
	}
	return s.bookingRepo.FindByTenant(ctx, caller.ID)
}
