package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/renterra/rental-service/internal/models"
	"github.com/renterra/rental-service/internal/notifier"
	"github.com/renterra/rental-service/internal/repository"
	"gorm.io/gorm"
)

type PropertyInput struct {
	Title        string
	District     string
	Address      string
	Description  string
	Rent         float64
	Bedrooms     int
	Bathrooms    int
	SizeSqft     int
	PropertyType string
	Available    *bool
}

type PropertyService interface {
	Create(ctx context.Context, caller *models.User, input PropertyInput) (*models.Property, error)
	Update(ctx context.Context, caller *models.User, id uint, input PropertyInput) (*models.Property, error)
	Delete(ctx context.Context, caller *models.User, id uint) error
	Get(ctx context.Context, id uint) (*models.Property, error)
	List(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error)
	ListOwned(ctx context.Context, caller *models.User) ([]models.Property, error)
	// ContactLandlord relays a tenant inquiry to the property owner via
	// the mail capability.
	ContactLandlord(ctx context.Context, caller *models.User, propertyID uint, message string) error
}

type propertyService struct {
	propertyRepo    repository.PropertyRepository
	bookingRepo     repository.BookingRepository
	applicationRepo repository.ApplicationRepository
	paymentRepo     repository.PaymentRepository
	maintenanceRepo repository.MaintenanceRepository
	notifier        notifier.Notifier
}

func NewPropertyService(
	propertyRepo repository.PropertyRepository,
	bookingRepo repository.BookingRepository,
	applicationRepo repository.ApplicationRepository,
	paymentRepo repository.PaymentRepository,
	maintenanceRepo repository.MaintenanceRepository,
	n notifier.Notifier,
) PropertyService {
	return &propertyService{
		propertyRepo:    propertyRepo,
		bookingRepo:     bookingRepo,
		applicationRepo: applicationRepo,
		paymentRepo:     paymentRepo,
		maintenanceRepo: maintenanceRepo,
		notifier:        n,
	}
}

func (s *propertyService) Create(ctx context.Context, caller *models.User, input PropertyInput) (*models.Property, error) {
	if err := requireRole(caller, models.RoleLandlord); err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if input.Rent < 0 {
		return nil, fmt.Errorf("%w: rent must not be negative", ErrInvalid)
	}

	property := &models.Property{
		OwnerID:      caller.ID,
		Title:        input.Title,
		District:     input.District,
		Address:      input.Address,
		Description:  input.Description,
		Rent:         input.Rent,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		SizeSqft:     input.SizeSqft,
		PropertyType: input.PropertyType,
		Available:    true,
	}
	if input.Available != nil {
		property.Available = *input.Available
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) Update(ctx context.Context, caller *models.User, id uint, input PropertyInput) (*models.Property, error) {
	if err := requireRole(caller, models.RoleLandlord); err != nil {
		return nil, err
	}
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: property %d", ErrNotFound, id)
		}
		return nil, err
	}
	if property.OwnerID != caller.ID {
		return nil, fmt.Errorf("%w: you do not own this property", ErrForbidden)
	}
	if input.Rent < 0 {
		return nil, fmt.Errorf("%w: rent must not be negative", ErrInvalid)
	}

	if input.Title != "" {
		property.Title = input.Title
	}
	if input.District != "" {
		property.District = input.District
	}
	if input.Address != "" {
		property.Address = input.Address
	}
	if input.Description != "" {
		property.Description = input.Description
	}
	if input.Rent > 0 {
		property.Rent = input.Rent
	}
	if input.Bedrooms > 0 {
		property.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms > 0 {
		property.Bathrooms = input.Bathrooms
	}
	if input.SizeSqft > 0 {
		property.SizeSqft = input.SizeSqft
	}
	if input.PropertyType != "" {
		property.PropertyType = input.PropertyType
	}
	if input.Available != nil {
		property.Available = *input.Available
	}
	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete removes the property together with everything hanging off it:
// payments of its bookings, the bookings, applications and maintenance
// tickets. One transaction, so a failure midway leaves no half-deleted
// financial records behind.
func (s *propertyService) Delete(ctx context.Context, caller *models.User, id uint) error {
	if err := requireRole(caller, models.RoleLandlord); err != nil {
		return err
	}
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: property %d", ErrNotFound, id)
		}
		return err
	}
	if property.OwnerID != caller.ID {
		return fmt.Errorf("%w: you do not own this property", ErrForbidden)
	}

	return s.propertyRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookingIDs, err := s.bookingRepo.FindIDsByPropertyID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.paymentRepo.DeleteByBookingIDs(ctx, tx, bookingIDs); err != nil {
			return err
		}
		if err := s.bookingRepo.DeleteByPropertyID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.applicationRepo.DeleteByPropertyID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.maintenanceRepo.DeleteByPropertyID(ctx, tx, id); err != nil {
			return err
		}
		return s.propertyRepo.Delete(ctx, tx, id)
	})
}

func (s *propertyService) Get(ctx context.Context, id uint) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: property %d", ErrNotFound, id)
		}
		return nil, err
	}
	return property, nil
}

func (s *propertyService) List(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error) {
	return s.propertyRepo.List(ctx, filter)
}

func (s *propertyService) ListOwned(ctx context.Context, caller *models.User) ([]models.Property, error) {
	if err := requireRole(caller, models.RoleLandlord); err != nil {
		return nil, err
	}
	return s.propertyRepo.FindByOwner(ctx, caller.ID)
}

func (s *propertyService) ContactLandlord(ctx context.Context, caller *models.User, propertyID uint, message string) error {
	if err := requireRole(caller, models.RoleTenant); err != nil {
		return err
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: message cannot be empty", ErrInvalid)
	}
	property, err := s.propertyRepo.FindByIDWithOwner(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: property %d", ErrNotFound, propertyID)
		}
		return err
	}
	if property.Owner == nil {
		return fmt.Errorf("%w: owner for property %d", ErrNotFound, propertyID)
	}

	err = s.notifier.Send(ctx,
		property.Owner.Email,
		fmt.Sprintf("Inquiry about %s", property.Title),
		fmt.Sprintf("From: %s (%s)\n\n%s", caller.DisplayName, caller.Email, message),
	)
	if err != nil {
		// Surfaced to the user, never fatal.
		return fmt.Errorf("%w: failed to send message, please try again later", ErrInvalid)
	}
	return nil
}
