package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/renterra/rental-service/internal/models"
	"github.com/renterra/rental-service/internal/notifier"
	"github.com/renterra/rental-service/internal/repository"
	"gorm.io/gorm"
)

// leaseDuration is the lease spawned from an approved application.
const leaseDuration = 365 * 24 * time.Hour

type ApplicationService interface {
	Submit(ctx context.Context, caller *models.User, propertyID uint, message string) (*models.Application, error)
	// Approve flips the application to approved and creates the linked
	// 1-year booking in the same transaction.
	Approve(ctx context.Context, caller *models.User, applicationID uint) (*models.Booking, error)
	Reject(ctx context.Context, caller *models.User, applicationID uint) (*models.Application, error)
	Cancel(ctx context.Context, caller *models.User, applicationID uint) (*models.Application, error)
	List(ctx context.Context, caller *models.User) ([]models.Application, error)
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	bookingRepo     repository.BookingRepository
	propertyRepo    repository.PropertyRepository
	notifier        notifier.Notifier
}

func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
	n notifier.Notifier,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		bookingRepo:     bookingRepo,
		propertyRepo:    propertyRepo,
		notifier:        n,
	}
}

func (s *applicationService) Submit(ctx context.Context, caller *models.User, propertyID uint, message string) (*models.Application, error) {
	if err := requireRole(caller, models.RoleTenant); err != nil {
		return nil, err
	}
	property, err := s.propertyRepo.FindByIDWithOwner(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: property %d", ErrNotFound, propertyID)
		}
		return nil, err
	}
	if !property.Available {
		return nil, fmt.Errorf("%w: property is not open for applications", ErrForbidden)
	}

	application := &models.Application{
		TenantID:   caller.ID,
		PropertyID: propertyID,
		Message:    message,
		Status:     models.ApplicationPending,
	}
	if err := s.applicationRepo.Create(ctx, s.applicationRepo.GetDB(), application); err != nil {
		return nil, err
	}

	if property.Owner != nil {
		s.notify(ctx, property.Owner.Email,
			fmt.Sprintf("New application for %s", property.Title),
			fmt.Sprintf("%s (%s) applied for your property %q.", caller.DisplayName, caller.Email, property.Title))
	}
	return application, nil
}

func (s *applicationService) Approve(ctx context.Context, caller *models.User, applicationID uint) (*models.Booking, error) {
	if err := requireRole(caller, models.RoleLandlord); err != nil {
		return nil, err
	}
	application, err := s.findOwned(ctx, caller, applicationID)
	if err != nil {
		return nil, err
	}

	var booking *models.Booking
	err = s.applicationRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The guarded update serializes concurrent deciders: whoever
		// flips pending first wins, everyone else sees no rows updated.
		ok, err := s.applicationRepo.UpdateStatusIf(ctx, tx, applicationID, models.ApplicationPending, models.ApplicationApproved)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: application is no longer pending", ErrInvalidTransition)
		}

		today := time.Now().Truncate(24 * time.Hour)
		booking = &models.Booking{
			PropertyID:    application.PropertyID,
			TenantID:      application.TenantID,
			ApplicationID: &application.ID,
			StartDate:     today,
			EndDate:       today.Add(leaseDuration),
			Status:        models.BookingApproved,
		}
		return s.bookingRepo.Create(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.notifyTenant(ctx, application, "approved")
	return booking, nil
}

func (s *applicationService) Reject(ctx context.Context, caller *models.User, applicationID uint) (*models.Application, error) {
	if err := requireRole(caller, models.RoleLandlord); err != nil {
		return nil, err
	}
	application, err := s.findOwned(ctx, caller, applicationID)
	if err != nil {
		return nil, err
	}

	ok, err := s.applicationRepo.UpdateStatusIf(ctx, s.applicationRepo.GetDB(), applicationID, models.ApplicationPending, models.ApplicationRejected)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: application is no longer pending", ErrInvalidTransition)
	}
	application.Status = models.ApplicationRejected

	s.notifyTenant(ctx, application, "rejected")
	return application, nil
}

func (s *applicationService) Cancel(ctx context.Context, caller *models.User, applicationID uint) (*models.Application, error) {
	if err := requireRole(caller, models.RoleTenant); err != nil {
		return nil, err
	}
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application %d", ErrNotFound, applicationID)
		}
		return nil, err
	}
	if application.TenantID != caller.ID {
		return nil, fmt.Errorf("%w: this application belongs to another tenant", ErrForbidden)
	}

	ok, err := s.applicationRepo.UpdateStatusIf(ctx, s.applicationRepo.GetDB(), applicationID, models.ApplicationPending, models.ApplicationCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: only pending applications can be cancelled", ErrInvalidTransition)
	}
	application.Status = models.ApplicationCancelled
	return application, nil
}

func (s *applicationService) List(ctx context.Context, caller *models.User) ([]models.Application, error) {
	if caller.Role == models.RoleLandlord {
		return s.applicationRepo.FindByOwner(ctx, caller.ID)
	}
	return s.applicationRepo.FindByTenant(ctx, caller.ID)
}

// findOwned loads an application and verifies the caller owns the property
// it targets.
func (s *applicationService) findOwned(ctx context.Context, caller *models.User, applicationID uint) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application %d", ErrNotFound, applicationID)
		}
		return nil, err
	}
	if application.Property == nil || application.Property.OwnerID != caller.ID {
		return nil, fmt.Errorf("%w: this application targets another landlord's property", ErrForbidden)
	}
	return application, nil
}

func (s *applicationService) notifyTenant(ctx context.Context, application *models.Application, decision string) {
	tenant, err := s.tenantOf(ctx, application)
	if err != nil {
		log.Printf("[application] lookup tenant for notification: %v", err)
		return
	}
	title := ""
	if application.Property != nil {
		title = application.Property.Title
	}
	s.notify(ctx, tenant.Email,
		fmt.Sprintf("Your application was %s", decision),
		fmt.Sprintf("Your application for %q has been %s.", title, decision))
}

func (s *applicationService) tenantOf(ctx context.Context, application *models.Application) (*models.User, error) {
	if application.Tenant != nil {
		return application.Tenant, nil
	}
	var tenant models.User
	if err := s.applicationRepo.GetDB().WithContext(ctx).First(&tenant, application.TenantID).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// notify delivers best-effort: a broker outage must never fail the domain
// operation that triggered the mail.
func (s *applicationService) notify(ctx context.Context, to, subject, body string) {
	if err := s.notifier.Send(ctx, to, subject, body); err != nil {
		log.Printf("[application] notification to %s failed: %v", to, err)
	}
}
