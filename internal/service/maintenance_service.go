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

type TicketInput struct {
	Title    string
	Issue    string
	Category string
}

type MaintenanceService interface {
	// File creates a ticket against the property of the caller's current
	// approved booking (newest one when several exist).
	File(ctx context.Context, caller *models.User, input TicketInput) (*models.MaintenanceTicket, error)
	Advance(ctx context.Context, caller *models.User, ticketID uint, status models.TicketStatus) (*models.MaintenanceTicket, error)
	List(ctx context.Context, caller *models.User) ([]models.MaintenanceTicket, error)
}

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	bookingRepo     repository.BookingRepository
}

func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, bookingRepo repository.BookingRepository) MaintenanceService {
	return &maintenanceService{maintenanceRepo: maintenanceRepo, bookingRepo: bookingRepo}
}

func (s *maintenanceService) File(ctx context.Context, caller *models.User, input TicketInput) (*models.MaintenanceTicket, error) {
	if err := requireRole(caller, models.RoleTenant); err != nil {
		return nil, err
	}
	if input.Title == "" && input.Issue == "" {
		return nil, fmt.Errorf("%w: describe the issue", ErrInvalid)
	}

	booking, err := s.bookingRepo.FindLatestApprovedByTenant(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no active lease", ErrInvalid)
		}
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = models.TicketCategoryOther
	}
	ticket := &models.MaintenanceTicket{
		PropertyID: booking.PropertyID,
		TenantID:   caller.ID,
		Title:      input.Title,
		Issue:      input.Issue,
		Category:   category,
		Status:     models.TicketPending,
	}
	if err := s.maintenanceRepo.Create(ctx, s.maintenanceRepo.GetDB(), ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *maintenanceService) Advance(ctx context.Context, caller *models.User, ticketID uint, status models.TicketStatus) (*models.MaintenanceTicket, error) {
	if err := requireRole(caller, models.RoleLandlord); err != nil {
		return nil, err
	}
	// pending is the creation default only, never a target.
	if status != models.TicketInProgress && status != models.TicketCompleted {
		return nil, fmt.Errorf("%w: status must be in_progress or completed", ErrInvalid)
	}
	ticket, err := s.maintenanceRepo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: ticket %d", ErrNotFound, ticketID)
		}
		return nil, err
	}
	if ticket.Property == nil || ticket.Property.OwnerID != caller.ID {
		return nil, fmt.Errorf("%w: this ticket is for another landlord's property", ErrForbidden)
	}

	var completedAt *time.Time
	if status == models.TicketCompleted {
		now := time.Now()
		completedAt = &now
	}
	ok, err := s.maintenanceRepo.AdvanceStatusIf(ctx, s.maintenanceRepo.GetDB(), ticketID, status, completedAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: ticket is already completed", ErrInvalidTransition)
	}
	ticket.Status = status
	ticket.CompletedAt = completedAt
	return ticket, nil
}

func (s *maintenanceService) List(ctx context.Context, caller *models.User) ([]models.MaintenanceTicket, error) {
	if caller.Role == models.RoleLandlord {
		return s.maintenanceRepo.FindByOwner(ctx, caller.ID)
	}
	return s.maintenanceRepo.FindByTenant(ctx, caller.ID)
}
