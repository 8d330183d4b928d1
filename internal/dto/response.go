package dto

import (
	"time"

	"github.com/renterra/rental-service/internal/models"
)

type UserResponse struct {
	ID          uint        `json:"id"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	DisplayName string      `json:"display_name"`
	CreatedAt   time.Time   `json:"created_at"`
}

type ApplicationResponse struct {
	ID         uint                     `json:"id"`
	TenantID   uint                     `json:"tenant_id"`
	PropertyID uint                     `json:"property_id"`
	Message    string                   `json:"message,omitempty"`
	Status     models.ApplicationStatus `json:"status"`
	AppliedAt  time.Time                `json:"applied_at"`
}

type BookingResponse struct {
	ID            uint                 `json:"id"`
	PropertyID    uint                 `json:"property_id"`
	TenantID      uint                 `json:"tenant_id"`
	ApplicationID *uint                `json:"application_id,omitempty"`
	StartDate     time.Time            `json:"start_date"`
	EndDate       time.Time            `json:"end_date"`
	Status        models.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

type PaymentResponse struct {
	ID        uint                 `json:"id"`
	BookingID uint                 `json:"booking_id"`
	Amount    float64              `json:"amount"`
	Status    models.PaymentStatus `json:"status"`
	Month     *time.Time           `json:"month,omitempty"`
	DueDate   *time.Time           `json:"due_date,omitempty"`
	Date      time.Time            `json:"date"`
}

type TicketResponse struct {
	ID          uint                `json:"id"`
	PropertyID  uint                `json:"property_id"`
	TenantID    uint                `json:"tenant_id"`
	Title       string              `json:"title"`
	Issue       string              `json:"issue,omitempty"`
	Category    string              `json:"category"`
	Status      models.TicketStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func ToApplicationResponse(a *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:         a.ID,
		TenantID:   a.TenantID,
		PropertyID: a.PropertyID,
		Message:    a.Message,
		Status:     a.Status,
		AppliedAt:  a.CreatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		PropertyID:    b.PropertyID,
		TenantID:      b.TenantID,
		ApplicationID: b.ApplicationID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

func ToPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		BookingID: p.BookingID,
		Amount:    p.Amount,
		Status:    p.Status,
		Month:     p.Month,
		DueDate:   p.DueDate,
		Date:      p.CreatedAt,
	}
}

func ToTicketResponse(t *models.MaintenanceTicket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		PropertyID:  t.PropertyID,
		TenantID:    t.TenantID,
		Title:       t.Title,
		Issue:       t.Issue,
		Category:    t.Category,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}
