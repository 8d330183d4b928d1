package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a lease record. It is either requested directly by a tenant
// with explicit dates, or spawned as a 1-year lease when an Application is
// approved (ApplicationID links back in that case).
type Booking struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	PropertyID    uint          `gorm:"not null;index" json:"property_id"`
	TenantID      uint          `gorm:"not null;index" json:"tenant_id"`
	ApplicationID *uint         `json:"application_id,omitempty"`
	StartDate     time.Time     `gorm:"not null" json:"start_date"`
	EndDate       time.Time     `gorm:"not null" json:"end_date"`
	Status        BookingStatus `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Tenant   *User     `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}
