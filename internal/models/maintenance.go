package models

import "time"

type TicketStatus string

const (
	TicketPending    TicketStatus = "pending"
	TicketInProgress TicketStatus = "in_progress"
	TicketCompleted  TicketStatus = "completed"
)

const (
	TicketCategoryElectrical = "electrical"
	TicketCategoryPlumbing   = "plumbing"
	TicketCategoryOther      = "other"
)

// MaintenanceTicket is filed by a tenant with an active lease on the
// property and advanced by the owning landlord.
type MaintenanceTicket struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	PropertyID  uint         `gorm:"not null;index" json:"property_id"`
	TenantID    uint         `gorm:"not null;index" json:"tenant_id"`
	Title       string       `gorm:"not null" json:"title"`
	Issue       string       `json:"issue"`
	Category    string       `gorm:"type:varchar(50);default:'other'" json:"category"`
	Status      TicketStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`

	Tenant   *User     `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}
