package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationApproved  ApplicationStatus = "approved"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationCancelled ApplicationStatus = "cancelled"
)

// Application is a tenant's request to lease a property, pending the
// landlord's decision. Approved, rejected and cancelled are terminal.
type Application struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	TenantID   uint              `gorm:"not null;index" json:"tenant_id"`
	PropertyID uint              `gorm:"not null;index" json:"property_id"`
	Message    string            `json:"message,omitempty"`
	Status     ApplicationStatus `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time         `json:"applied_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Tenant   *User     `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
}
