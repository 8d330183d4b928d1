package models

import "time"

type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)

func (r Role) Valid() bool {
	return r == RoleTenant || r == RoleLandlord
}

// User is the acting principal. Role is fixed at registration; nothing in
// the service mutates it afterwards.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Role        Role      `gorm:"type:varchar(10);not null" json:"role"`
	DisplayName string    `json:"display_name"`
	Phone       string    `json:"phone,omitempty"`
	District    string    `json:"district,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
