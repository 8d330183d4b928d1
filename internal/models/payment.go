package models

import "time"

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentReceived PaymentStatus = "received"
	PaymentFailed   PaymentStatus = "failed"
)

// Payment records rent against an approved booking. Immutable once written;
// there is no edit path.
type Payment struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	BookingID uint          `gorm:"not null;index" json:"booking_id"`
	Amount    float64       `gorm:"not null" json:"amount"`
	Status    PaymentStatus `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	Month     *time.Time    `json:"month,omitempty"`
	DueDate   *time.Time    `json:"due_date,omitempty"`
	CreatedAt time.Time     `json:"date"`

	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}
