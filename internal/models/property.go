package models

import "time"

const (
	PropertyTypeApartment = "apartment"
	PropertyTypeStudio    = "studio"
	PropertyTypeVilla     = "villa"
	PropertyTypeHouse     = "house"
)

type Property struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OwnerID      uint      `gorm:"not null;index" json:"owner_id"`
	Title        string    `gorm:"not null" json:"title"`
	District     string    `gorm:"type:varchar(50)" json:"district"`
	Address      string    `json:"address"`
	Description  string    `json:"description,omitempty"`
	Rent         float64   `gorm:"not null" json:"rent"`
	Bedrooms     int       `gorm:"default:1" json:"bedrooms"`
	Bathrooms    int       `gorm:"default:1" json:"bathrooms"`
	SizeSqft     int       `json:"size_sqft"`
	PropertyType string    `gorm:"type:varchar(50)" json:"property_type"`
	Available    bool      `gorm:"default:true" json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}
