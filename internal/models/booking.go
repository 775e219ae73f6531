package models

import "time"

// Booking is a client's service request directed at a photographer.
// Multiple bookings for the same (client, photographer) pair are allowed.
type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID string  `gorm:"type:uuid;not null" json:"client_id"`
	Client   Profile `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	PhotographerID string  `gorm:"type:uuid;not null" json:"photographer_id"`
	Photographer   Profile `gorm:"foreignKey:PhotographerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"photographer"`

	ServiceType   string    `gorm:"size:100;not null" json:"service_type"`
	PreferredDate time.Time `json:"preferred_date"`
	Message       string    `gorm:"type:text" json:"message"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
