package models

import "time"

// PhotographerProfile extends a photographer's Profile with marketplace
// listing data. At most one row per user.
type PhotographerProfile struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID  string  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Profile Profile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile"`

	Bio       string `gorm:"type:text" json:"bio"`
	Location  string `gorm:"size:100" json:"location"`
	City      string `gorm:"size:100" json:"city"`
	Specialty string `gorm:"size:100" json:"specialty"`

	// Absent when the photographer has not filled them in.
	HourlyRate      *int `json:"hourly_rate"`
	YearsExperience *int `json:"years_experience"`

	Available bool `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
