package dto

// PhotographerCardDTO is one discover-listing entry: the photographer
// profile with the owner's display name and avatar joined in.
type PhotographerCardDTO struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	FullName        string `json:"full_name"`
	AvatarURL       string `json:"avatar_url"`
	Bio             string `json:"bio"`
	Location        string `json:"location"`
	City            string `json:"city"`
	Specialty       string `json:"specialty"`
	HourlyRate      *int   `json:"hourly_rate"`
	YearsExperience *int   `json:"years_experience"`
}
