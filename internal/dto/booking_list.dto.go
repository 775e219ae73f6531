package dto

import "time"

type BookingListDTO struct {
	ID               string    `json:"id"`
	ServiceType      string    `json:"service_type"`
	PreferredDate    time.Time `json:"preferred_date"`
	Message          string    `json:"message"`
	Status           string    `json:"status"`
	ClientID         string    `json:"client_id"`
	ClientName       string    `json:"client_name"`
	PhotographerID   string    `json:"photographer_id"`
	PhotographerName string    `json:"photographer_name"`
	CreatedAt        time.Time `json:"created_at"`
}
