package booking

import (
	"context"

	"github.com/snapmarket/snapmarket-api/internal/models"
)

type Repository interface {
	// -------- Profiles --------
	// GetProfileByID errors when no profile exists; booking parties
	// must resolve to real profiles.
	GetProfileByID(
		ctx context.Context,
		id string,
	) (*models.Profile, error)

	// GetPhotographerProfileByUser errors when the user has no
	// photographer profile; booking targets must resolve.
	GetPhotographerProfileByUser(
		ctx context.Context,
		userID string,
	) (*models.PhotographerProfile, error)

	// -------- Booking (create) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (list) --------
	// Returns every booking where the user is client or photographer,
	// with both party profiles loaded.
	ListBookingsForUser(
		ctx context.Context,
		userID string,
	) ([]models.Booking, error)

	// -------- Booking (decision) --------
	// Scoped to the owning photographer so status changes cannot cross
	// ownership boundaries.
	GetBookingForPhotographer(
		ctx context.Context,
		bookingID string,
		photographerID string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
