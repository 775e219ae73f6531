package discovery

import (
	"context"

	"github.com/snapmarket/snapmarket-api/internal/models"
)

type Repository interface {
	// ListAvailable returns every photographer profile flagged
	// available, with the owner profile loaded. Availability is the
	// only store-side filter; free-text search runs over the returned
	// set without another fetch.
	ListAvailable(
		ctx context.Context,
	) ([]models.PhotographerProfile, error)

	// GetByUser errors when the user has no photographer profile.
	GetByUser(
		ctx context.Context,
		userID string,
	) (*models.PhotographerProfile, error)
}
