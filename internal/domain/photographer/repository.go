package photographer

import (
	"context"

	"github.com/snapmarket/snapmarket-api/internal/models"
)

type Repository interface {
	// GetByUser returns (nil, nil) when the user has no photographer
	// profile yet; absence is a valid state for a new photographer.
	GetByUser(
		ctx context.Context,
		userID string,
	) (*models.PhotographerProfile, error)

	Create(
		ctx context.Context,
		p *models.PhotographerProfile,
	) error

	Update(
		ctx context.Context,
		p *models.PhotographerProfile,
	) error
}
