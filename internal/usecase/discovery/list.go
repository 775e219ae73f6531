package discovery

import (
	"context"

	domain "github.com/snapmarket/snapmarket-api/internal/domain/discovery"
	"github.com/snapmarket/snapmarket-api/internal/dto"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

type ListPhotographers struct {
	repo domain.Repository
}

func NewListPhotographers(
	repo domain.Repository,
) *ListPhotographers {
	return &ListPhotographers{
		repo: repo,
	}
}

// Execute returns the discover listing for a free-text query. The store
// fetch is already scoped to available photographers; availability is
// re-asserted here so an unavailable photographer never appears
// regardless of the query or of what the store returned.
func (uc *ListPhotographers) Execute(
	ctx context.Context,
	query string,
) ([]dto.PhotographerCardDTO, error) {

	profiles, err := uc.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.PhotographerCardDTO, 0, len(profiles))
	for _, p := range profiles {
		if !p.Available {
			continue
		}
		cards = append(cards, CardFromProfile(p))
	}

	return domain.Filter(cards, query), nil
}

// CardFromProfile joins the owner's display identity into one listing
// card.
func CardFromProfile(p models.PhotographerProfile) dto.PhotographerCardDTO {
	return dto.PhotographerCardDTO{
		ID:              p.ID,
		UserID:          p.UserID,
		FullName:        p.Profile.FullName,
		AvatarURL:       p.Profile.AvatarURL,
		Bio:             p.Bio,
		Location:        p.Location,
		City:            p.City,
		Specialty:       p.Specialty,
		HourlyRate:      p.HourlyRate,
		YearsExperience: p.YearsExperience,
	}
}
