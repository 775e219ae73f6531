package photographer

import (
	"context"

	"github.com/google/uuid"

	"github.com/snapmarket/snapmarket-api/internal/audit"
	domain "github.com/snapmarket/snapmarket-api/internal/domain/photographer"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpsertProfileInput struct {
	Bio       string
	Location  string
	City      string
	Specialty string

	// nil means "absent", not zero.
	HourlyRate      *int
	YearsExperience *int

	// nil keeps the current availability (true for a new profile).
	Available *bool
}

// ======================================================
// USE CASE
// ======================================================

type UpsertProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpsertProfile(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpsertProfile {
	return &UpsertProfile{
		repo:  repo,
		audit: audit,
	}
}

// Execute inserts the user's photographer profile on first submission
// and updates it in place afterwards. The returned profile is re-read
// from the store so callers always see committed state.
func (uc *UpsertProfile) Execute(
	ctx context.Context,
	userID string,
	in UpsertProfileInput,
) (*models.PhotographerProfile, error) {

	existing, err := uc.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		p := &models.PhotographerProfile{
			ID:              uuid.NewString(),
			UserID:          userID,
			Bio:             in.Bio,
			Location:        in.Location,
			City:            in.City,
			Specialty:       in.Specialty,
			HourlyRate:      in.HourlyRate,
			YearsExperience: in.YearsExperience,
			Available:       true,
		}
		if in.Available != nil {
			p.Available = *in.Available
		}

		if err := uc.repo.Create(ctx, p); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   "photographer_profile_created",
			Entity:   "photographer_profile",
			EntityID: &p.ID,
		})

		return uc.repo.GetByUser(ctx, userID)
	}

	existing.Bio = in.Bio
	existing.Location = in.Location
	existing.City = in.City
	existing.Specialty = in.Specialty
	existing.HourlyRate = in.HourlyRate
	existing.YearsExperience = in.YearsExperience
	if in.Available != nil {
		existing.Available = *in.Available
	}

	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "photographer_profile_updated",
		Entity:   "photographer_profile",
		EntityID: &existing.ID,
	})

	return uc.repo.GetByUser(ctx, userID)
}
