package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/snapmarket/snapmarket-api/internal/audit"
	domain "github.com/snapmarket/snapmarket-api/internal/domain/booking"
	"github.com/snapmarket/snapmarket-api/internal/httperr"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID       string
	PhotographerID string

	ServiceType   string
	PreferredDate time.Time
	Message       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute creates a booking request. The preferred date is validated at
// the HTTP edge; here both party references must resolve: the client to
// a profile, the photographer to a photographer profile. New bookings
// always start pending.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if _, err := uc.repo.GetProfileByID(ctx, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	if _, err := uc.repo.GetPhotographerProfileByUser(ctx, in.PhotographerID); err != nil {
		return nil, httperr.ErrBusiness("photographer_not_found")
	}

	b := &models.Booking{
		ID:             uuid.NewString(),
		ClientID:       in.ClientID,
		PhotographerID: in.PhotographerID,
		ServiceType:    in.ServiceType,
		PreferredDate:  in.PreferredDate,
		Message:        in.Message,
		Status:         string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
