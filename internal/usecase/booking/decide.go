package booking

import (
	"context"

	"github.com/snapmarket/snapmarket-api/internal/audit"
	domain "github.com/snapmarket/snapmarket-api/internal/domain/booking"
	"github.com/snapmarket/snapmarket-api/internal/httperr"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

type DecideBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDecideBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DecideBooking {
	return &DecideBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute lets the booking's photographer accept or decline a pending
// request. The lookup is scoped to the photographer, so a booking owned
// by someone else surfaces as not found.
func (uc *DecideBooking) Execute(
	ctx context.Context,
	photographerID string,
	bookingID string,
	next domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForPhotographer(ctx, bookingID, photographerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Decide(b, next); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &photographerID,
		Action:   "booking_" + string(next),
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
