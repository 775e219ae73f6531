package booking

import (
	"context"
	"sort"

	domain "github.com/snapmarket/snapmarket-api/internal/domain/booking"
	"github.com/snapmarket/snapmarket-api/internal/dto"
)

type ListBookingsForUser struct {
	repo domain.Repository
}

func NewListBookingsForUser(
	repo domain.Repository,
) *ListBookingsForUser {
	return &ListBookingsForUser{
		repo: repo,
	}
}

// Execute returns every booking where the user is a party, newest
// created first. Ordering is a contract of this operation, not of the
// store, so it is asserted here even though the repository query
// already orders.
func (uc *ListBookingsForUser) Execute(
	ctx context.Context,
	userID string,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:               b.ID,
			ServiceType:      b.ServiceType,
			PreferredDate:    b.PreferredDate,
			Message:          b.Message,
			Status:           b.Status,
			ClientID:         b.ClientID,
			ClientName:       b.Client.FullName,
			PhotographerID:   b.PhotographerID,
			PhotographerName: b.Photographer.FullName,
			CreatedAt:        b.CreatedAt,
		})
	}

	return out, nil
}
