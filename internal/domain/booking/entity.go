package booking

import (
	"github.com/snapmarket/snapmarket-api/internal/httperr"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Decide transitions a pending booking to accepted or declined.
func Decide(b *models.Booking, next Status) error {
	if !IsDecision(next) {
		return httperr.ErrBusiness("invalid_status")
	}

	if err := CanDecide(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(next)
	return nil
}
