package booking

import "github.com/snapmarket/snapmarket-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// InitialStatus is the status every new booking starts in.
func InitialStatus() Status {
	return StatusPending
}

// IsDecision reports whether s is a status the photographer may move a
// pending booking to.
func IsDecision(s Status) bool {
	return s == StatusAccepted || s == StatusDeclined
}

// ===============================
// Validations
// ===============================

// CanDecide define whether a booking may still receive a decision.
// Accepted and declined are terminal.
func CanDecide(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
