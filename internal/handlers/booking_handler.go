package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/snapmarket/snapmarket-api/internal/domain/booking"
	"github.com/snapmarket/snapmarket-api/internal/httperr"
	"github.com/snapmarket/snapmarket-api/internal/httpresp"
	"github.com/snapmarket/snapmarket-api/internal/middleware"
	ucBooking "github.com/snapmarket/snapmarket-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookingsForUser
	decideUC *ucBooking.DecideBooking
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookingsForUser,
	decideUC *ucBooking.DecideBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
		decideUC: decideUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	PhotographerID string `json:"photographer_id" binding:"required,uuid"`
	ServiceType    string `json:"service_type" binding:"required"`
	PreferredDate  string `json:"preferred_date" binding:"required"`
	Message        string `json:"message"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	date, err := parsePreferredDate(req.PreferredDate, time.Now())
	if err != nil {
		if errors.Is(err, errDateInPast) {
			httperr.BadRequest(c, "date_in_past", "Preferred date must be today or later.")
			return
		}
		httperr.BadRequest(c, "invalid_date", "Preferred date is invalid.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientID:       clientID,
		PhotographerID: req.PhotographerID,
		ServiceType:    req.ServiceType,
		PreferredDate:  date,
		Message:        req.Message,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "photographer_not_found"):
			httperr.BadRequest(c, "photographer_not_found", "Failed to send booking request.")
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.BadRequest(c, "client_not_found", "Failed to send booking request.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Failed to send booking request.")
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	bookings, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_bookings", "Failed to load bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// ACCEPT / DECLINE
// ======================================================

func (h *BookingHandler) Accept(c *gin.Context) {
	h.decide(c, domain.StatusAccepted)
}

func (h *BookingHandler) Decline(c *gin.Context) {
	h.decide(c, domain.StatusDeclined)
}

func (h *BookingHandler) decide(c *gin.Context, next domain.Status) {
	photographerID := c.MustGet(middleware.ContextUserID).(string)
	bookingID := c.Param("id")

	b, err := h.decideUC.Execute(c.Request.Context(), photographerID, bookingID, next)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Booking has already been decided.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Failed to update booking status.")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}
