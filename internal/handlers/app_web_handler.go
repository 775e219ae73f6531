package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domainBooking "github.com/snapmarket/snapmarket-api/internal/domain/booking"
	domainDiscovery "github.com/snapmarket/snapmarket-api/internal/domain/discovery"
	domainPhotographer "github.com/snapmarket/snapmarket-api/internal/domain/photographer"
	"github.com/snapmarket/snapmarket-api/internal/middleware"
	"github.com/snapmarket/snapmarket-api/internal/models"
	ucBooking "github.com/snapmarket/snapmarket-api/internal/usecase/booking"
	ucDiscovery "github.com/snapmarket/snapmarket-api/internal/usecase/discovery"
	ucPhotographer "github.com/snapmarket/snapmarket-api/internal/usecase/photographer"
)

// AppWebHandler serves the authenticated pages: discover, photographer
// detail with the booking form, and the dashboard. Every mutation is
// POST + redirect so the following page load re-reads committed state.
type AppWebHandler struct {
	db   *gorm.DB
	auth *AuthHandler

	photographers domainPhotographer.Repository
	discovery     domainDiscovery.Repository

	discoverUC *ucDiscovery.ListPhotographers
	createUC   *ucBooking.CreateBooking
	listUC     *ucBooking.ListBookingsForUser
	decideUC   *ucBooking.DecideBooking
	upsertUC   *ucPhotographer.UpsertProfile
}

func NewAppWebHandler(
	db *gorm.DB,
	auth *AuthHandler,
	photographers domainPhotographer.Repository,
	discovery domainDiscovery.Repository,
	discoverUC *ucDiscovery.ListPhotographers,
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookingsForUser,
	decideUC *ucBooking.DecideBooking,
	upsertUC *ucPhotographer.UpsertProfile,
) *AppWebHandler {
	return &AppWebHandler{
		db:            db,
		auth:          auth,
		photographers: photographers,
		discovery:     discovery,
		discoverUC:    discoverUC,
		createUC:      createUC,
		listUC:        listUC,
		decideUC:      decideUC,
		upsertUC:      upsertUC,
	}
}

// ======================================================
// DISCOVER
// ======================================================

func (h *AppWebHandler) Discover(c *gin.Context) {
	query := c.Query("query")

	cards, err := h.discoverUC.Execute(c.Request.Context(), query)
	if err != nil {
		c.HTML(http.StatusOK, "discover.html", gin.H{
			"Error": "Failed to load photographers. Please try again.",
			"Query": query,
		})
		return
	}

	c.HTML(http.StatusOK, "discover.html", gin.H{
		"Photographers": cards,
		"Query":         query,
	})
}

// ======================================================
// PHOTOGRAPHER DETAIL + BOOKING FORM
// ======================================================

func (h *AppWebHandler) PhotographerDetail(c *gin.Context) {
	userID := c.Param("id")

	profile, err := h.discovery.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.String(http.StatusNotFound, "Photographer not found.")
		return
	}

	c.HTML(http.StatusOK, "photographer.html", gin.H{
		"Photographer": ucDiscovery.CardFromProfile(*profile),
		"Booked":       c.Query("booked") == "1",
		"Error":        c.Query("error"),
		"MinDate":      time.Now().Format(dateLayout),
	})
}

func (h *AppWebHandler) BookPhotographer(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)
	photographerID := c.Param("id")
	detailPath := "/web/photographers/" + photographerID

	serviceType := c.PostForm("service_type")
	if serviceType == "" {
		c.Redirect(http.StatusFound, detailPath+"?error=missing_service_type")
		return
	}

	date, err := parsePreferredDate(c.PostForm("preferred_date"), time.Now())
	if err != nil {
		c.Redirect(http.StatusFound, detailPath+"?error=invalid_date")
		return
	}

	_, err = h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientID:       clientID,
		PhotographerID: photographerID,
		ServiceType:    serviceType,
		PreferredDate:  date,
		Message:        c.PostForm("message"),
	})
	if err != nil {
		c.Redirect(http.StatusFound, detailPath+"?error=booking_failed")
		return
	}

	c.Redirect(http.StatusFound, detailPath+"?booked=1")
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var profile models.Profile
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", userID).
		First(&profile).Error; err != nil {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"Error": "Failed to load profile.",
		})
		return
	}

	data := gin.H{
		"Profile":        profile,
		"IsPhotographer": profile.Role == models.RolePhotographer,
		"Saved":          c.Query("saved") == "1",
		"Error":          c.Query("error"),
	}

	if profile.Role == models.RolePhotographer {
		// Absence is fine: the setup form just starts empty.
		if pp, err := h.photographers.GetByUser(c.Request.Context(), userID); err == nil && pp != nil {
			data["PhotographerProfile"] = pp
		}
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		data["Error"] = "Failed to load bookings."
	} else {
		data["Bookings"] = bookings
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}

func (h *AppWebHandler) SaveProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	role := c.MustGet(middleware.ContextUserRole).(string)
	if role != models.RolePhotographer {
		c.Redirect(http.StatusFound, "/web/dashboard?error=forbidden")
		return
	}

	in, err := profileInputFromRequest(UpsertPhotographerProfileRequest{
		Bio:             c.PostForm("bio"),
		Location:        c.PostForm("location"),
		City:            c.PostForm("city"),
		Specialty:       c.PostForm("specialty"),
		HourlyRate:      c.PostForm("hourly_rate"),
		YearsExperience: c.PostForm("years_experience"),
	})
	if err != nil {
		c.Redirect(http.StatusFound, "/web/dashboard?error=invalid_number")
		return
	}

	// Unchecked checkboxes are omitted from the form body entirely.
	available := c.PostForm("available") == "on"
	in.Available = &available

	if _, err := h.upsertUC.Execute(c.Request.Context(), userID, in); err != nil {
		c.Redirect(http.StatusFound, "/web/dashboard?error=save_failed")
		return
	}

	c.Redirect(http.StatusFound, "/web/dashboard?saved=1")
}

func (h *AppWebHandler) AcceptBooking(c *gin.Context) {
	h.decideBooking(c, domainBooking.StatusAccepted)
}

func (h *AppWebHandler) DeclineBooking(c *gin.Context) {
	h.decideBooking(c, domainBooking.StatusDeclined)
}

func (h *AppWebHandler) decideBooking(c *gin.Context, next domainBooking.Status) {
	photographerID := c.MustGet(middleware.ContextUserID).(string)
	bookingID := c.Param("id")

	if _, err := h.decideUC.Execute(c.Request.Context(), photographerID, bookingID, next); err != nil {
		c.Redirect(http.StatusFound, "/web/dashboard?error=update_failed")
		return
	}

	c.Redirect(http.StatusFound, "/web/dashboard")
}

// ======================================================
// SIGN OUT
// ======================================================

func (h *AppWebHandler) SignOut(c *gin.Context) {
	if claims, ok := currentWebSession(c, h.auth); ok {
		_ = h.auth.sessions.Revoke(c.Request.Context(), claims.TokenID, time.Until(claims.Expiry))
	}

	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
