package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/snapmarket/snapmarket-api/internal/domain/photographer"
	"github.com/snapmarket/snapmarket-api/internal/httperr"
	"github.com/snapmarket/snapmarket-api/internal/middleware"
	ucPhotographer "github.com/snapmarket/snapmarket-api/internal/usecase/photographer"
)

type PhotographerProfileHandler struct {
	repo   domain.Repository
	upsert *ucPhotographer.UpsertProfile
}

func NewPhotographerProfileHandler(
	repo domain.Repository,
	upsert *ucPhotographer.UpsertProfile,
) *PhotographerProfileHandler {
	return &PhotographerProfileHandler{
		repo:   repo,
		upsert: upsert,
	}
}

// --------- Requests ---------

// Numeric fields arrive as text the way the form sends them; empty
// means absent.
type UpsertPhotographerProfileRequest struct {
	Bio             string `json:"bio" binding:"required"`
	Location        string `json:"location" binding:"required"`
	City            string `json:"city" binding:"required"`
	Specialty       string `json:"specialty"`
	HourlyRate      string `json:"hourly_rate"`
	YearsExperience string `json:"years_experience"`
	Available       *bool  `json:"available,omitempty"`
}

// --------- Handlers ---------

// Get returns the caller's photographer profile, or null when it has
// not been set up yet. Absence is not an error.
func (h *PhotographerProfileHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	profile, err := h.repo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_profile", "Failed to load photographer profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photographer_profile": profile})
}

func (h *PhotographerProfileHandler) Upsert(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpsertPhotographerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	in, err := profileInputFromRequest(req)
	if err != nil {
		httperr.BadRequest(c, "invalid_number", "Hourly rate and years of experience must be non-negative numbers.")
		return
	}

	profile, err := h.upsert.Execute(c.Request.Context(), userID, in)
	if err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to update profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photographer_profile": profile})
}

func profileInputFromRequest(req UpsertPhotographerProfileRequest) (ucPhotographer.UpsertProfileInput, error) {
	rate, err := parseOptionalInt(req.HourlyRate)
	if err != nil {
		return ucPhotographer.UpsertProfileInput{}, err
	}

	years, err := parseOptionalInt(req.YearsExperience)
	if err != nil {
		return ucPhotographer.UpsertProfileInput{}, err
	}

	return ucPhotographer.UpsertProfileInput{
		Bio:             req.Bio,
		Location:        req.Location,
		City:            req.City,
		Specialty:       req.Specialty,
		HourlyRate:      rate,
		YearsExperience: years,
		Available:       req.Available,
	}, nil
}
