package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/snapmarket/snapmarket-api/internal/domain/discovery"
	"github.com/snapmarket/snapmarket-api/internal/httperr"
	"github.com/snapmarket/snapmarket-api/internal/httpresp"
	ucDiscovery "github.com/snapmarket/snapmarket-api/internal/usecase/discovery"
)

type DiscoverHandler struct {
	listUC *ucDiscovery.ListPhotographers
	repo   domain.Repository
}

func NewDiscoverHandler(
	listUC *ucDiscovery.ListPhotographers,
	repo domain.Repository,
) *DiscoverHandler {
	return &DiscoverHandler{
		listUC: listUC,
		repo:   repo,
	}
}

// --------- Handlers ---------

// List fetches available photographers once and applies the free-text
// query in memory; availability is the only store-side filter.
func (h *DiscoverHandler) List(c *gin.Context) {
	cards, err := h.listUC.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		httperr.Internal(c, "failed_to_load_photographers", "Failed to load photographers. Please try again.")
		return
	}

	httpresp.List(c, cards)
}

// Detail returns a single photographer's public listing by user id.
func (h *DiscoverHandler) Detail(c *gin.Context) {
	userID := c.Param("id")

	profile, err := h.repo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "photographer_not_found", "Photographer not found.")
		return
	}

	c.JSON(http.StatusOK, ucDiscovery.CardFromProfile(*profile))
}
