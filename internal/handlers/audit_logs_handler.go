package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snapmarket/snapmarket-api/internal/httperr"
	"github.com/snapmarket/snapmarket-api/internal/httpresp"
	"github.com/snapmarket/snapmarket-api/internal/middleware"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the caller's recent audit trail, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var logs []models.AuditLog
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_load_audit_logs", "Failed to load activity.")
		return
	}

	httpresp.List(c, logs)
}
