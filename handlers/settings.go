package handlers

import (
	"net/http"

	settingsRepo "pawspa/database/repository/settings"
	"pawspa/models"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler exposes the admin schedule configuration.
type SettingsHandler struct {
	Settings settingsRepo.SettingsRepository
	Logger   *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings settingsRepo.SettingsRepository, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{Settings: settings, Logger: logger}
}

// GetBusinessHoursHandler handles GET /api/admin/settings/business-hours.
func (h *SettingsHandler) GetBusinessHoursHandler(c *gin.Context) {
	schedule, err := h.Settings.GetBusinessHours(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetBusinessHours: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch business hours", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// SetBusinessHoursHandler handles PUT /api/admin/settings/business-hours.
func (h *SettingsHandler) SetBusinessHoursHandler(c *gin.Context) {
	var req models.BusinessHours
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Settings.SetBusinessHours(c.Request.Context(), req); err != nil {
		h.Logger.Error("SetBusinessHours: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save business hours", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": req.Weekly()})
}

// GetSlotDurationHandler handles GET /api/admin/settings/slot-duration.
func (h *SettingsHandler) GetSlotDurationHandler(c *gin.Context) {
	minutes, err := h.Settings.GetSlotDuration(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetSlotDuration: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch slot duration", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slotDuration": minutes})
}

// SetSlotDurationHandler handles PUT /api/admin/settings/slot-duration.
func (h *SettingsHandler) SetSlotDurationHandler(c *gin.Context) {
	var req struct {
		SlotDuration int `json:"slotDuration" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.SlotDuration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "slotDuration must be positive")
		return
	}

	if err := h.Settings.SetSlotDuration(c.Request.Context(), req.SlotDuration); err != nil {
		h.Logger.Error("SetSlotDuration: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save slot duration", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slotDuration": req.SlotDuration})
}
