package handlers

import (
	"net/http"

	"pawspa/models"
	"pawspa/services/calendar"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler exposes the admin calendar: derived day/week views,
// blocking/unblocking slots, and appointment status transitions.
type CalendarHandler struct {
	CalendarSvc calendar.CalendarService
	Logger      *zap.Logger
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(svc calendar.CalendarService, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{CalendarSvc: svc, Logger: logger}
}

// DayViewHandler handles GET /api/admin/calendar/day/:date.
func (h *CalendarHandler) DayViewHandler(c *gin.Context) {
	view, err := h.CalendarSvc.DayView(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.Logger.Error("DayView: failed to compute slots", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute day view", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// WeekViewHandler handles GET /api/admin/calendar/week/:date, where :date is
// the first day of the week to display.
func (h *CalendarHandler) WeekViewHandler(c *gin.Context) {
	view, err := h.CalendarSvc.WeekView(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.Logger.Error("WeekView: failed to compute slots", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute week view", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// BlockSlotHandler handles POST /api/admin/calendar/blocked-slots.
func (h *CalendarHandler) BlockSlotHandler(c *gin.Context) {
	var req models.BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.CalendarSvc.BlockSlot(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("BlockSlot: failed", zap.String("date", req.Date), zap.String("time", req.Time), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to block slot", err.Error())
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// UnblockSlotHandler handles DELETE /api/admin/calendar/blocked-slots/:id.
func (h *CalendarHandler) UnblockSlotHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.CalendarSvc.UnblockSlot(c.Request.Context(), id); err != nil {
		h.Logger.Error("UnblockSlot: failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to unblock slot", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// UpdateAppointmentStatusHandler handles PUT /api/admin/appointments/:id/status.
func (h *CalendarHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.CalendarSvc.TransitionStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.Logger.Warn("TransitionStatus: rejected", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "status transition rejected", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}
