package handlers

import (
	"net/http"

	appointmentRepo "pawspa/database/repository/appointment"
	"pawspa/models"
	"pawspa/services/notification"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmailHandler is the admin-facing manual email dispatcher.
type EmailHandler struct {
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService
	Logger       *zap.Logger
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(appointments appointmentRepo.AppointmentRepository, notifier notification.NotificationService, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{Appointments: appointments, Notifier: notifier, Logger: logger}
}

// DispatchEmailHandler handles POST /api/admin/emails. It re-sends any of
// the transactional templates for an existing appointment, optionally to an
// override address.
func (h *EmailHandler) DispatchEmailHandler(c *gin.Context) {
	var req models.DispatchEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	switch req.Type {
	case models.EmailConfirmation, models.EmailCancellation, models.EmailRequested,
		models.EmailReminder, models.EmailAdminNotification:
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown email type: "+string(req.Type))
		return
	}

	appt, err := h.Appointments.GetByID(c.Request.Context(), req.AppointmentID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "appointment not found", req.AppointmentID)
		return
	}

	if req.Email != "" {
		// Explicit recipient skips the user lookup entirely.
		payload := models.EmailPayload{
			Type:          req.Type,
			To:            req.Email,
			Date:          appt.Date,
			Time:          appt.Time,
			AppointmentID: appt.ID,
		}
		if err := h.Notifier.Enqueue(c.Request.Context(), payload); err != nil {
			h.Logger.Error("DispatchEmail: enqueue failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to queue email", err.Error())
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"queued": true})
		return
	}

	if err := h.Notifier.NotifyAppointment(c.Request.Context(), req.Type, *appt); err != nil {
		h.Logger.Error("DispatchEmail: enqueue failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to queue email", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": true})
}
