package handlers

import (
	"net/http"

	"pawspa/models"
	"pawspa/services/booking"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the client-facing booking and subscription endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// BookAppointmentHandler handles POST /api/appointments.
func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.BookingSvc.BookAppointment(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		h.Logger.Warn("BookAppointment: rejected", zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "could not book appointment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler handles GET /api/appointments.
func (h *BookingHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.BookingSvc.ListAppointments(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.Error("ListAppointments: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, appts)
}

// CancelAppointmentHandler handles DELETE /api/appointments/:id.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.BookingSvc.CancelAppointment(c.Request.Context(), c.GetString("userID"), id); err != nil {
		h.Logger.Warn("CancelAppointment: rejected", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "could not cancel appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}

// SubscribeHandler handles POST /api/subscriptions.
func (h *BookingHandler) SubscribeHandler(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sub, err := h.BookingSvc.Subscribe(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		h.Logger.Error("Subscribe: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create subscription", err.Error())
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// ListSubscriptionsHandler handles GET /api/subscriptions.
func (h *BookingHandler) ListSubscriptionsHandler(c *gin.Context) {
	subs, err := h.BookingSvc.ListSubscriptions(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.Logger.Error("ListSubscriptions: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch subscriptions", err.Error())
		return
	}
	c.JSON(http.StatusOK, subs)
}

// AdminListSubscriptionsHandler handles GET /api/admin/subscriptions.
func (h *BookingHandler) AdminListSubscriptionsHandler(c *gin.Context) {
	subs, err := h.BookingSvc.ListAllSubscriptions(c.Request.Context())
	if err != nil {
		h.Logger.Error("AdminListSubscriptions: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch subscriptions", err.Error())
		return
	}
	c.JSON(http.StatusOK, subs)
}

// CancelSubscriptionHandler handles DELETE /api/subscriptions/:id.
func (h *BookingHandler) CancelSubscriptionHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.BookingSvc.CancelSubscription(c.Request.Context(), c.GetString("userID"), id); err != nil {
		h.Logger.Warn("CancelSubscription: rejected", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "could not cancel subscription", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}
