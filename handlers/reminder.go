package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	appointmentRepo "pawspa/database/repository/appointment"
	"pawspa/models"
	"pawspa/services/notification"
	"pawspa/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ReminderGuard enforces at-most-once reminder dispatch per day. Claim wins
// only for the first trigger of a date; Release frees the date again so the
// external scheduler's retry can succeed after a transient failure.
type ReminderGuard interface {
	Claim(ctx context.Context, date string) (bool, error)
	Release(ctx context.Context, date string) error
}

type redisReminderGuard struct {
	client *redis.Client
}

func (g *redisReminderGuard) Claim(ctx context.Context, date string) (bool, error) {
	key := fmt.Sprintf("reminder:sent:%s", date)
	return g.client.SetNX(ctx, key, time.Now().Format(time.RFC3339), 24*time.Hour).Result()
}

func (g *redisReminderGuard) Release(ctx context.Context, date string) error {
	key := fmt.Sprintf("reminder:sent:%s", date)
	return g.client.Del(ctx, key).Err()
}

// ReminderHandler is the cron-triggered reminder dispatcher. An external
// scheduler hits it once a day; the guard makes duplicate triggers harmless.
type ReminderHandler struct {
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService
	Guard        ReminderGuard
	Logger       *zap.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(appointments appointmentRepo.AppointmentRepository, notifier notification.NotificationService, redisClient *redis.Client, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{
		Appointments: appointments,
		Notifier:     notifier,
		Guard:        &redisReminderGuard{client: redisClient},
		Logger:       logger,
	}
}

// SendRemindersHandler handles GET /api/cron/reminders. It enqueues a
// reminder email for every pending or confirmed appointment happening
// tomorrow.
func (h *ReminderHandler) SendRemindersHandler(c *gin.Context) {
	ctx := c.Request.Context()
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	ok, err := h.Guard.Claim(ctx, tomorrow)
	if err != nil {
		h.Logger.Error("SendReminders: dedup check failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "reminder dispatch failed", err.Error())
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "sent": 0, "failed": 0, "date": tomorrow})
		return
	}

	appts, err := h.Appointments.GetByDateAndStatuses(ctx, tomorrow, []models.AppointmentStatus{
		models.AppointmentPending, models.AppointmentConfirmed,
	})
	if err != nil {
		// Free the date so a retry is not swallowed by the guard; otherwise
		// a transient fetch failure would drop the whole day's reminders.
		if relErr := h.Guard.Release(ctx, tomorrow); relErr != nil {
			h.Logger.Error("SendReminders: failed to release dedup guard",
				zap.String("date", tomorrow), zap.Error(relErr))
		}
		h.Logger.Error("SendReminders: failed to fetch appointments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "reminder dispatch failed", err.Error())
		return
	}

	sent, failed := 0, 0
	for _, appt := range appts {
		if err := h.Notifier.NotifyAppointment(ctx, models.EmailReminder, appt); err != nil {
			h.Logger.Warn("SendReminders: enqueue failed",
				zap.String("appointmentID", appt.ID), zap.Error(err))
			failed++
			continue
		}
		sent++
	}

	h.Logger.Info("SendReminders: dispatched",
		zap.String("date", tomorrow), zap.Int("sent", sent), zap.Int("failed", failed))
	c.JSON(http.StatusOK, gin.H{"success": true, "sent": sent, "failed": failed, "date": tomorrow})
}
