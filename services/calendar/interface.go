package calendar

import (
	"context"

	appointmentRepo "pawspa/database/repository/appointment"
	blockedslotRepo "pawspa/database/repository/blockedslot"
	settingsRepo "pawspa/database/repository/settings"
	"pawspa/models"
	"pawspa/services/notification"
)

// CalendarService mediates the admin calendar: derived day/week views,
// blocking/unblocking slots, and appointment status transitions.
type CalendarService interface {
	DayView(ctx context.Context, date string) (*models.DayViewResponse, error)
	WeekView(ctx context.Context, weekStart string) (*models.WeekViewResponse, error)
	BlockSlot(ctx context.Context, req models.BlockSlotRequest) (*models.BlockedSlot, error)
	UnblockSlot(ctx context.Context, id string) error
	TransitionStatus(ctx context.Context, appointmentID string, newStatus models.AppointmentStatus) (*models.Appointment, error)
}

// DefaultCalendarService is the production implementation.
type DefaultCalendarService struct {
	Appointments appointmentRepo.AppointmentRepository
	BlockedSlots blockedslotRepo.BlockedSlotRepository
	Settings     settingsRepo.SettingsRepository
	Notifier     notification.NotificationService

	// BlockDurationMinutes is the length of a manual block. Zero means the
	// configured slot duration. The legacy behavior of a fixed one-hour block
	// is reproduced by setting 60 explicitly.
	BlockDurationMinutes int
}
