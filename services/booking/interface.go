package booking

import (
	"context"

	appointmentRepo "pawspa/database/repository/appointment"
	blockedslotRepo "pawspa/database/repository/blockedslot"
	groomserviceRepo "pawspa/database/repository/groomservice"
	petRepo "pawspa/database/repository/pet"
	settingsRepo "pawspa/database/repository/settings"
	subscriptionRepo "pawspa/database/repository/subscription"
	"pawspa/models"
	"pawspa/services/notification"
)

// BookingService is the client-facing surface: booking and cancelling
// appointments and managing plan subscriptions.
type BookingService interface {
	BookAppointment(ctx context.Context, userID string, req models.BookAppointmentRequest) (*models.Appointment, error)
	ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, userID, appointmentID string) error

	Subscribe(ctx context.Context, userID string, req models.SubscribeRequest) (*models.Subscription, error)
	ListSubscriptions(ctx context.Context, userID string) ([]models.Subscription, error)
	ListAllSubscriptions(ctx context.Context) ([]models.Subscription, error)
	CancelSubscription(ctx context.Context, userID, subscriptionID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Appointments  appointmentRepo.AppointmentRepository
	BlockedSlots  blockedslotRepo.BlockedSlotRepository
	Pets          petRepo.PetRepository
	Services      groomserviceRepo.GroomServiceRepository
	Settings      settingsRepo.SettingsRepository
	Subscriptions subscriptionRepo.SubscriptionRepository
	Notifier      notification.NotificationService
}
