package notification

import (
	"context"
	"fmt"

	groomserviceRepo "pawspa/database/repository/groomservice"
	petRepo "pawspa/database/repository/pet"
	userRepo "pawspa/database/repository/user"
	"pawspa/models"

	"github.com/hibiken/asynq"
)

// NotificationService enqueues transactional email for asynchronous delivery.
// Delivery failures never propagate to the caller's mutation; the worker logs
// them and moves on.
type NotificationService interface {
	// NotifyAppointment builds the typed payload for an appointment email
	// (looking up the client, pet, and service names) and enqueues it.
	NotifyAppointment(ctx context.Context, emailType models.EmailType, appt models.Appointment) error
	// Enqueue pushes a fully built payload onto the email queue.
	Enqueue(ctx context.Context, payload models.EmailPayload) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users    userRepo.UserRepository
	Pets     petRepo.PetRepository
	Services groomserviceRepo.GroomServiceRepository
	Queue    *asynq.Client

	// AdminEmail is the salon inbox receiving admin-notification emails.
	AdminEmail string
}

func (s *DefaultNotificationService) NotifyAppointment(ctx context.Context, emailType models.EmailType, appt models.Appointment) error {
	payload := models.EmailPayload{
		Type:          emailType,
		Date:          appt.Date,
		Time:          appt.Time,
		AppointmentID: appt.ID,
	}

	user, err := s.Users.GetByID(ctx, appt.UserID)
	if err != nil {
		return fmt.Errorf("could not resolve recipient for appointment %s: %w", appt.ID, err)
	}
	payload.To = user.Email
	payload.UserName = user.Name

	// Pet and service names are decoration; a lookup failure downgrades the
	// email rather than dropping it.
	if pet, err := s.Pets.GetByID(ctx, appt.PetID); err == nil {
		payload.PetName = pet.Name
	}
	if svc, err := s.Services.GetByID(ctx, appt.ServiceID); err == nil {
		payload.ServiceName = svc.Name
	}

	if emailType == models.EmailAdminNotification {
		if s.AdminEmail == "" {
			return fmt.Errorf("admin email not configured")
		}
		payload.To = s.AdminEmail
	}

	return s.Enqueue(ctx, payload)
}

func (s *DefaultNotificationService) Enqueue(ctx context.Context, payload models.EmailPayload) error {
	task, err := NewEmailTask(payload)
	if err != nil {
		return err
	}
	if _, err := s.Queue.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s email: %w", payload.Type, err)
	}
	return nil
}
