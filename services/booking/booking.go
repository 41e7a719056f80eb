package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pawspa/models"
	"pawspa/services/calendar"
	"pawspa/services/schedule"
	"pawspa/utils"
)

const dayFormat = "2006-01-02"

func (s *DefaultBookingService) BookAppointment(ctx context.Context, userID string, req models.BookAppointmentRequest) (*models.Appointment, error) {
	day, err := time.Parse(dayFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	label := schedule.TruncateToMinute(req.Time)

	pet, err := s.Pets.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, fmt.Errorf("pet %s not found: %w", req.PetID, err)
	}
	if pet.OwnerID != userID {
		return nil, fmt.Errorf("pet %s does not belong to this client", req.PetID)
	}

	svc, err := s.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("service %s not found: %w", req.ServiceID, err)
	}
	if !svc.Active {
		return nil, fmt.Errorf("service %s is not currently offered", svc.Name)
	}

	// The slot must be inside business hours and currently free. Fresh reads,
	// no optimistic state; a concurrent booking simply wins the insert race.
	sched, err := s.Settings.GetBusinessHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load business hours: %w", err)
	}
	if !schedule.WithinSchedule(day, label, sched) {
		return nil, fmt.Errorf("slot %s %s is outside business hours", req.Date, label)
	}

	appts, err := s.Appointments.GetByDate(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	blocked, err := s.BlockedSlots.GetByDate(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocked slots: %w", err)
	}
	status := schedule.SlotStatus(req.Date, label, appts, blocked)
	if !status.Available {
		return nil, fmt.Errorf("slot %s %s is no longer available", req.Date, label)
	}

	appt := models.Appointment{
		UserID:    userID,
		PetID:     req.PetID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      label,
		Status:    models.AppointmentPending,
		Notes:     req.Notes,
	}
	id, err := s.Appointments.Create(ctx, appt)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	appt.ID = id

	s.notify(ctx, models.EmailRequested, appt)
	s.notify(ctx, models.EmailAdminNotification, appt)

	return &appt, nil
}

func (s *DefaultBookingService) ListAppointments(ctx context.Context, userID string) ([]models.Appointment, error) {
	return s.Appointments.GetByUser(ctx, userID)
}

func (s *DefaultBookingService) CancelAppointment(ctx context.Context, userID, appointmentID string) error {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("appointment %s not found: %w", appointmentID, err)
	}
	if appt.UserID != userID {
		return fmt.Errorf("appointment %s does not belong to this client", appointmentID)
	}
	if !calendar.CanTransition(appt.Status, models.AppointmentCancelled) {
		return fmt.Errorf("cannot cancel appointment in status %s", appt.Status)
	}
	if err := s.Appointments.UpdateStatus(ctx, appointmentID, models.AppointmentCancelled); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	appt.Status = models.AppointmentCancelled
	s.notify(ctx, models.EmailCancellation, *appt)
	return nil
}

func (s *DefaultBookingService) Subscribe(ctx context.Context, userID string, req models.SubscribeRequest) (*models.Subscription, error) {
	sub := models.Subscription{
		UserID:    userID,
		PlanName:  req.PlanName,
		Price:     req.Price,
		Status:    models.SubscriptionActive,
		StartDate: time.Now().Format(dayFormat),
	}
	id, err := s.Subscriptions.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	sub.ID = id
	return &sub, nil
}

func (s *DefaultBookingService) ListSubscriptions(ctx context.Context, userID string) ([]models.Subscription, error) {
	return s.Subscriptions.GetByUser(ctx, userID)
}

// ListAllSubscriptions returns every plan membership for the admin overview.
func (s *DefaultBookingService) ListAllSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	return s.Subscriptions.GetAll(ctx)
}

func (s *DefaultBookingService) CancelSubscription(ctx context.Context, userID, subscriptionID string) error {
	sub, err := s.Subscriptions.GetByID(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("subscription %s not found: %w", subscriptionID, err)
	}
	if sub.UserID != userID {
		return fmt.Errorf("subscription %s does not belong to this client", subscriptionID)
	}
	if sub.Status == models.SubscriptionCancelled {
		return fmt.Errorf("subscription %s is already cancelled", subscriptionID)
	}
	return s.Subscriptions.UpdateStatus(ctx, subscriptionID, models.SubscriptionCancelled)
}

func (s *DefaultBookingService) notify(ctx context.Context, emailType models.EmailType, appt models.Appointment) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.NotifyAppointment(ctx, emailType, appt); err != nil {
		utils.GetLogger().Warn("failed to enqueue appointment email",
			zap.String("type", string(emailType)),
			zap.String("appointmentID", appt.ID),
			zap.Error(err))
	}
}
