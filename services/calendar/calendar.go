package calendar

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pawspa/models"
	"pawspa/services/schedule"
	"pawspa/utils"
)

const dayFormat = "2006-01-02"

// loadInputs fetches the three raw inputs of the derivation engine for a date
// range. Every view recomputes from fresh reads; nothing is cached.
func (s *DefaultCalendarService) loadInputs(ctx context.Context, from, to string) (models.WeeklySchedule, int, []models.Appointment, []models.BlockedSlot, error) {
	sched, err := s.Settings.GetBusinessHours(ctx)
	if err != nil {
		return nil, 0, nil, nil, fmt.Errorf("failed to load business hours: %w", err)
	}
	slotDuration, err := s.Settings.GetSlotDuration(ctx)
	if err != nil {
		return nil, 0, nil, nil, fmt.Errorf("failed to load slot duration: %w", err)
	}
	appts, err := s.Appointments.GetByDateRange(ctx, from, to)
	if err != nil {
		return nil, 0, nil, nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	blocked, err := s.BlockedSlots.GetByDateRange(ctx, from, to)
	if err != nil {
		return nil, 0, nil, nil, fmt.Errorf("failed to load blocked slots: %w", err)
	}
	return sched, slotDuration, appts, blocked, nil
}

func buildDay(date time.Time, times []string, sched models.WeeklySchedule, appts []models.Appointment, blocked []models.BlockedSlot) models.CalendarDay {
	dateStr := date.Format(dayFormat)
	day := models.CalendarDay{
		Date:           dateStr,
		Slots:          make([]models.DerivedSlot, 0, len(times)),
		WithinSchedule: make([]bool, 0, len(times)),
	}
	for _, t := range times {
		day.Slots = append(day.Slots, schedule.SlotStatus(dateStr, t, appts, blocked))
		day.WithinSchedule = append(day.WithinSchedule, schedule.WithinSchedule(date, t, sched))
	}
	return day
}

func (s *DefaultCalendarService) DayView(ctx context.Context, date string) (*models.DayViewResponse, error) {
	day, err := time.Parse(dayFormat, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	sched, slotDuration, appts, blocked, err := s.loadInputs(ctx, date, date)
	if err != nil {
		return nil, err
	}

	times := schedule.DaySlots(day, sched, slotDuration, appts)
	return &models.DayViewResponse{
		Times: times,
		Day:   buildDay(day, times, sched, appts, blocked),
	}, nil
}

func (s *DefaultCalendarService) WeekView(ctx context.Context, weekStart string) (*models.WeekViewResponse, error) {
	start, err := time.Parse(dayFormat, weekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", weekStart, err)
	}

	dates := schedule.WeekDates(start)
	from := dates[0].Format(dayFormat)
	to := dates[6].Format(dayFormat)

	sched, slotDuration, appts, blocked, err := s.loadInputs(ctx, from, to)
	if err != nil {
		return nil, err
	}

	times := schedule.WeekSlots(dates, sched, slotDuration, appts)
	resp := &models.WeekViewResponse{
		Times: times,
		Days:  make([]models.CalendarDay, 0, len(dates)),
	}
	for _, d := range dates {
		resp.Days = append(resp.Days, buildDay(d, times, sched, appts, blocked))
	}
	return resp, nil
}

// blockEndTime computes the end of a manual block: start plus the configured
// block duration, falling back to the slot duration when unset.
func (s *DefaultCalendarService) blockEndTime(ctx context.Context, startLabel string) (string, error) {
	minutes := s.BlockDurationMinutes
	if minutes <= 0 {
		var err error
		minutes, err = s.Settings.GetSlotDuration(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load slot duration: %w", err)
		}
	}
	start, err := time.Parse("15:04", startLabel)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: %w", startLabel, err)
	}
	end := start.Add(time.Duration(minutes) * time.Minute)
	// A block near closing must not wrap past midnight into an end time
	// earlier than its start; clamp to the last second of the day.
	if end.Day() != start.Day() {
		return "23:59:59", nil
	}
	return end.Format("15:04:05"), nil
}

func (s *DefaultCalendarService) BlockSlot(ctx context.Context, req models.BlockSlotRequest) (*models.BlockedSlot, error) {
	if _, err := time.Parse(dayFormat, req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	startLabel := schedule.TruncateToMinute(req.Time)
	endTime, err := s.blockEndTime(ctx, startLabel)
	if err != nil {
		return nil, err
	}

	slot := models.BlockedSlot{
		Date:      req.Date,
		StartTime: startLabel + ":00",
		EndTime:   endTime,
		Reason:    req.Reason,
	}
	id, err := s.BlockedSlots.Create(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to block slot: %w", err)
	}
	slot.ID = id
	return &slot, nil
}

func (s *DefaultCalendarService) UnblockSlot(ctx context.Context, id string) error {
	if err := s.BlockedSlots.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to unblock slot %s: %w", id, err)
	}
	return nil
}

func (s *DefaultCalendarService) TransitionStatus(ctx context.Context, appointmentID string, newStatus models.AppointmentStatus) (*models.Appointment, error) {
	if !models.ValidStatus(newStatus) {
		return nil, fmt.Errorf("unknown status %q", newStatus)
	}

	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("appointment %s not found: %w", appointmentID, err)
	}
	if !CanTransition(appt.Status, newStatus) {
		return nil, fmt.Errorf("cannot transition appointment from %s to %s", appt.Status, newStatus)
	}

	if err := s.Appointments.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	appt.Status = newStatus

	// Confirmation/cancellation emails are a side effect, not a guarantee:
	// enqueue failures are logged and never fail the transition.
	switch newStatus {
	case models.AppointmentConfirmed:
		s.notify(ctx, models.EmailConfirmation, *appt)
	case models.AppointmentCancelled:
		s.notify(ctx, models.EmailCancellation, *appt)
	}

	return appt, nil
}

func (s *DefaultCalendarService) notify(ctx context.Context, emailType models.EmailType, appt models.Appointment) {
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
