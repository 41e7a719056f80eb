package notification

import (
	"fmt"

	"pawspa/models"
)

// Static string builders for the transactional email bodies. No logic beyond
// interpolation lives here.

// Subject returns the subject line for a payload.
func Subject(p models.EmailPayload) string {
	switch p.Type {
	case models.EmailConfirmation:
		return "Your grooming appointment is confirmed"
	case models.EmailCancellation:
		return "Your grooming appointment was cancelled"
	case models.EmailRequested:
		return "We received your grooming request"
	case models.EmailReminder:
		return "Reminder: grooming appointment tomorrow"
	case models.EmailAdminNotification:
		return "New grooming appointment request"
	}
	return "PawSpa update"
}

// HTMLBody returns the HTML body for a payload.
func HTMLBody(p models.EmailPayload) string {
	greeting := "Hello"
	if p.UserName != "" {
		greeting = fmt.Sprintf("Hello %s", p.UserName)
	}
	pet := p.PetName
	if pet == "" {
		pet = "your pet"
	}
	service := p.ServiceName
	if service == "" {
		service = "a grooming service"
	}
	when := fmt.Sprintf("%s at %s", p.Date, p.Time)

	switch p.Type {
	case models.EmailConfirmation:
		return fmt.Sprintf(
			"<h2>%s,</h2><p>Your appointment for <b>%s</b> (%s) on <b>%s</b> is confirmed.</p><p>See you soon!</p>",
			greeting, pet, service, when)
	case models.EmailCancellation:
		return fmt.Sprintf(
			"<h2>%s,</h2><p>Your appointment for <b>%s</b> on <b>%s</b> has been cancelled.</p><p>You can book a new slot anytime.</p>",
			greeting, pet, when)
	case models.EmailRequested:
		return fmt.Sprintf(
			"<h2>%s,</h2><p>We received your request for <b>%s</b> (%s) on <b>%s</b>.</p><p>We'll email you once it's confirmed.</p>",
			greeting, service, pet, when)
	case models.EmailReminder:
		return fmt.Sprintf(
			"<h2>%s,</h2><p>A friendly reminder: <b>%s</b> has an appointment for <b>%s</b> tomorrow, <b>%s</b>.</p>",
			greeting, pet, service, when)
	case models.EmailAdminNotification:
		return fmt.Sprintf(
			"<h2>New request</h2><p>%s booked <b>%s</b> for <b>%s</b> on <b>%s</b> (appointment %s).</p>",
			p.UserName, service, pet, when, p.AppointmentID)
	}
	return fmt.Sprintf("<p>%s, there is an update on your appointment (%s).</p>", greeting, when)
}
