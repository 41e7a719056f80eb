package models

// EmailType selects the transactional template to render.
type EmailType string

const (
	EmailConfirmation      EmailType = "confirmation"
	EmailCancellation      EmailType = "cancellation"
	EmailRequested         EmailType = "requested"
	EmailReminder          EmailType = "reminder"
	EmailAdminNotification EmailType = "admin-notification"
)

// EmailPayload is the typed message handed to the email task queue.
type EmailPayload struct {
	Type          EmailType `json:"type"`
	To            string    `json:"to"`
	UserName      string    `json:"userName,omitempty"`
	PetName       string    `json:"petName,omitempty"`
	ServiceName   string    `json:"serviceName,omitempty"`
	Date          string    `json:"date,omitempty"`
	Time          string    `json:"time,omitempty"`
	AppointmentID string    `json:"appointmentId,omitempty"`
}

// DispatchEmailRequest is the payload of the generic email dispatch endpoint.
type DispatchEmailRequest struct {
	Type          EmailType `json:"type" binding:"required"`
	AppointmentID string    `json:"appointmentId" binding:"required"`
	Email         string    `json:"email"`
}
