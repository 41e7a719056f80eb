package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known appointment states.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment represents a booked grooming visit.
type Appointment struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"user_id" json:"user_id"`
	PetID     string            `bson:"pet_id" json:"pet_id"`
	ServiceID string            `bson:"service_id" json:"service_id"`
	Date      string            `bson:"date" json:"date"`                 // Calendar date in "YYYY-MM-DD" format
	Time      string            `bson:"time" json:"time"`                 // Time of day, "HH:MM" or "HH:MM:SS" as stored
	Status    AppointmentStatus `bson:"status" json:"status"`
	Notes     string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}

// BookAppointmentRequest is the payload for a client booking.
type BookAppointmentRequest struct {
	PetID     string `json:"petId" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

// UpdateStatusRequest carries an admin status transition.
type UpdateStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}
