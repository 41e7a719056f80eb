// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"pawspa/database"
	"pawspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	GetByDateRange(ctx context.Context, from, to string) ([]models.Appointment, error)
	GetByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	GetByDateAndStatuses(ctx context.Context, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.Collection("appointments"),
	}
}
