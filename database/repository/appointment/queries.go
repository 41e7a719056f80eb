// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawspa/models"
)

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *mongoAppointmentRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"date": bson.M{"$gte": from, "$lte": to}})
}

func (r *mongoAppointmentRepo) GetByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *mongoAppointmentRepo) GetByDateAndStatuses(ctx context.Context, date string, statuses []models.AppointmentStatus) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"date": date, "status": bson.M{"$in": statuses}})
}
