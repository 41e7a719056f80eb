// File: database/repository/settings/crud.go
package settingsRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawspa/models"
)

// DefaultSlotDuration applies when the slot_duration setting is absent.
const DefaultSlotDuration = 60

type businessHoursDoc struct {
	Key   string               `bson:"key"`
	Value models.BusinessHours `bson:"value"`
}

type slotDurationDoc struct {
	Key   string `bson:"key"`
	Value int    `bson:"value"`
}

func (r *mongoSettingsRepo) GetBusinessHours(ctx context.Context) (models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc businessHoursDoc
	err := r.coll.FindOne(ctx, bson.M{"key": KeyBusinessHours}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// No configured hours yet: every day disabled.
		return models.WeeklySchedule{}, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Value.Weekly(), nil
}

func (r *mongoSettingsRepo) SetBusinessHours(ctx context.Context, hours models.BusinessHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"key": KeyBusinessHours},
		bson.M{"$set": bson.M{"value": hours}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *mongoSettingsRepo) GetSlotDuration(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc slotDurationDoc
	err := r.coll.FindOne(ctx, bson.M{"key": KeySlotDuration}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return DefaultSlotDuration, nil
	}
	if err != nil {
		return 0, err
	}
	if doc.Value <= 0 {
		return DefaultSlotDuration, nil
	}
	return doc.Value, nil
}

func (r *mongoSettingsRepo) SetSlotDuration(ctx context.Context, minutes int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"key": KeySlotDuration},
		bson.M{"$set": bson.M{"value": minutes}},
		options.Update().SetUpsert(true),
	)
	return err
}
