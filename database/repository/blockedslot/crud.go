// File: database/repository/blockedslot/crud.go
package blockedslotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pawspa/models"
)

func (r *mongoBlockedSlotRepo) Create(ctx context.Context, slot models.BlockedSlot) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return "", err
	}
	return slot.ID, nil
}

func (r *mongoBlockedSlotRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBlockedSlotRepo) GetByID(ctx context.Context, id string) (*models.BlockedSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.BlockedSlot
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *mongoBlockedSlotRepo) findByFilter(ctx context.Context, filter bson.M) ([]models.BlockedSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.BlockedSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoBlockedSlotRepo) GetByDate(ctx context.Context, date string) ([]models.BlockedSlot, error) {
	return r.findByFilter(ctx, bson.M{"date": date})
}

func (r *mongoBlockedSlotRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.BlockedSlot, error) {
	return r.findByFilter(ctx, bson.M{"date": bson.M{"$gte": from, "$lte": to}})
}
