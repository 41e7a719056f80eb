// File: database/repository/subscription/crud.go
package subscriptionRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pawspa/models"
)

func (r *mongoSubscriptionRepo) Create(ctx context.Context, sub models.Subscription) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, sub); err != nil {
		return "", err
	}
	return sub.ID, nil
}

func (r *mongoSubscriptionRepo) GetByID(ctx context.Context, id string) (*models.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sub models.Subscription
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *mongoSubscriptionRepo) GetByUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	return r.findByFilter(ctx, bson.M{"user_id": userID})
}

func (r *mongoSubscriptionRepo) GetAll(ctx context.Context) ([]models.Subscription, error) {
	return r.findByFilter(ctx, bson.M{})
}

func (r *mongoSubscriptionRepo) findByFilter(ctx context.Context, filter bson.M) ([]models.Subscription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.Subscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *mongoSubscriptionRepo) UpdateStatus(ctx context.Context, id string, status models.SubscriptionStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
