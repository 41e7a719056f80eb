// File: database/repository/subscription/interface.go
package subscriptionRepo

import (
	"context"

	"pawspa/database"
	"pawspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub models.Subscription) (string, error)
	GetByID(ctx context.Context, id string) (*models.Subscription, error)
	GetByUser(ctx context.Context, userID string) ([]models.Subscription, error)
	GetAll(ctx context.Context) ([]models.Subscription, error)
	UpdateStatus(ctx context.Context, id string, status models.SubscriptionStatus) error
}

type mongoSubscriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepo constructs a new MongoDB SubscriptionRepository.
func NewMongoSubscriptionRepo() SubscriptionRepository {
	return &mongoSubscriptionRepo{
		coll: database.Collection("subscriptions"),
	}
}
