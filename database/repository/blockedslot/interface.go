// File: database/repository/blockedslot/interface.go
package blockedslotRepo

import (
	"context"

	"pawspa/database"
	"pawspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BlockedSlotRepository interface {
	Create(ctx context.Context, slot models.BlockedSlot) (string, error)
	DeleteByID(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.BlockedSlot, error)
	GetByDate(ctx context.Context, date string) ([]models.BlockedSlot, error)
	GetByDateRange(ctx context.Context, from, to string) ([]models.BlockedSlot, error)
}

type mongoBlockedSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedSlotRepo constructs a new MongoDB BlockedSlotRepository.
func NewMongoBlockedSlotRepo() BlockedSlotRepository {
	return &mongoBlockedSlotRepo{
		coll: database.Collection("blocked_slots"),
	}
}
