// File: database/repository/groomservice/interface.go
package groomserviceRepo

import (
	"context"

	"pawspa/database"
	"pawspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type GroomServiceRepository interface {
	Create(ctx context.Context, svc models.GroomService) (string, error)
	GetByID(ctx context.Context, id string) (*models.GroomService, error)
	GetAll(ctx context.Context, activeOnly bool) ([]models.GroomService, error)
	Update(ctx context.Context, id string, svc models.GroomService) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoGroomServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoGroomServiceRepo constructs a new MongoDB GroomServiceRepository.
func NewMongoGroomServiceRepo() GroomServiceRepository {
	return &mongoGroomServiceRepo{
		coll: database.Collection("services"),
	}
}
