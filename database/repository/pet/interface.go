// File: database/repository/pet/interface.go
package petRepo

import (
	"context"

	"pawspa/database"
	"pawspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PetRepository interface {
	Create(ctx context.Context, pet models.Pet) (string, error)
	GetByID(ctx context.Context, id string) (*models.Pet, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Pet, error)
	Update(ctx context.Context, id string, pet models.Pet) error
	SetPhotoURL(ctx context.Context, id, url string) error
	DeleteByID(ctx context.Context, ownerID, id string) error
}

type mongoPetRepo struct {
	coll *mongo.Collection
}

// NewMongoPetRepo constructs a new MongoDB PetRepository.
func NewMongoPetRepo() PetRepository {
	return &mongoPetRepo{
		coll: database.Collection("pets"),
	}
}
