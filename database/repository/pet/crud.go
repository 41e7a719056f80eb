// File: database/repository/pet/crud.go
package petRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pawspa/models"
)

func (r *mongoPetRepo) Create(ctx context.Context, pet models.Pet) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pet.ID == "" {
		pet.ID = uuid.New().String()
	}
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, pet); err != nil {
		return "", err
	}
	return pet.ID, nil
}

func (r *mongoPetRepo) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pet models.Pet
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *mongoPetRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pets []models.Pet
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *mongoPetRepo) Update(ctx context.Context, id string, pet models.Pet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":    pet.Name,
		"species": pet.Species,
		"breed":   pet.Breed,
		"weight":  pet.Weight,
		"notes":   pet.Notes,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPetRepo) SetPhotoURL(ctx context.Context, id, url string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"photo_url": url}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPetRepo) DeleteByID(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "owner_id": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
