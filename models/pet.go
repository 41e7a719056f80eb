package models

import "time"

// Pet is a client's registered animal.
type Pet struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	Name      string    `bson:"name" json:"name"`
	Species   string    `bson:"species" json:"species"` // e.g., "dog", "cat"
	Breed     string    `bson:"breed,omitempty" json:"breed,omitempty"`
	Weight    float64   `bson:"weight,omitempty" json:"weight,omitempty"` // kg
	PhotoURL  string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// PetRequest is the payload for registering or updating a pet.
type PetRequest struct {
	Name    string  `json:"name" binding:"required"`
	Species string  `json:"species" binding:"required"`
	Breed   string  `json:"breed"`
	Weight  float64 `json:"weight"`
	Notes   string  `json:"notes"`
}
