package models

import "time"

// GroomService is an offering in the salon catalogue (bath, full groom, ...).
type GroomService struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Price           float64   `bson:"price" json:"price"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// GroomServiceRequest is the admin payload for creating or updating a service.
type GroomServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes" binding:"required"`
	Price           float64 `json:"price" binding:"required"`
	Active          *bool   `json:"active"`
}
