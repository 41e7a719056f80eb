package models

import "time"

// User is a salon client profile. Credentials live with the external auth
// provider; this record only mirrors what the salon needs.
type User struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// UserProfileRequest is the payload for updating the caller's profile.
type UserProfileRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
}
