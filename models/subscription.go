package models

import "time"

// SubscriptionStatus enumerates subscription states.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a client's membership in a recurring grooming plan.
// Billing is out of scope; this is a plan membership record only.
type Subscription struct {
	ID        string             `bson:"id" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	PlanName  string             `bson:"plan_name" json:"plan_name"`
	Price     float64            `bson:"price" json:"price"`
	Status    SubscriptionStatus `bson:"status" json:"status"`
	StartDate string             `bson:"start_date" json:"start_date"` // "YYYY-MM-DD"
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// SubscribeRequest is the payload for joining a plan.
type SubscribeRequest struct {
	PlanName string  `json:"planName" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
}
