package models

import "time"

// BlockedSlot marks a specific slot unavailable independent of business hours.
type BlockedSlot struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"`             // Calendar date in "YYYY-MM-DD" format
	StartTime string    `bson:"start_time" json:"start_time"` // "HH:MM:SS"
	EndTime   string    `bson:"end_time" json:"end_time"`     // "HH:MM:SS"
	Reason    string    `bson:"reason" json:"reason"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// BlockSlotRequest is the payload for blocking a calendar slot.
type BlockSlotRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason"`
}
