// File: database/repository/settings/interface.go
package settingsRepo

import (
	"context"

	"pawspa/database"
	"pawspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Setting keys used by the calendar core.
const (
	KeyBusinessHours = "business_hours"
	KeySlotDuration  = "slot_duration"
)

type SettingsRepository interface {
	GetBusinessHours(ctx context.Context) (models.WeeklySchedule, error)
	SetBusinessHours(ctx context.Context, hours models.BusinessHours) error
	GetSlotDuration(ctx context.Context) (int, error)
	SetSlotDuration(ctx context.Context, minutes int) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new MongoDB SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	return &mongoSettingsRepo{
		coll: database.Collection("settings"),
	}
}
