package scheduleRepo

import (
	"context"

	"maidly/database"
	"maidly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository owns the per-maid schedule documents: the weekly
// template plus the blocked-interval list.
type ScheduleRepository interface {
	// Get returns the maid's schedule document, or (nil, nil) when the maid
	// has never saved one.
	Get(ctx context.Context, maidID string) (*models.MaidSchedule, error)
	// ReplaceWeekly swaps the weekly template wholesale (upsert).
	ReplaceWeekly(ctx context.Context, maidID string, rows []models.WeeklyAvailability) error
	AddBlock(ctx context.Context, maidID string, block models.BlockedInterval) error
	// RemoveBlock deletes a blocked interval by id. Returns
	// mongo.ErrNoDocuments when no block with that id exists for the maid.
	RemoveBlock(ctx context.Context, maidID, slotID string) error
}

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() *MongoScheduleRepo {
	return &MongoScheduleRepo{coll: database.DB().Collection("schedules")}
}
