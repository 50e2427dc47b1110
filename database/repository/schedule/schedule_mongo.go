package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *MongoScheduleRepo) Get(ctx context.Context, maidID string) (*models.MaidSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.MaidSchedule
	err := repo.coll.FindOne(ctx, bson.M{"maid_id": maidID}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching schedule for maid %s: %w", maidID, err)
	}
	return &schedule, nil
}

func (repo *MongoScheduleRepo) ReplaceWeekly(ctx context.Context, maidID string, rows []models.WeeklyAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"weekly":     rows,
			"updated_at": time.Now(),
		},
		"$setOnInsert": bson.M{
			"maid_id": maidID,
			"blocked": []models.BlockedInterval{},
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"maid_id": maidID}, update, opts); err != nil {
		return fmt.Errorf("error replacing weekly schedule for maid %s: %w", maidID, err)
	}
	return nil
}

func (repo *MongoScheduleRepo) AddBlock(ctx context.Context, maidID string, block models.BlockedInterval) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"blocked": block},
		"$set":  bson.M{"updated_at": time.Now()},
		"$setOnInsert": bson.M{
			"maid_id": maidID,
			"weekly":  []models.WeeklyAvailability{},
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"maid_id": maidID}, update, opts); err != nil {
		return fmt.Errorf("error adding blocked interval for maid %s: %w", maidID, err)
	}
	return nil
}

func (repo *MongoScheduleRepo) RemoveBlock(ctx context.Context, maidID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"blocked": bson.M{"slot_id": slotID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	// Filter on the embedded slot_id so a schedule document without the
	// block does not match; the unconditional $set would otherwise report a
	// modification and mask the missing slot.
	filter := bson.M{"maid_id": maidID, "blocked.slot_id": slotID}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error removing blocked interval %s: %w", slotID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
