package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the availability queries depend on.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary availability query: maid + date + status.
		{
			Keys:    bson.D{{Key: "maid_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("maid_date_status_idx"),
		},
		// Overlap re-check inside the booking transaction.
		{
			Keys:    bson.D{{Key: "maid_id", Value: 1}, {Key: "date", Value: 1}, {Key: "start_min", Value: 1}, {Key: "end_min", Value: 1}},
			Options: options.Index().SetName("maid_date_window_idx"),
		},
		{
			Keys:    bson.D{{Key: "customer_id", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("customer_date_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
