package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"maidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *MongoNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

func (repo *MongoNotificationRepo) ListByRecipient(ctx context.Context, recipientID, role string, limit int64) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"recipient_id": recipientID, "recipient_role": role}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("error decoding notifications: %w", err)
	}
	return notifications, nil
}

func (repo *MongoNotificationRepo) MarkRead(ctx context.Context, notificationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"read": true}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": notificationID}, update)
	if err != nil {
		return fmt.Errorf("error marking notification %s read: %w", notificationID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
