package notificationRepo

import (
	"context"

	"maidly/database"
	"maidly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID, role string, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new instance of MongoNotificationRepo.
func NewMongoNotificationRepo() *MongoNotificationRepo {
	return &MongoNotificationRepo{coll: database.DB().Collection("notifications")}
}
