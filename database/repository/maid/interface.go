package maidRepo

import (
	"context"

	"maidly/database"
	"maidly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MaidRepository persists maid profiles.
type MaidRepository interface {
	Create(ctx context.Context, maid *models.Maid) error
	GetByID(ctx context.Context, maidID string) (*models.Maid, error)
	GetByEmail(ctx context.Context, email string) (*models.Maid, error)
	Update(ctx context.Context, maid *models.Maid) error
	Delete(ctx context.Context, maidID string) error
	ListActive(ctx context.Context, categoryID string) ([]models.Maid, error)
	IncrementCompleted(ctx context.Context, maidID string) error
}

// MongoMaidRepo implements MaidRepository using MongoDB.
type MongoMaidRepo struct {
	coll *mongo.Collection
}

// NewMongoMaidRepo constructs a new instance of MongoMaidRepo.
func NewMongoMaidRepo() *MongoMaidRepo {
	return &MongoMaidRepo{coll: database.DB().Collection("maids")}
}
