package maidRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *MongoMaidRepo) Create(ctx context.Context, maid *models.Maid) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, maid); err != nil {
		return fmt.Errorf("error creating maid: %w", err)
	}
	return nil
}

func (repo *MongoMaidRepo) GetByID(ctx context.Context, maidID string) (*models.Maid, error) {
	return repo.getOne(ctx, bson.M{"id": maidID})
}

func (repo *MongoMaidRepo) GetByEmail(ctx context.Context, email string) (*models.Maid, error) {
	return repo.getOne(ctx, bson.M{"email": email})
}

func (repo *MongoMaidRepo) getOne(ctx context.Context, filter bson.M) (*models.Maid, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var maid models.Maid
	err := repo.coll.FindOne(ctx, filter).Decode(&maid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching maid: %w", err)
	}
	return &maid, nil
}

func (repo *MongoMaidRepo) Update(ctx context.Context, maid *models.Maid) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	maid.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": maid.ID}, maid)
	if err != nil {
		return fmt.Errorf("error updating maid %s: %w", maid.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *MongoMaidRepo) Delete(ctx context.Context, maidID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": maidID})
	if err != nil {
		return fmt.Errorf("error deleting maid %s: %w", maidID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListActive returns active maids, optionally filtered to one service
// category.
func (repo *MongoMaidRepo) ListActive(ctx context.Context, categoryID string) ([]models.Maid, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"status": "active"}
	if categoryID != "" {
		filter["category_ids"] = categoryID
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing maids: %w", err)
	}
	defer cursor.Close(ctx)

	var maids []models.Maid
	if err := cursor.All(ctx, &maids); err != nil {
		return nil, fmt.Errorf("error decoding maids: %w", err)
	}
	return maids, nil
}

func (repo *MongoMaidRepo) IncrementCompleted(ctx context.Context, maidID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$inc": bson.M{"completed_bookings": 1}}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"id": maidID}, update); err != nil {
		return fmt.Errorf("error incrementing completed bookings for %s: %w", maidID, err)
	}
	return nil
}
