package categoryRepo

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

func (repo *MongoCategoryRepo) Create(ctx context.Context, category *models.ServiceCategory) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("error creating category: %w", err)
	}
	return nil
}

func (repo *MongoCategoryRepo) GetByID(ctx context.Context, categoryID string) (*models.ServiceCategory, error) {
	return repo.getOne(ctx, bson.M{"id": categoryID})
}

func (repo *MongoCategoryRepo) GetByCode(ctx context.Context, code string) (*models.ServiceCategory, error) {
	return repo.getOne(ctx, bson.M{"code": code})
}

func (repo *MongoCategoryRepo) getOne(ctx context.Context, filter bson.M) (*models.ServiceCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var category models.ServiceCategory
	err := repo.coll.FindOne(ctx, filter).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching category: %w", err)
	}
	return &category, nil
}

func (repo *MongoCategoryRepo) List(ctx context.Context, activeOnly bool) ([]models.ServiceCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.ServiceCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("error decoding categories: %w", err)
	}
	return categories, nil
}

func (repo *MongoCategoryRepo) Update(ctx context.Context, category *models.ServiceCategory) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	category.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": category.ID}, category)
	if err != nil {
		return fmt.Errorf("error updating category %s: %w", category.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (repo *MongoCategoryRepo) Delete(ctx context.Context, categoryID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": categoryID})
	if err != nil {
		return fmt.Errorf("error deleting category %s: %w", categoryID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
