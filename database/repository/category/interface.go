package categoryRepo

import (
	"context"

	"maidly/database"
	"maidly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryRepository persists service categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.ServiceCategory) error
	GetByID(ctx context.Context, categoryID string) (*models.ServiceCategory, error)
	GetByCode(ctx context.Context, code string) (*models.ServiceCategory, error)
	List(ctx context.Context, activeOnly bool) ([]models.ServiceCategory, error)
	Update(ctx context.Context, category *models.ServiceCategory) error
	Delete(ctx context.Context, categoryID string) error
}

// MongoCategoryRepo implements CategoryRepository using MongoDB.
type MongoCategoryRepo struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepo constructs a new instance of MongoCategoryRepo.
func NewMongoCategoryRepo() *MongoCategoryRepo {
	return &MongoCategoryRepo{coll: database.DB().Collection("categories")}
}
