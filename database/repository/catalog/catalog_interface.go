package catalogRepo

import (
	"context"

	"servit/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CategoryRepository stores the top level of the catalog tree.
type CategoryRepository interface {
	// Upsert creates the category or merges fields into the existing one.
	Upsert(ctx context.Context, category *models.Category) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

// ServiceRepository stores services and their embedded sub-services.
type ServiceRepository interface {
	GetByCategory(ctx context.Context, categoryID string) ([]models.Service, error)
	GetByID(ctx context.Context, categoryID, serviceID string) (*models.Service, error)
	// Create fails with database.ErrDuplicateKey when the id is already used
	// within the category.
	Create(ctx context.Context, service *models.Service) error
	UpdateFields(ctx context.Context, categoryID, serviceID string, fields bson.M) (*models.Service, error)
	// ReplaceSubServices rewrites the whole embedded array.
	ReplaceSubServices(ctx context.Context, categoryID, serviceID string, subs []models.SubService) error
	Delete(ctx context.Context, categoryID, serviceID string) error
}
