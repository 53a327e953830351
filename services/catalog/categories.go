package catalog

import (
	"context"
	"errors"

	"servit/database"
	"servit/models"
	"servit/utils"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultCatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.Categories.GetAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch categories", err)
	}
	return categories, nil
}

// CreateCategory upserts the category with the id fixed by its kind, so
// repeated calls update the same document.
func (s *DefaultCatalogService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	id, ok := models.CategoryIDFor(in.Category)
	if !ok {
		return nil, utils.NewValidationError(`category must be one of "men", "women"`)
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	category, err := s.Categories.Upsert(ctx, &models.Category{
		ID:        id,
		Category:  in.Category,
		IsActive:  active,
		CreatedAt: s.nowMillis(),
	})
	if err != nil {
		return nil, utils.NewInternalError("Failed to save category", err)
	}
	return category, nil
}

func (s *DefaultCatalogService) UpdateCategory(ctx context.Context, id string, in CategoryPatch) (*models.Category, error) {
	fields := bson.M{}
	if in.Category != nil {
		if _, ok := models.CategoryIDFor(*in.Category); !ok {
			return nil, utils.NewValidationError(`category must be one of "men", "women"`)
		}
		fields["category"] = *in.Category
	}
	if in.IsActive != nil {
		fields["isActive"] = *in.IsActive
	}

	if len(fields) == 0 {
		category, err := s.Categories.GetByID(ctx, id)
		if err != nil {
			return nil, utils.NewInternalError("Failed to fetch category", err)
		}
		if category == nil {
			return nil, utils.NewNotFoundError("Category not found")
		}
		return category, nil
	}

	category, err := s.Categories.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFoundError("Category not found")
		}
		return nil, utils.NewInternalError("Failed to update category", err)
	}
	return category, nil
}

// DeleteCategory removes the category document only; its services stay.
func (s *DefaultCatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.Categories.Delete(ctx, id); err != nil {
		return utils.NewInternalError("Failed to delete category", err)
	}
	return nil
}
