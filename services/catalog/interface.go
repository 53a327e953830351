package catalog

import (
	"context"
	"time"

	catalogRepo "servit/database/repository/catalog"
	"servit/models"
	"servit/utils"
)

// CatalogService manages categories, services and embedded sub-services.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, in CategoryPatch) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListServices(ctx context.Context, categoryID string) ([]models.Service, error)
	CreateService(ctx context.Context, categoryID string, in ServiceInput) (*models.Service, error)
	GetService(ctx context.Context, categoryID, serviceID string) (*models.Service, error)
	UpdateService(ctx context.Context, categoryID, serviceID string, in ServicePatch) (*models.Service, error)
	DeleteService(ctx context.Context, categoryID, serviceID string) error

	AddSubService(ctx context.Context, categoryID, serviceID string, in SubServiceInput) (*models.SubService, error)
	UpdateSubService(ctx context.Context, categoryID, serviceID, subID string, in SubServicePatch) (*models.SubService, error)
	DeleteSubService(ctx context.Context, categoryID, serviceID, subID string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Categories catalogRepo.CategoryRepository
	Services   catalogRepo.ServiceRepository
	Cache      utils.Cache
	NewID      func() string
	Now        func() time.Time
}

type CategoryInput struct {
	Category string `json:"category" binding:"required,oneof=men women"`
	IsActive *bool  `json:"isActive"`
}

type CategoryPatch struct {
	Category *string `json:"category" binding:"omitempty,oneof=men women"`
	IsActive *bool   `json:"isActive"`
}

type SubServiceInput struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
	MinPrice    float64  `json:"minPrice"`
	MaxPrice    *float64 `json:"maxPrice"`
}

type SubServicePatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Unit        *string  `json:"unit"`
	MinPrice    *float64 `json:"minPrice"`
	MaxPrice    *float64 `json:"maxPrice"`
}

type ServiceInput struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	IsActive    *bool             `json:"isActive"`
	SubServices []SubServiceInput `json:"subServices"`
}

type ServicePatch struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Icon        *string           `json:"icon"`
	IsActive    *bool             `json:"isActive"`
	SubServices []SubServiceInput `json:"subServices"`
}
