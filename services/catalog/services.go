package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"servit/database"
	"servit/models"
	"servit/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultCatalogService) nowMillis() int64 {
	if s.Now != nil {
		return s.Now().UnixMilli()
	}
	return time.Now().UnixMilli()
}

func (s *DefaultCatalogService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.New().String()
}

func (s *DefaultCatalogService) invalidate(ctx context.Context, categoryID, serviceID string) {
	if s.Cache != nil {
		s.Cache.Delete(ctx, utils.ServiceCacheKey(categoryID, serviceID))
	}
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, categoryID string) ([]models.Service, error) {
	services, err := s.Services.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch services", err)
	}
	return services, nil
}

// CreateService uses the trimmed name as the service id. An existing service
// with the same id is a conflict, never overwritten.
func (s *DefaultCatalogService) CreateService(ctx context.Context, categoryID string, in ServiceInput) (*models.Service, error) {
	id := strings.TrimSpace(in.Name)
	if id == "" {
		return nil, utils.NewValidationError("name is required")
	}
	subs, err := s.buildSubServices(in.SubServices)
	if err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	service := &models.Service{
		ID:          id,
		CategoryID:  categoryID,
		Name:        id,
		Description: in.Description,
		Icon:        in.Icon,
		IsActive:    active,
		SubServices: subs,
		CreatedAt:   s.nowMillis(),
	}
	if err := s.Services.Create(ctx, service); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, utils.NewConflictError("Service with this name already exists")
		}
		return nil, utils.NewInternalError("Failed to create service", err)
	}
	return service, nil
}

// GetService is served from the cache when possible.
func (s *DefaultCatalogService) GetService(ctx context.Context, categoryID, serviceID string) (*models.Service, error) {
	key := utils.ServiceCacheKey(categoryID, serviceID)
	var cached models.Service
	if s.Cache != nil && s.Cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	service, err := s.loadService(ctx, categoryID, serviceID)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		s.Cache.Set(ctx, key, service)
	}
	return service, nil
}

func (s *DefaultCatalogService) loadService(ctx context.Context, categoryID, serviceID string) (*models.Service, error) {
	service, err := s.Services.GetByID(ctx, categoryID, serviceID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch service", err)
	}
	if service == nil {
		return nil, utils.NewNotFoundError("Service not found")
	}
	return service, nil
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, categoryID, serviceID string, in ServicePatch) (*models.Service, error) {
	fields := bson.M{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, utils.NewValidationError("name must not be empty")
		}
		fields["name"] = name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Icon != nil {
		fields["icon"] = *in.Icon
	}
	if in.IsActive != nil {
		fields["isActive"] = *in.IsActive
	}
	if in.SubServices != nil {
		subs, err := s.buildSubServices(in.SubServices)
		if err != nil {
			return nil, err
		}
		fields["subServices"] = subs
	}

	if len(fields) == 0 {
		return s.loadService(ctx, categoryID, serviceID)
	}

	service, err := s.Services.UpdateFields(ctx, categoryID, serviceID, fields)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFoundError("Service not found")
		}
		return nil, utils.NewInternalError("Failed to update service", err)
	}
	s.invalidate(ctx, categoryID, serviceID)
	return service, nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, categoryID, serviceID string) error {
	if err := s.Services.Delete(ctx, categoryID, serviceID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.NewNotFoundError("Service not found")
		}
		return utils.NewInternalError("Failed to delete service", err)
	}
	s.invalidate(ctx, categoryID, serviceID)
	return nil
}
