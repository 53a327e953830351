package catalog

import (
	"context"
	"errors"
	"strings"

	"servit/database"
	"servit/models"
	"servit/utils"
)

// newSubService validates input and fills defaults: unit "per service" and
// maxPrice equal to minPrice.
func newSubService(in SubServiceInput) (models.SubService, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.SubService{}, utils.NewValidationError("sub-service name is required")
	}
	sub := models.SubService{
		Name:        name,
		Description: in.Description,
		Unit:        in.Unit,
		MinPrice:    in.MinPrice,
		MaxPrice:    in.MinPrice,
	}
	if sub.Unit == "" {
		sub.Unit = models.UnitPerService
	}
	if in.MaxPrice != nil {
		sub.MaxPrice = *in.MaxPrice
	}
	if err := validateSubService(sub); err != nil {
		return models.SubService{}, err
	}
	return sub, nil
}

func validateSubService(sub models.SubService) error {
	if !models.IsValidUnit(sub.Unit) {
		return utils.NewValidationError(`unit must be one of "per service", "per unit", "per hour", "per day"`)
	}
	if sub.MinPrice < 0 {
		return utils.NewValidationError("minPrice must not be negative")
	}
	if sub.MaxPrice < sub.MinPrice {
		return utils.NewValidationError("maxPrice must be greater than or equal to minPrice")
	}
	return nil
}

func (s *DefaultCatalogService) buildSubServices(inputs []SubServiceInput) ([]models.SubService, error) {
	subs := make([]models.SubService, 0, len(inputs))
	for _, in := range inputs {
		sub, err := newSubService(in)
		if err != nil {
			return nil, err
		}
		if indexByName(subs, sub.Name, -1) >= 0 {
			return nil, utils.NewConflictError("Subservice with this name already exists")
		}
		sub.ID = strings.TrimSpace(in.ID)
		if sub.ID == "" {
			sub.ID = s.newID()
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// indexByName finds a sub-service whose name matches ignoring case and
// surrounding space, skipping position skip.
func indexByName(subs []models.SubService, name string, skip int) int {
	for i, sub := range subs {
		if i != skip && models.SameName(sub.Name, name) {
			return i
		}
	}
	return -1
}

// indexByIdentity finds a sub-service by id, or by name for legacy entries.
func indexByIdentity(subs []models.SubService, subID string) int {
	for i, sub := range subs {
		if sub.Identity() == subID {
			return i
		}
	}
	return -1
}

// The sub-service array is rewritten whole; concurrent writers to the same
// service are last-write-wins.
func (s *DefaultCatalogService) writeSubServices(ctx context.Context, categoryID, serviceID string, subs []models.SubService) error {
	if err := s.Services.ReplaceSubServices(ctx, categoryID, serviceID, subs); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.NewNotFoundError("Service not found")
		}
		return utils.NewInternalError("Failed to save sub-services", err)
	}
	s.invalidate(ctx, categoryID, serviceID)
	return nil
}

func (s *DefaultCatalogService) AddSubService(ctx context.Context, categoryID, serviceID string, in SubServiceInput) (*models.SubService, error) {
	service, err := s.loadService(ctx, categoryID, serviceID)
	if err != nil {
		return nil, err
	}
	sub, err := newSubService(in)
	if err != nil {
		return nil, err
	}
	if indexByName(service.SubServices, sub.Name, -1) >= 0 {
		return nil, utils.NewConflictError("Subservice with this name already exists")
	}
	sub.ID = s.newID()

	subs := append(append([]models.SubService{}, service.SubServices...), sub)
	if err := s.writeSubServices(ctx, categoryID, serviceID, subs); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *DefaultCatalogService) UpdateSubService(ctx context.Context, categoryID, serviceID, subID string, in SubServicePatch) (*models.SubService, error) {
	service, err := s.loadService(ctx, categoryID, serviceID)
	if err != nil {
		return nil, err
	}
	subs := append([]models.SubService{}, service.SubServices...)
	idx := indexByIdentity(subs, subID)
	if idx < 0 {
		return nil, utils.NewNotFoundError("Subservice not found")
	}

	sub := subs[idx]
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, utils.NewValidationError("sub-service name must not be empty")
		}
		if indexByName(subs, name, idx) >= 0 {
			return nil, utils.NewConflictError("Subservice with this name already exists")
		}
		sub.Name = name
	}
	if in.Description != nil {
		sub.Description = *in.Description
	}
	if in.Unit != nil {
		sub.Unit = *in.Unit
	}
	if in.MinPrice != nil {
		sub.MinPrice = *in.MinPrice
	}
	if in.MaxPrice != nil {
		sub.MaxPrice = *in.MaxPrice
	}
	if err := validateSubService(sub); err != nil {
		return nil, err
	}

	subs[idx] = sub
	if err := s.writeSubServices(ctx, categoryID, serviceID, subs); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *DefaultCatalogService) DeleteSubService(ctx context.Context, categoryID, serviceID, subID string) error {
	service, err := s.loadService(ctx, categoryID, serviceID)
	if err != nil {
		return err
	}
	idx := indexByIdentity(service.SubServices, subID)
	if idx < 0 {
		return utils.NewNotFoundError("Subservice not found")
	}

	subs := make([]models.SubService, 0, len(service.SubServices)-1)
	subs = append(subs, service.SubServices[:idx]...)
	subs = append(subs, service.SubServices[idx+1:]...)
	return s.writeSubServices(ctx, categoryID, serviceID, subs)
}
