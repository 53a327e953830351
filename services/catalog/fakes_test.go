package catalog

import (
	"context"
	"fmt"
	"time"

	"servit/database"
	"servit/models"
	"servit/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type memoryCategoryRepo struct {
	docs map[string]models.Category
}

func (r *memoryCategoryRepo) Upsert(_ context.Context, c *models.Category) (*models.Category, error) {
	doc, ok := r.docs[c.ID]
	if !ok {
		doc = models.Category{ID: c.ID, CreatedAt: c.CreatedAt}
	}
	doc.Category = c.Category
	doc.IsActive = c.IsActive
	r.docs[c.ID] = doc
	return &doc, nil
}

func (r *memoryCategoryRepo) GetAll(context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range r.docs {
		out = append(out, c)
	}
	return out, nil
}

func (r *memoryCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	c, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memoryCategoryRepo) UpdateFields(_ context.Context, id string, fields bson.M) (*models.Category, error) {
	c, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("category %s: %w", id, database.ErrNotFound)
	}
	if v, ok := fields["category"].(string); ok {
		c.Category = v
	}
	if v, ok := fields["isActive"].(bool); ok {
		c.IsActive = v
	}
	r.docs[id] = c
	return &c, nil
}

func (r *memoryCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.docs, id)
	return nil
}

type memoryServiceRepo struct {
	docs   map[string]models.Service
	writes int
}

func serviceKey(categoryID, serviceID string) string {
	return categoryID + "/" + serviceID
}

func (r *memoryServiceRepo) GetByCategory(_ context.Context, categoryID string) ([]models.Service, error) {
	out := []models.Service{}
	for _, s := range r.docs {
		if s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memoryServiceRepo) GetByID(_ context.Context, categoryID, serviceID string) (*models.Service, error) {
	s, ok := r.docs[serviceKey(categoryID, serviceID)]
	if !ok {
		return nil, nil
	}
	s.SubServices = append([]models.SubService{}, s.SubServices...)
	return &s, nil
}

func (r *memoryServiceRepo) Create(_ context.Context, s *models.Service) error {
	key := serviceKey(s.CategoryID, s.ID)
	if _, ok := r.docs[key]; ok {
		return fmt.Errorf("service %s: %w", key, database.ErrDuplicateKey)
	}
	r.docs[key] = *s
	return nil
}

func (r *memoryServiceRepo) UpdateFields(_ context.Context, categoryID, serviceID string, fields bson.M) (*models.Service, error) {
	key := serviceKey(categoryID, serviceID)
	s, ok := r.docs[key]
	if !ok {
		return nil, fmt.Errorf("service %s: %w", key, database.ErrNotFound)
	}
	if v, ok := fields["name"].(string); ok {
		s.Name = v
	}
	if v, ok := fields["description"].(string); ok {
		s.Description = v
	}
	if v, ok := fields["icon"].(string); ok {
		s.Icon = v
	}
	if v, ok := fields["isActive"].(bool); ok {
		s.IsActive = v
	}
	if v, ok := fields["subServices"].([]models.SubService); ok {
		s.SubServices = v
	}
	r.docs[key] = s
	r.writes++
	return &s, nil
}

func (r *memoryServiceRepo) ReplaceSubServices(_ context.Context, categoryID, serviceID string, subs []models.SubService) error {
	key := serviceKey(categoryID, serviceID)
	s, ok := r.docs[key]
	if !ok {
		return fmt.Errorf("service %s: %w", key, database.ErrNotFound)
	}
	s.SubServices = subs
	r.docs[key] = s
	r.writes++
	return nil
}

func (r *memoryServiceRepo) Delete(_ context.Context, categoryID, serviceID string) error {
	key := serviceKey(categoryID, serviceID)
	if _, ok := r.docs[key]; !ok {
		return fmt.Errorf("service %s: %w", key, database.ErrNotFound)
	}
	delete(r.docs, key)
	return nil
}

func newTestCatalog() (*DefaultCatalogService, *memoryCategoryRepo, *memoryServiceRepo) {
	categories := &memoryCategoryRepo{docs: map[string]models.Category{}}
	services := &memoryServiceRepo{docs: map[string]models.Service{}}
	seq := 0
	svc := &DefaultCatalogService{
		Categories: categories,
		Services:   services,
		Cache:      utils.NewMemoryCache(time.Minute),
		NewID: func() string {
			seq++
			return fmt.Sprintf("sub-%d", seq)
		},
		Now: func() time.Time { return time.UnixMilli(1_700_000_000_000) },
	}
	return svc, categories, services
}

func boolPtr(b bool) *bool        { return &b }
func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
