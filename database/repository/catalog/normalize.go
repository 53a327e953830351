package catalogRepo

import (
	"fmt"

	"servit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// rawService mirrors a stored service before sub-service normalization.
// Older documents keep subServices as a map of name to fields.
type rawService struct {
	ID          string        `bson:"id"`
	CategoryID  string        `bson:"categoryId"`
	Name        string        `bson:"name"`
	Description string        `bson:"description"`
	Icon        string        `bson:"icon"`
	IsActive    bool          `bson:"isActive"`
	SubServices bson.RawValue `bson:"subServices"`
	CreatedAt   int64         `bson:"createdAt"`
}

func (r rawService) normalize() (models.Service, error) {
	subs, err := decodeSubServices(r.SubServices)
	if err != nil {
		return models.Service{}, fmt.Errorf("service %s/%s: %w", r.CategoryID, r.ID, err)
	}
	return models.Service{
		ID:          r.ID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		IsActive:    r.IsActive,
		SubServices: subs,
		CreatedAt:   r.CreatedAt,
	}, nil
}

// decodeSubServices accepts either the array form or the legacy map form.
// Legacy entries keep their stored order and take their name from the key
// when the embedded document has none.
func decodeSubServices(v bson.RawValue) ([]models.SubService, error) {
	subs := []models.SubService{}
	switch v.Type {
	case bsontype.Array:
		if err := v.Unmarshal(&subs); err != nil {
			return nil, fmt.Errorf("failed to decode sub-services: %w", err)
		}
	case bsontype.EmbeddedDocument:
		elems, err := v.Document().Elements()
		if err != nil {
			return nil, fmt.Errorf("failed to read legacy sub-services: %w", err)
		}
		for _, elem := range elems {
			var sub models.SubService
			if val := elem.Value(); val.Type == bsontype.EmbeddedDocument {
				if err := val.Unmarshal(&sub); err != nil {
					return nil, fmt.Errorf("failed to decode legacy sub-service %q: %w", elem.Key(), err)
				}
			}
			if sub.Name == "" {
				sub.Name = elem.Key()
			}
			subs = append(subs, sub)
		}
	}
	return subs, nil
}
