package partnerRepo

import (
	"context"

	"servit/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PartnerRepository defines methods for service-provider records. Every
// partner returned is already normalized.
type PartnerRepository interface {
	GetAll(ctx context.Context) ([]models.Partner, error)
	// GetByID returns nil, nil when the partner does not exist.
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	// UpdateFields applies a $set/$unset update; database.ErrNotFound when absent.
	UpdateFields(ctx context.Context, id string, set bson.M, unset []string) error
}
