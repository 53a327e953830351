package userRepo

import (
	"context"

	"servit/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for customer data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. It returns nil, nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// List retrieves users matching the filter, one page at a time.
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	// GetAll retrieves every user, for dashboard counts.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpdateFields applies a $set document; database.ErrNotFound when absent.
	UpdateFields(ctx context.Context, id string, fields bson.M) error
	// Delete removes a user record; database.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}
