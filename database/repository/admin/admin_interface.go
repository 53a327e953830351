package adminRepo

import (
	"context"

	"servit/models"
)

// AdminRepository defines methods for back-office operator accounts.
type AdminRepository interface {
	// Create inserts a new admin. database.ErrDuplicateKey when the email is taken.
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	// GetAll returns every admin, newest first.
	GetAll(ctx context.Context) ([]models.Admin, error)
	SetActive(ctx context.Context, id string, active bool) error
}
