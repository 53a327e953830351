package bookingRepo

import (
	"context"

	"servit/models"
)

// BookingRepository reads the per-customer Bookings collection. Bookings are
// written by the mobile backend, so there are no mutations here.
type BookingRepository interface {
	// GetAll returns every customer bookings document.
	GetAll(ctx context.Context) ([]models.CustomerBookings, error)
	// GetByUserID returns nil, nil when the customer has no bookings document.
	GetByUserID(ctx context.Context, userID string) (*models.CustomerBookings, error)
}
