package user

import (
	"context"
	"time"

	bookingRepo "servit/database/repository/booking"
	userRepo "servit/database/repository/user"
	"servit/models"
)

type UserService interface {
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	// SetBlocked blocks or unblocks a customer. Blocking requires a reason.
	SetBlocked(ctx context.Context, id string, blocked bool, reason string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	BookingHistory(ctx context.Context, id string) (*BookingHistory, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Now      func() time.Time
}

// BookingHistory is a customer's bookings, newest first. Address is nil when
// the customer has no bookings document.
type BookingHistory struct {
	UserID   string           `json:"userId"`
	Bookings []models.Booking `json:"bookings"`
	Address  *string          `json:"address"`
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)
