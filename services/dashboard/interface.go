package dashboard

import (
	"context"
	"time"

	bookingRepo "servit/database/repository/booking"
	partnerRepo "servit/database/repository/partner"
	userRepo "servit/database/repository/user"
	"servit/models"
)

// DashboardService computes the overview screen figures. Each call reads the
// collections it needs in full.
type DashboardService interface {
	Stats(ctx context.Context) (*Stats, error)
	RecentBookings(ctx context.Context) ([]RecentBooking, error)
	PendingValidations(ctx context.Context) ([]models.PartnerView, error)
	BookingTrends(ctx context.Context) ([]WeekTrend, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Users    userRepo.UserRepository
	Partners partnerRepo.PartnerRepository
	Bookings bookingRepo.BookingRepository
	Now      func() time.Time
}

func (s *DefaultDashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type UserStats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Blocked int `json:"blocked"`
	Change  int `json:"change"`
}

type PartnerStats struct {
	Total    int `json:"total"`
	Verified int `json:"verified"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
	Change   int `json:"change"`
}

type BookingStats struct {
	Total     int `json:"total"`
	Monthly   int `json:"monthly"`
	Pending   int `json:"pending"`
	Accepted  int `json:"accepted"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Change    int `json:"change"`
}

type Stats struct {
	Users    UserStats    `json:"users"`
	Partners PartnerStats `json:"partners"`
	Bookings BookingStats `json:"bookings"`
}

// RecentBooking is a booking with its owner and provider display name.
type RecentBooking struct {
	models.Booking
	UserID       string `json:"userId"`
	UserName     string `json:"userName,omitempty"`
	UserMobileNo string `json:"userMobileNo,omitempty"`
	ProviderName string `json:"providerName"`
}

type WeekTrend struct {
	Week      string `json:"week"`
	Bookings  int    `json:"bookings"`
	WeekStart int64  `json:"weekStart"`
	WeekEnd   int64  `json:"weekEnd"`
}
