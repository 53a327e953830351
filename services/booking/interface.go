package booking

import (
	"context"

	bookingRepo "servit/database/repository/booking"
	partnerRepo "servit/database/repository/partner"
	"servit/models"
)

// BookingService answers the admin booking queries. Bookings live embedded
// in per-customer documents, so every query scans the whole collection.
type BookingService interface {
	ListBookings(ctx context.Context, filter Filter) (*ListResult, error)
	GetBookingDetails(ctx context.Context, bookingID string) (*Details, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Partners partnerRepo.PartnerRepository
}

// Filter holds the conjunctive booking filters. Zero values mean "not set".
type Filter struct {
	BookingID  string `form:"bookingId"`
	Service    string `form:"service"`
	City       string `form:"city"`
	Pincode    string `form:"pincode"`
	Status     string `form:"status"`
	ProviderID string `form:"providerId"`
	StartDate  int64  `form:"startDate"`
	EndDate    int64  `form:"endDate"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

const DefaultLimit = 50

// Row is a flattened booking with its owner and derived address fields.
type Row struct {
	models.Booking
	UserID       string              `json:"userId"`
	UserAddress  string              `json:"userAddress"`
	UserPincode  string              `json:"userPincode,omitempty"`
	UserCity     string              `json:"userCity,omitempty"`
	UserName     string              `json:"userName,omitempty"`
	UserMobileNo string              `json:"userMobileNo,omitempty"`
	ProviderInfo *models.PartnerView `json:"providerInfo"`
}

// Facets are the distinct values of the filtered set, in first-seen order.
type Facets struct {
	Services []string `json:"services"`
	Cities   []string `json:"cities"`
	Pincodes []string `json:"pincodes"`
	Statuses []string `json:"statuses"`
}

type ListResult struct {
	Bookings []Row  `json:"bookings"`
	Total    int    `json:"total"`
	Filters  Facets `json:"filters"`
}

// UserInfo describes the customer owning a booking.
type UserInfo struct {
	ID       string `json:"id"`
	Address  string `json:"address"`
	UserName string `json:"userName,omitempty"`
	MobileNo string `json:"mobileNo,omitempty"`
}

type Details struct {
	Booking      Row                 `json:"booking"`
	ProviderInfo *models.PartnerView `json:"providerInfo"`
	UserInfo     UserInfo            `json:"userInfo"`
}
