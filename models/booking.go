package models

// Booking is one job embedded in a customer's bookings document. Bookings
// are written by the mobile backend; this service only reads them.
type Booking struct {
	BookingID           string                        `bson:"bookingId" json:"bookingId"`
	ServiceName         string                        `bson:"serviceName" json:"serviceName"`
	BookingStatus       string                        `bson:"bookingStatus" json:"bookingStatus"`
	ProviderID          string                        `bson:"providerId,omitempty" json:"providerId,omitempty"`
	TotalPrice          float64                       `bson:"totalPrice" json:"totalPrice"`
	CreatedAt           int64                         `bson:"createdAt" json:"createdAt"`
	AcceptedAt          *int64                        `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
	ServiceStartedAt    *int64                        `bson:"serviceStartedAt,omitempty" json:"serviceStartedAt,omitempty"`
	ArrivedAt           *int64                        `bson:"arrivedAt,omitempty" json:"arrivedAt,omitempty"`
	CompletedAt         *int64                        `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	JobCoordinates      *Coordinates                  `bson:"jobCoordinates,omitempty" json:"jobCoordinates,omitempty"`
	SubServicesSelected map[string]SelectedSubService `bson:"subServicesSelected,omitempty" json:"subServicesSelected,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

type SelectedSubService struct {
	Price       float64 `bson:"price" json:"price"`
	Unit        string  `bson:"unit,omitempty" json:"unit,omitempty"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Booking statuses counted by the dashboard.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// CustomerBookings is the per-customer document of the Bookings collection,
// keyed by the customer id.
type CustomerBookings struct {
	UserID   string    `bson:"id" json:"id"`
	Address  string    `bson:"address" json:"address"`
	UserName string    `bson:"userName" json:"userName,omitempty"`
	MobileNo string    `bson:"mobileNo" json:"mobileNo,omitempty"`
	Bookings []Booking `bson:"bookings" json:"bookings,omitempty"`
}
