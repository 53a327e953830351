package models

// User is a marketplace customer.
type User struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	PhoneNumber string  `bson:"phoneNumber" json:"phoneNumber"`
	Address     string  `bson:"address" json:"address"`
	Latitude    float64 `bson:"latitude" json:"latitude"`
	Longitude   float64 `bson:"longitude" json:"longitude"`
	Blocked     bool    `bson:"blocked" json:"blocked"`
	BlockedAt   *int64  `bson:"blockedAt" json:"blockedAt"`
	UnblockedAt *int64  `bson:"unblockedAt" json:"unblockedAt"`
	BlockReason string  `bson:"blockReason" json:"blockReason"`
	CreatedAt   int64   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64   `bson:"updatedAt" json:"updatedAt"`
	LastLogin   int64   `bson:"lastLogin" json:"lastLogin"`
}

// UserFilter narrows a user listing.
type UserFilter struct {
	Blocked *bool
	Limit   int64
	Offset  int64
}
