package models

import "time"

// Admin roles.
const (
	RoleSuperAdmin = "super_admin"
	RoleSubAdmin   = "sub_admin"
)

// Capabilities presented by the dashboard. The set is open: any string is
// accepted and stored on an admin.
const (
	CapabilityCategories = "categories"
	CapabilityPartners   = "partners"
	CapabilityUsers      = "users"
	CapabilityBookings   = "bookings"
	CapabilitySettings   = "settings"
)

// Admin is a back-office operator account.
type Admin struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Mobile       string    `bson:"mobile" json:"mobile"`
	Role         string    `bson:"role" json:"role"`
	Access       []string  `bson:"access" json:"access"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// IsValidRole reports whether role is one of the known admin roles.
func IsValidRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleSubAdmin
}
