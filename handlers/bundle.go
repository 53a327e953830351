package handlers

import (
	"servit/services/auth"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AuthService auth.AuthService

	AuthHandler      *AuthHandler
	AdminHandler     *AdminHandler
	CatalogHandler   *CatalogHandler
	PartnerHandler   *PartnerHandler
	UserHandler      *UserHandler
	BookingHandler   *BookingHandler
	DashboardHandler *DashboardHandler
}
