package routes

import (
	"net/http"
	"time"

	"servit/config"
	"servit/handlers"
	"servit/middleware"
	"servit/models"
	"servit/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, registration and session endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, authMW gin.HandlerFunc) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", hb.AuthHandler.RegisterHandler)
		authGroup.POST("/login", hb.AuthHandler.LoginHandler)
		authGroup.POST("/logout", hb.AuthHandler.LogoutHandler)

		// Protected routes (Require Authentication)
		authGroup.GET("/me", authMW, hb.AuthHandler.MeHandler)
		authGroup.POST("/refresh", authMW, hb.AuthHandler.RefreshHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for operator account management.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, authMW gin.HandlerFunc) {
	settings := middleware.RequireCapability(models.CapabilitySettings)
	api.GET("/admins", authMW, settings, hb.AdminHandler.ListAdminsHandler)
	api.PUT("/admin/:id/status", authMW, settings, hb.AdminHandler.UpdateAdminStatusHandler)
}

// RegisterCatalogRoutes registers category, service and sub-service endpoints.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, authMW gin.HandlerFunc) {
	h := hb.CatalogHandler
	categories := api.Group("/categories", authMW, middleware.RequireCapability(models.CapabilityCategories))
	{
		categories.GET("", h.ListCategoriesHandler)
		categories.POST("", h.CreateCategoryHandler)
		categories.PATCH("/:categoryId", h.UpdateCategoryHandler)
		categories.DELETE("/:categoryId", h.DeleteCategoryHandler)

		categories.GET("/:categoryId/services", h.ListServicesHandler)
		categories.POST("/:categoryId/services", h.CreateServiceHandler)
		categories.GET("/:categoryId/services/:serviceId", h.GetServiceHandler)
		categories.PATCH("/:categoryId/services/:serviceId", h.UpdateServiceHandler)
		categories.DELETE("/:categoryId/services/:serviceId", h.DeleteServiceHandler)

		categories.POST("/:categoryId/services/:serviceId/subservices", h.AddSubServiceHandler)
		categories.PATCH("/:categoryId/services/:serviceId/subservices/:subId", h.UpdateSubServiceHandler)
		categories.DELETE("/:categoryId/services/:serviceId/subservices/:subId", h.DeleteSubServiceHandler)
	}
}

// RegisterPartnerRoutes registers partner directory endpoints.
func RegisterPartnerRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, authMW gin.HandlerFunc) {
	h := hb.PartnerHandler
	partners := api.Group("/partners", authMW, middleware.RequireCapability(models.CapabilityPartners))
	{
		partners.GET("", h.ListPartnersHandler)
		partners.GET("/:partnerId", h.GetPartnerHandler)
		partners.POST("/:partnerId/verify", h.VerifyPartnerHandler)
		partners.POST("/:partnerId/reject", h.RejectPartnerHandler)
	}
}

// RegisterUserRoutes registers customer directory endpoints.
func RegisterUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, authMW gin.HandlerFunc) {
	h := hb.UserHandler
	users := api.Group("/users", authMW, middleware.RequireCapability(models.CapabilityUsers))
	{
		users.GET("", h.ListUsersHandler)
		users.GET("/:userId", h.GetUserHandler)
		users.PATCH("/:userId/status", h.UpdateUserStatusHandler)
		users.DELETE("/:userId", h.DeleteUserHandler)
		users.GET("/:userId/bookings", h.UserBookingsHandler)
	}
}

// RegisterBookingRoutes registers the booking views.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, authMW gin.HandlerFunc) {
	bookings := api.Group("/bookings", authMW, middleware.RequireCapability(models.CapabilityBookings))
	{
		bookings.GET("", hb.BookingHandler.ListBookingsHandler)
		bookings.GET("/:bookingId", hb.BookingHandler.GetBookingHandler)
	}
}

// RegisterDashboardRoutes registers the overview endpoints. Any signed-in
// admin may read them.
func RegisterDashboardRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, authMW gin.HandlerFunc) {
	h := hb.DashboardHandler
	dashboard := api.Group("/dashboard", authMW)
	{
		dashboard.GET("/stats", h.StatsHandler)
		dashboard.GET("/recent-bookings", h.RecentBookingsHandler)
		dashboard.GET("/pending-validations", h.PendingValidationsHandler)
		dashboard.GET("/booking-trends", h.BookingTrendsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(api *gin.RouterGroup) {
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": config.GetEnv()})
	})
}

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", utils.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", utils.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	origins := config.AllowedOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		// Reflect the caller's origin; a literal "*" is not allowed with credentials.
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(
		middleware.RequestLogger(),
		utils.ErrorHandler(),
		cors.New(corsConfig()),
		middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin),
	)

	authMW := middleware.JWTAuthAdminMiddleware(hb.AuthService)
	api := r.Group("/api")

	RegisterHealthRoute(api)
	RegisterAuthRoutes(api, hb, authMW)
	RegisterAdminRoutes(api, hb, authMW)
	RegisterCatalogRoutes(api, hb, authMW)
	RegisterPartnerRoutes(api, hb, authMW)
	RegisterUserRoutes(api, hb, authMW)
	RegisterBookingRoutes(api, hb, authMW)
	RegisterDashboardRoutes(api, hb, authMW)
}
