package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servit/config"
	"servit/database"
	"servit/database/repository"
	"servit/handlers"
	"servit/routes"
	"servit/services/auth"
	"servit/services/booking"
	"servit/services/catalog"
	"servit/services/dashboard"
	"servit/services/partner"
	"servit/services/user"
	"servit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	if err := database.InitDB(ctx); err != nil {
		logger.Fatal("main: failed to connect to database", zap.Error(err))
	}

	cache, err := utils.NewCacheFromConfig()
	if err != nil {
		logger.Fatal("main: failed to initialize cache", zap.Error(err))
	}

	// repositories.
	adminRepo, err := repository.NewMongoAdminRepo(ctx)
	if err != nil {
		logger.Fatal("main: admin repository", zap.Error(err))
	}
	categoryRepo, err := repository.NewMongoCategoryRepo(ctx)
	if err != nil {
		logger.Fatal("main: category repository", zap.Error(err))
	}
	serviceRepo, err := repository.NewMongoServiceRepo(ctx)
	if err != nil {
		logger.Fatal("main: service repository", zap.Error(err))
	}
	userRepo, err := repository.NewMongoUserRepo(ctx)
	if err != nil {
		logger.Fatal("main: user repository", zap.Error(err))
	}
	partnerRepo, err := repository.NewMongoPartnerRepo(ctx)
	if err != nil {
		logger.Fatal("main: partner repository", zap.Error(err))
	}
	bookingRepo := repository.NewMongoBookingRepo()

	// services.
	authService := &auth.DefaultAuthService{
		Repo:   adminRepo,
		Cache:  cache,
		Signer: utils.NewTokenSigner(config.AppConfig.JWTSecret, config.AppConfig.JWTExpiresIn),
		Hasher: utils.PasswordHasher{Cost: config.AppConfig.BcryptCost},
	}
	catalogService := &catalog.DefaultCatalogService{
		Categories: categoryRepo,
		Services:   serviceRepo,
		Cache:      cache,
	}
	partnerService := &partner.DefaultPartnerService{Repo: partnerRepo}
	userService := &user.DefaultUserService{Repo: userRepo, Bookings: bookingRepo}
	bookingService := &booking.DefaultBookingService{Bookings: bookingRepo, Partners: partnerRepo}
	dashboardService := &dashboard.DefaultDashboardService{
		Users:    userRepo,
		Partners: partnerRepo,
		Bookings: bookingRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService:      authService,
		AuthHandler:      handlers.NewAuthHandler(authService),
		AdminHandler:     handlers.NewAdminHandler(authService),
		CatalogHandler:   handlers.NewCatalogHandler(catalogService),
		PartnerHandler:   handlers.NewPartnerHandler(partnerService),
		UserHandler:      handlers.NewUserHandler(userService),
		BookingHandler:   handlers.NewBookingHandler(bookingService),
		DashboardHandler: handlers.NewDashboardHandler(dashboardService),
	}

	router := gin.New()
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5050"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.Close(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: failed to close database: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
