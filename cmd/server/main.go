package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "apnrghor-backend/internal/api/http"
	"apnrghor-backend/internal/config"
	"apnrghor-backend/internal/gateway"
	"apnrghor-backend/internal/jobs"
	"apnrghor-backend/internal/logger"
	"apnrghor-backend/internal/repository/postgres"
	"apnrghor-backend/internal/scheduler"
	"apnrghor-backend/internal/security"
	"apnrghor-backend/internal/service"
	"apnrghor-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ApnrGhor backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Token Verifier
	var verifier security.TokenVerifier
	switch cfg.Auth.Mode {
	case "firebase":
		logger.Info("Using Firebase token verification", "credentials_file", cfg.Auth.CredentialsFile)
		verifier, err = security.NewFirebaseVerifier(context.Background(), cfg.Auth.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize firebase verifier", "error", err)
			log.Fatalf("Failed to initialize firebase verifier: %v", err)
		}
	default:
		logger.Info("Using JWT token verification")
		verifier = security.NewJWTVerifier(cfg.Auth.JWTSecret)
	}

	// Initialize Storage Service
	localStorage, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	var storageService storage.StorageInterface = localStorage

	// Initialize Payment Gateway
	paymentGateway := gateway.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)
	logger.Info("Payment gateway initialized", "gateway", paymentGateway.Name())

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	// Initialize Services
	agreementSvc := service.NewAgreementService(
		store.AgreementRepository,
		store.ApartmentRepository,
		store.UserRepository,
		emailSvc,
	)
	apartmentSvc := service.NewApartmentService(store.ApartmentRepository, store.UserRepository)
	userSvc := service.NewUserService(store.UserRepository, storageService)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.AgreementRepository,
		store.CouponRepository,
		paymentGateway,
	)
	couponSvc := service.NewCouponService(store.CouponRepository)
	announcementSvc := service.NewAnnouncementService(store.AnnouncementRepository)

	// Initialize HTTP handlers
	handlers := &httpapi.Handlers{
		Apartment:    httpapi.NewApartmentHandler(apartmentSvc),
		User:         httpapi.NewUserHandler(userSvc, cfg.Storage.MaxFileSize),
		Agreement:    httpapi.NewAgreementHandler(agreementSvc),
		Payment:      httpapi.NewPaymentHandler(paymentSvc),
		Coupon:       httpapi.NewCouponHandler(couponSvc),
		Announcement: httpapi.NewAnnouncementHandler(announcementSvc),
	}
	guard := httpapi.NewGuard(verifier, store.UserRepository)
	router := httpapi.NewRouter(handlers, guard, cfg.Server.AllowedOrigins, localStorage)

	// Start the reconciliation scheduler
	jobRunner := jobs.NewJobRunner(store.ApartmentRepository, store.AgreementRepository, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
}
