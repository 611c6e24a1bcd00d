package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mithramani/vivaha-backend/config"
	"github.com/mithramani/vivaha-backend/internal/app/controller"
	"github.com/mithramani/vivaha-backend/internal/app/repository"
	"github.com/mithramani/vivaha-backend/internal/app/service"
	"github.com/mithramani/vivaha-backend/internal/db"
	"github.com/mithramani/vivaha-backend/internal/metrics"
	"github.com/mithramani/vivaha-backend/internal/notify"
	"github.com/mithramani/vivaha-backend/internal/router"
	"github.com/mithramani/vivaha-backend/internal/scheduler"
	"github.com/mithramani/vivaha-backend/internal/storage"
	"github.com/mithramani/vivaha-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting VIVAHA Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	metrics.Register()

	// Connect to the database
	database, err := db.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed reference data (idempotent)
	if err := db.SeedReferenceData(database); err != nil {
		logger.Warn("Failed to seed reference data", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	vendorRepo := repository.NewVendorRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	locationRepo := repository.NewLocationRepository(database)
	inquiryRepo := repository.NewInquiryRepository(database)

	// Initialize the inquiry notification pipeline
	notifier := notify.NewEmailNotifier(cfg.Notify)
	dispatcher := notify.NewDispatcher(notifier, cfg.Notify.QueueSize, notify.DefaultRetryPolicy())
	defer dispatcher.Stop()

	// Initialize services
	catalogService := service.NewCatalogService(vendorRepo, categoryRepo, locationRepo)
	inquiryService := service.NewInquiryService(inquiryRepo, vendorRepo, dispatcher)

	// Initialize controllers
	catalogController := controller.NewCatalogController(catalogService)
	inquiryController := controller.NewInquiryController(inquiryService)

	var uploadController *controller.UploadController
	if cfg.S3.Bucket != "" {
		s3Storage := storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
		uploadController = controller.NewUploadController(s3Storage)
	}

	// Start the nightly rating recomputation
	ratingScheduler := scheduler.NewRatingScheduler(vendorRepo)
	if err := ratingScheduler.Start(); err != nil {
		logger.Fatal("Failed to start rating scheduler", err)
	}
	defer ratingScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		catalogController,
		inquiryController,
		uploadController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
