package main

import (
	"os"

	"inventory_app/config"
	"inventory_app/internal/delivery"
	"inventory_app/internal/repository"
	"inventory_app/internal/storage"
	"inventory_app/internal/usecase"
	"inventory_app/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	//  Configuration and Logging Setup
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level %q, keeping default", cfg.LogLevel)
	}

	logger.Info("Starting inventory application...")

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	if err := db.Migrate(database); err != nil {
		logger.Fatalf("Failed to create database schema: %v", err)
	}
	logger.Info("Database connection established.")

	// --- Image Store ---
	imageStore, err := storage.NewDiskStore(cfg.UploadDir, logger)
	if err != nil {
		logger.Fatalf("Failed to prepare upload directory: %v", err)
	}
	logger.Infof("Image store ready at %s", cfg.UploadDir)

	// --- Dependency Injection ---
	categoryRepo := repository.NewPostgresCategoryRepository(database, logger)
	productRepo := repository.NewPostgresProductRepository(database, logger)
	logger.Info("Repositories initialized.")

	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, imageStore, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, imageStore, logger)
	logger.Info("Use cases initialized.")

	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	router.SetHTMLTemplate(delivery.Templates())
	router.Static(storage.URLPrefix, cfg.UploadDir)

	// Route Registration
	categoryHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	logger.Info("Routes registered.")

	//  Start Server
	logger.Infof("Starting server on %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"status": c.Writer.Status(),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Info("Request completed")
	}
}
