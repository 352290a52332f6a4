package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"budgetapi/internal/config"
	"budgetapi/internal/database"
	"budgetapi/internal/handlers"
	"budgetapi/internal/logger"
	"budgetapi/internal/metrics"
)

// @title           Budget API
// @version         1.0
// @description     Personal budget tracking: accounts, categories, income and expense transactions, and period statistics.

// @host      localhost:8080
// @BasePath  /

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	gin.SetMode(appConfig.GinMode)

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(os.Getenv("MIGRATIONS_SOURCE")); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	m := metrics.New()
	db := dbManager.DB()

	router := handlers.NewRouter(handlers.RouterConfig{
		Services:  handlers.NewServices(db, m),
		ErrorMode: appConfig.ErrorMode,
		DB:        db,
		Metrics:   m,
	})
	handlers.RegisterOpsRoutes(router, dbManager, m)

	log.Infow("Starting budget API server",
		"port", appConfig.Port,
		"error_mode", appConfig.ErrorMode,
		"schema", dbConfig.Schema,
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
