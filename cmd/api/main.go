package main

import (
	"fmt"
	"net/http"
	"os"
	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/handlers"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/services"
	"spendwise/internal/storage"
	"spendwise/internal/store"
	"spendwise/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "spendwise/internal/docs" // Import swagger docs
)

// @title           SpendWise API
// @version         1.0
// @description     SpendWise tracks irregular work income, subscription expenses, and a savings target, and derives monthly financial rollups for dashboards and reports.

// @host      localhost:8080
// @BasePath  /api/v1

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

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Load persisted state into the in-memory store
	repo := storage.NewRepository(dbManager.DB())
	state, corrections, err := repo.Load()
	if err != nil {
		return fmt.Errorf("failed to load persisted state: %w", err)
	}
	for _, fix := range corrections {
		log.Warnf("Corrected persisted field %s: %s", fix.Path, fix.Reason)
	}

	st := store.New(state)

	// Persist every state transition back to the database
	st.Subscribe(func() {
		if err := repo.Save(st.Snapshot()); err != nil {
			log.Errorf("Failed to persist state: %v", err)
		}
	})

	// Register custom request validators
	validator.Register()

	// Initialize services
	workService := services.NewWorkService(st)
	subService := services.NewSubscriptionService(st)
	groupService := services.NewGroupService(st)
	settingsService := services.NewSettingsService(st)
	rollupService := services.NewRollupService(st)
	reportService := services.NewReportService(st)
	stateService := services.NewStateService(st)

	// Initialize handlers
	workHandler := handlers.NewWorkHandler(workService)
	subHandler := handlers.NewSubscriptionHandler(subService)
	groupHandler := handlers.NewGroupHandler(groupService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	rollupHandler := handlers.NewRollupHandler(rollupService)
	reportHandler := handlers.NewReportHandler(reportService)
	stateHandler := handlers.NewStateHandler(stateService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Work income routes
	work := v1.Group("/work")
	work.POST("", workHandler.AddWork)
	work.GET("", workHandler.GetWork)
	work.GET("/weeks", workHandler.GetWeekBuckets)
	work.DELETE("/:id", workHandler.DeleteWork)

	// Subscription routes
	subs := v1.Group("/subscriptions")
	subs.POST("", subHandler.AddSubscription)
	subs.GET("", subHandler.GetSubscriptions)
	subs.GET("/top", subHandler.GetTopSubscriptions)
	subs.POST("/:id/toggle", subHandler.ToggleSubscription)
	subs.DELETE("/:id", subHandler.DeleteSubscription)

	// Subscription group routes
	groups := v1.Group("/groups")
	groups.POST("", groupHandler.AddGroup)
	groups.GET("", groupHandler.GetGroups)
	groups.POST("/:id/apply", groupHandler.ApplyGroup)
	groups.DELETE("/:id", groupHandler.DeleteGroup)

	// Settings routes
	settings := v1.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PATCH("", settingsHandler.UpdateSettings)
	settings.PUT("/active-group", groupHandler.SetActiveGroup)

	// Rollup routes
	rollup := v1.Group("/rollup")
	rollup.GET("", rollupHandler.GetRollup)
	rollup.GET("/trend", rollupHandler.GetTrend)

	// Report routes
	reports := v1.Group("/reports")
	reports.POST("", reportHandler.CreateReport)
	reports.GET("", reportHandler.GetReports)
	reports.GET("/:id/payload", reportHandler.GetReportPayload)
	reports.DELETE("", reportHandler.ClearReports)

	// State routes
	stateRoutes := v1.Group("/state")
	stateRoutes.GET("/export", stateHandler.ExportState)
	stateRoutes.POST("/import", stateHandler.ImportState)
	stateRoutes.POST("/reset", stateHandler.ResetState)

	log.Infof("Starting SpendWise backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
