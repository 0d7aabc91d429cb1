package main

import (
	"fmt"
	"log"
	"os"

	"github.com/familyplate/backend/config"
	httpDelivery "github.com/familyplate/backend/internal/delivery/http"
	"github.com/familyplate/backend/internal/infrastructure/gemini"
	"github.com/familyplate/backend/internal/infrastructure/postgres"
	"github.com/familyplate/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting FamilyPlate Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Connect to the database and run migrations
	db, err := postgres.Open(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := postgres.Seed(db); err != nil {
		log.Fatalf("Failed to seed base data: %v", err)
	}
	log.Printf("Database ready: %s@%s:%s/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	foodRepo := postgres.NewFoodRepo(db)
	nutrientRepo := postgres.NewNutrientRepo(db)
	foodNutrientRepo := postgres.NewFoodNutrientRepo(db)
	logRepo := postgres.NewLogRepo(db)
	recipeRepo := postgres.NewRecipeRepo(db)
	targetRepo := postgres.NewTargetRepo(db)

	// AI estimator
	estimator := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model)
	if cfg.Server.Environment == "development" {
		estimator.SetDebug(true)
		log.Printf("Gemini client debug mode enabled")
	}
	if cfg.Gemini.APIKey != "" {
		log.Printf("Gemini API configured: %s (model: %s)", cfg.Gemini.BaseURL, cfg.Gemini.Model)
	} else {
		log.Printf("WARNING: Gemini API key NOT CONFIGURED - AI features will fail!")
	}

	// Background enrichment worker
	worker := usecase.NewEnrichmentWorker(
		foodRepo,
		nutrientRepo,
		foodNutrientRepo,
		estimator,
		cfg.Enrichment.QueueSize,
		cfg.Enrichment.SweepDelay,
	)
	worker.Start()

	// Usecase layer
	authService := usecase.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userService := usecase.NewUserService(userRepo)
	foodService := usecase.NewFoodService(foodRepo, estimator, worker)
	nutrientService := usecase.NewNutrientService(nutrientRepo, userRepo, targetRepo, worker)
	recipeService := usecase.NewRecipeService(recipeRepo)
	logService := usecase.NewLogService(logRepo, worker)

	aggregator := usecase.NewIntakeAggregator(logRepo, foodRepo, foodNutrientRepo)
	resolver := usecase.NewTargetResolver(userRepo, targetRepo, nutrientRepo, "")
	analyticsService := usecase.NewAnalyticsService(aggregator, resolver, nutrientRepo)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(
		authService,
		userService,
		foodService,
		nutrientService,
		recipeService,
		logService,
		analyticsService,
	)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, authService)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
