package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apper-canvas/nutriscancore/config"
	"github.com/apper-canvas/nutriscancore/internal/catalog"
	httpDelivery "github.com/apper-canvas/nutriscancore/internal/delivery/http"
	"github.com/apper-canvas/nutriscancore/internal/domain"
	"github.com/apper-canvas/nutriscancore/internal/infrastructure/cache"
	"github.com/apper-canvas/nutriscancore/internal/infrastructure/persistence"
	"github.com/apper-canvas/nutriscancore/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriScan Core v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Load the food catalog
	foods, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load food catalog: %v", err)
	}
	if cfg.Catalog.Path == "" {
		log.Printf("Catalog: built-in (%d foods)", foods.Len())
	} else {
		log.Printf("Catalog: %s (%d foods)", cfg.Catalog.Path, foods.Len())
	}

	// Initialize infrastructure dependencies
	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := cache.New(startCtx, cache.Options{
		Backend:  cfg.Cache.Type,
		RedisURL: cfg.Cache.RedisURL,
	})
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	var history domain.HistoryRepository
	var repo *persistence.Repository
	if cfg.HistoryEnabled() {
		db, err := persistence.Open(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			log.Fatalf("Failed to open history database: %v", err)
		}
		repo = persistence.NewRepository(db)
		history = repo
	} else {
		log.Printf("History: disabled (no database configured)")
	}

	// Initialize usecase layer
	defaultUnits := domain.UnitSystem(cfg.Server.DefaultUnitSystem)

	recommender := usecase.NewRecommendationService(foods, usecase.RecommendationConfig{
		MealAllocation:    cfg.Recommendation.MealAllocation,
		AlternativesLimit: cfg.Recommendation.AlternativesLimit,
		DefaultAge:        cfg.Recommendation.DefaultAge,
	})

	nutritionService := usecase.NewNutritionService(
		store,
		foods,
		recommender,
		history,
		usecase.NutritionServiceConfig{
			CacheTTL:            cfg.Cache.TTL,
			EnablePreprocessing: cfg.Matching.EnablePreprocessing,
			EnableDebugLogging:  cfg.Matching.EnableDebugLogging,
		},
	)

	log.Printf("Matching: preprocessing=%v, debug=%v",
		cfg.Matching.EnablePreprocessing,
		cfg.Matching.EnableDebugLogging)
	log.Printf("Recommendations: meal allocation=%.0f%%, alternatives=%d",
		cfg.Recommendation.MealAllocation*100,
		cfg.Recommendation.AlternativesLimit)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(httpDelivery.Dependencies{
		Catalog:           foods,
		Nutrition:         nutritionService,
		Recommender:       recommender,
		History:           usecase.NewHistoryService(history, defaultUnits),
		Cache:             store,
		DefaultUnitSystem: defaultUnits,
	})

	// Setup router
	routerCtx, stopRouter := context.WithCancel(context.Background())
	defer stopRouter()
	router := httpDelivery.SetupRouter(routerCtx, cfg, handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	stopRouter()
	if err := store.Close(); err != nil {
		log.Printf("Failed to close cache: %v", err)
	}
	if repo != nil {
		if err := repo.Close(); err != nil {
			log.Printf("Failed to close history database: %v", err)
		}
	}

	log.Printf("Server stopped")
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
