package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/nutriscancore/config"
)

// SetupRouter creates and configures the Gin router. Background work
// started by middleware stops when ctx is done.
func SetupRouter(ctx context.Context, cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(ctx, cfg.RateLimit.PerIP, cfg.RateLimit.Burst))
	{
		foods := v1.Group("/foods")
		{
			foods.GET("", handler.ListFoods)
			foods.GET("/categories", handler.ListCategories)
			foods.POST("/recognize", handler.RecognizeFood)
			foods.GET("/:id", handler.GetFood)
			foods.GET("/:id/analysis", handler.GetFoodAnalysis)
			foods.GET("/:id/alternatives", handler.GetAlternatives)
		}

		v1.POST("/profile/bmi", handler.CalculateBMI)
		v1.POST("/nutrition/analyze", handler.AnalyzeNutrition)

		if handler.HistoryEnabled() {
			profiles := v1.Group("/profiles")
			{
				profiles.POST("", handler.CreateProfile)
				profiles.GET("", handler.ListProfiles)
				profiles.GET("/:id", handler.GetProfile)
				profiles.PUT("/:id", handler.UpdateProfile)
				profiles.DELETE("/:id", handler.DeleteProfile)
			}

			analyses := v1.Group("/analyses")
			{
				analyses.GET("", handler.ListAnalyses)
				analyses.GET("/:id", handler.GetAnalysis)
				analyses.DELETE("/:id", handler.DeleteAnalysis)
			}
		}
	}

	return router
}
