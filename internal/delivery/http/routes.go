package http

import (
	"github.com/gin-gonic/gin"

	"github.com/familyplate/backend/config"
	"github.com/familyplate/backend/internal/usecase"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, auth *usecase.AuthService) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIPPerMinute))

	// Health check endpoint
	router.GET("/", handler.HealthCheck)

	api := router.Group("/api")
	{
		// Public auth endpoints
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", handler.Register)
			authGroup.POST("/login", handler.Login)
		}

		// Everything else requires a valid token
		protected := api.Group("")
		protected.Use(AuthRequired(auth))
		{
			users := protected.Group("/users")
			{
				users.GET("", handler.ListUsers)
				users.GET("/:id", handler.GetUser)
				users.PUT("/:id", handler.UpdateProfile)
			}

			foods := protected.Group("/foods")
			{
				foods.GET("/search", handler.SearchFoods)
				foods.POST("/custom", handler.CreateCustomFood)
				foods.POST("/smart-match", handler.SmartMatchFood)
			}

			protected.GET("/nutrients", handler.ListNutrients)

			recipes := protected.Group("/recipes")
			{
				recipes.GET("", handler.ListRecipes)
				recipes.GET("/:id", handler.GetRecipe)
				recipes.POST("", handler.CreateRecipe)
				recipes.PUT("/:id", handler.UpdateRecipe)
				recipes.DELETE("/:id", handler.DeleteRecipe)
			}

			logs := protected.Group("/logs")
			{
				logs.POST("", handler.CreateLog)
				logs.GET("/recent", handler.RecentLogs)
				logs.PUT("/:id", handler.UpdateLog)
				logs.DELETE("/:id", handler.DeleteLog)
			}

			analytics := protected.Group("/analytics")
			{
				analytics.GET("/day", handler.AnalyticsDay)
				analytics.GET("/history", handler.AnalyticsHistory)
			}

			protected.POST("/ai/parse-meal", handler.ParseMeal)

			// Admin-only endpoints
			admin := protected.Group("")
			admin.Use(AdminRequired())
			{
				admin.POST("/users", handler.CreateUser)
				admin.PUT("/users/:id/password", handler.ResetPassword)
				admin.POST("/admin/nutrients", handler.AddNutrient)
			}
		}
	}

	return router
}
