package routes

import (
	"time"

	"symtrack/internal/api/handlers"
	"symtrack/internal/api/middleware"
	"symtrack/internal/config"
	"symtrack/internal/services"
	myvalidator "symtrack/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRoutes wires middleware, services and handlers onto the router. The
// redis client may be nil, in which case login rate limiting is skipped.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client) {
	// Register custom validators on the binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("gender", myvalidator.IsGender)
	}

	// Initialize services
	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db, cfg)
	symptomService := services.NewSymptomService(db)
	activityService := services.NewActivityService(db)
	patternService := services.NewPatternService(db)
	seedService := services.NewSeedService(db, cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	symptomHandler := handlers.NewSymptomHandler(symptomService)
	activityHandler := handlers.NewActivityHandler(activityService)
	patternHandler := handlers.NewPatternHandler(patternService)
	adminHandler := handlers.NewAdminHandler(seedService)

	audit := func(action string) gin.HandlerFunc {
		return middleware.Audit(activityService, action)
	}

	// Middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "symtrack API is running",
			})
		})

		// Auth routes (public). Audit rows are written only once the handler
		// has established an identity.
		auth := api.Group("/auth")
		{
			auth.POST("/register", audit("register"), authHandler.Register)

			loginHandlers := []gin.HandlerFunc{audit("login"), authHandler.Login}
			if cfg.Security.RateLimit.Enabled && rdb != nil {
				limiter := middleware.LoginRateLimiter(rdb,
					int64(cfg.Security.RateLimit.RequestsPerMinute), time.Minute)
				loginHandlers = append([]gin.HandlerFunc{limiter}, loginHandlers...)
			}
			auth.POST("/login", loginHandlers...)
		}

		// Directory reads and the population-level aggregation are public
		api.GET("/users", userHandler.GetUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.GET("/symptoms/patterns", patternHandler.GetPatterns)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		// Auth routes (protected)
		protected.POST("/auth/logout", audit("logout"), authHandler.Logout)
		protected.GET("/auth/me", authHandler.GetMe)

		// User management routes
		users := protected.Group("/users")
		{
			users.PUT("/:id", audit("update_user"), userHandler.UpdateUser)
			users.DELETE("/:id", audit("delete_user"), userHandler.DeleteUser)

			// Symptom routes, owner-scoped for mutation
			users.POST("/:id/symptoms", audit("create_symptom"), symptomHandler.CreateSymptom)
			users.GET("/:id/symptoms", symptomHandler.GetSymptoms)
			users.PUT("/:id/symptoms/:sid", audit("update_symptom"), symptomHandler.UpdateSymptom)
			users.DELETE("/:id/symptoms/:sid", audit("delete_symptom"), symptomHandler.DeleteSymptom)

			// Audit trail, owner-or-admin
			users.GET("/:id/activity_logs", activityHandler.GetActivityLogs)
		}

		// Admin routes
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/seed", audit("seed"), adminHandler.Seed)
		}
	}
}
