package routes

import (
	"cd-console-backend/internal/api/handlers"
	"cd-console-backend/internal/auth"
	"cd-console-backend/internal/config"
	"cd-console-backend/internal/provider"
	"cd-console-backend/internal/repository"
	"cd-console-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokenRepo := repository.NewProviderTokenRepository(db)

	// Initialize provider client
	webhookClient := provider.NewGitHubWebhookClient(cfg.WebhookBaseURL)

	// Initialize services
	authService := auth.NewAuthService(userRepo, orgRepo, memberRepo, cfg.JWTSecret, cfg.SessionExpiration)
	applicationService := service.NewApplicationService(appRepo, taskRepo, orgRepo, tokenRepo, webhookClient, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, authService, orgRepo, tokenRepo)

	// Public routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/logout", authHandler.Logout)

	// Authenticated API routes
	authMiddleware := auth.NewAuthMiddleware(authService)
	api := router.Group("/api", authMiddleware.RequireAuth())
	{
		api.POST("/applications/preview", applicationHandler.Preview)
		api.GET("/applications/:id", applicationHandler.Get)
		api.GET("/applications/:id/tasks", applicationHandler.ListTasks)

		org := api.Group("/orgs/:orgName")
		{
			org.GET("/applications", applicationHandler.List)
			org.POST("/applications", applicationHandler.Create)
			org.PUT("/applications/:id", applicationHandler.Update)
			org.DELETE("/applications/:id", applicationHandler.Remove)
			org.POST("/applications/:id/transfer", applicationHandler.Transfer)
			org.DELETE("/applications/:id/environments/:envName", applicationHandler.RemoveEnv)
		}
	}

	return router
}
