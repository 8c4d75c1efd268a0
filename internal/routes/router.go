package routes

import (
	"github.com/gin-gonic/gin"

	"sentiment-analysis-api/internal/config"
	"sentiment-analysis-api/internal/delivery/http/handler"
	"sentiment-analysis-api/internal/infrastructure/database/postgres"
	"sentiment-analysis-api/internal/logger"
	"sentiment-analysis-api/internal/middleware"
	"sentiment-analysis-api/internal/sentiment"
	"sentiment-analysis-api/internal/usecase/auth"
	"sentiment-analysis-api/internal/usecase/prediction"
	"sentiment-analysis-api/internal/usecase/user"
)

// SetupRoutes wires repositories, services and handlers onto a gin engine.
// classifier may be nil when the model artifact could not be loaded.
func SetupRoutes(cfg *config.Config, db *postgres.DB, classifier *sentiment.Classifier) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	userRepository := postgres.NewUserRepository(db)
	authService := auth.NewService(userRepository, cfg)
	userService := user.NewService(userRepository)

	// Avoid handing the service a non-nil interface wrapping a nil pointer.
	var clf prediction.Classifier
	if classifier != nil {
		clf = classifier
	}
	predictionService := prediction.NewService(clf, cfg)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	predictionHandler := handler.NewPredictionHandler(predictionService)
	protectedHandler := handler.NewProtectedHandler(cfg)
	healthHandler := handler.NewHealthHandler(cfg, db, predictionService)

	healthHandler.RegisterRoutes(router)

	api := router.Group("/api")
	{
		authHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg, userRepository))
		{
			userHandler.RegisterRoutes(protected)
			predictionHandler.RegisterRoutes(protected)
			protectedHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
