package handlers

import (
	"log/slog"

	"github.com/cardwise/cardwise_backend/cmd/docs"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/middleware"
	"github.com/cardwise/cardwise_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", getHealth)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Protected /api routes behind the auth middleware
	setupAPIRoutes(r, cfg, services)

	// Swagger routes (off in production)
	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes sets up the public routes for authentication. Login,
// signup, and the OAuth code exchange share a 5 requests/minute per-IP limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Settings, services.Token)
	oauthHandler := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Settings, services.Token)

	authLimiter, err := middleware.NewIPRateLimiter("5-M")
	if err != nil {
		slog.Error("Failed to build auth rate limiter", slog.String("error", err.Error()))
	}
	limit := middleware.RateLimit(authLimiter)

	api := r.Group("/api")
	{
		api.POST("/login", limit, h.Login)
		api.POST("/signup", limit, h.Signup)
		api.POST("/oauth/google/exchange-code", limit, oauthHandler.ExchangeCodeGoogle)
	}
}

// setupAPIRoutes configures the protected /api group and delegates to the
// entity route registrations. The transactions listing gets an extra
// 10 requests/second per-IP limit to absorb bursty query-string churn.
func setupAPIRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))

	authHandler := NewAuthHandler(services.User, services.Settings, services.Token)
	api.GET("/me", authHandler.Me)

	listLimiter, err := middleware.NewIPRateLimiter("10-S")
	if err != nil {
		slog.Error("Failed to build transaction list rate limiter", slog.String("error", err.Error()))
	}

	registerSettingsRoutes(api, services.Settings)
	registerCategoryRoutes(api, services.Category)
	registerCreditCardRoutes(api, services.CreditCard)
	registerTransactionRoutes(api, services.Transaction, middleware.RateLimit(listLimiter))
	registerDashboardRoutes(api, services.Dashboard)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
