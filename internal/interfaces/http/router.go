package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notificationApp "plume/internal/application/notification"
	subscriptionApp "plume/internal/application/subscription"
	"plume/internal/infrastructure/auth"
	"plume/internal/infrastructure/cache"
	"plume/internal/infrastructure/config"
	"plume/internal/infrastructure/repository"
	"plume/internal/interfaces/http/handlers"
	"plume/internal/interfaces/http/middleware"
	"plume/internal/interfaces/http/routes"
	"plume/internal/shared/logger"
)

// Router wires repositories, services, and handlers into a Gin engine.
type Router struct {
	engine              *gin.Engine
	subscriptionHandler *handlers.SubscriptionHandler
	notificationHandler *handlers.NotificationHandler
	webhookHandler      *handlers.BillingWebhookHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	notificationRepo := repository.NewNotificationRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	entitlementCache := cache.NewRedisEntitlementCache(redisClient, log)

	notificationService := notificationApp.NewService(notificationRepo, log)
	subscriptionService := subscriptionApp.NewService(
		subscriptionRepo,
		entitlementCache,
		notificationService,
		cfg.Billing,
		log,
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	return &Router{
		engine:              engine,
		subscriptionHandler: handlers.NewSubscriptionHandler(subscriptionService, log),
		notificationHandler: handlers.NewNotificationHandler(notificationService, log),
		webhookHandler:      handlers.NewBillingWebhookHandler(subscriptionService, cfg.Billing.WebhookSecret, log),
		authMiddleware:      middleware.NewAuthMiddleware(jwtService, log),
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
	})

	routes.SetupBillingRoutes(r.engine, &routes.BillingRouteConfig{
		WebhookHandler: r.webhookHandler,
	})
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the given address.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
