package routes

import (
	"github.com/gin-gonic/gin"

	"plume/internal/interfaces/http/handlers"
	"plume/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures subscription and plan routes.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	// Public plan catalog, no authentication required.
	engine.GET("/plans", cfg.SubscriptionHandler.ListPlans)

	subscriptions := engine.Group("/subscriptions")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscriptions.POST("", cfg.SubscriptionHandler.CreateSubscription)
		subscriptions.GET("/me", cfg.SubscriptionHandler.GetSubscription)
		subscriptions.GET("/me/entitlements", cfg.SubscriptionHandler.GetEntitlements)
		subscriptions.POST("/me/plan", cfg.SubscriptionHandler.ChangePlan)
	}
}
