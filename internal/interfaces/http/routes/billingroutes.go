package routes

import (
	"github.com/gin-gonic/gin"

	"plume/internal/interfaces/http/handlers"
)

// BillingRouteConfig holds dependencies for billing webhook routes.
type BillingRouteConfig struct {
	WebhookHandler *handlers.BillingWebhookHandler
}

// SetupBillingRoutes configures the payment-provider webhook route.
// The route is unauthenticated; the handler verifies the provider
// signature instead.
func SetupBillingRoutes(engine *gin.Engine, cfg *BillingRouteConfig) {
	engine.POST("/webhooks/billing", cfg.WebhookHandler.HandleWebhook)
}
