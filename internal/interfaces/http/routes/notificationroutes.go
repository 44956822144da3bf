package routes

import (
	"github.com/gin-gonic/gin"

	"plume/internal/interfaces/http/handlers"
	"plume/internal/interfaces/http/middleware"
)

// NotificationRouteConfig holds dependencies for notification routes.
type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupNotificationRoutes configures notification routes.
func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid
		// route conflicts.
		notifications.GET("", cfg.NotificationHandler.ListNotifications)
		notifications.DELETE("", cfg.NotificationHandler.DeleteAllNotifications)

		notifications.GET("/unread-count", cfg.NotificationHandler.GetUnreadCount)
		notifications.PUT("/read-all", cfg.NotificationHandler.MarkAllAsRead)

		notifications.PUT("/:id/read", cfg.NotificationHandler.MarkAsRead)
		notifications.DELETE("/:id", cfg.NotificationHandler.DeleteNotification)
	}
}
