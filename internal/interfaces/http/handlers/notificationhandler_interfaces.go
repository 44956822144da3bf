package handlers

import (
	"context"

	"plume/internal/application/notification/dto"
)

// Service interface for NotificationHandler - enables unit testing with mocks.

type notificationService interface {
	ListNotifications(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error)
	GetUnreadCount(ctx context.Context, userID uint) *dto.UnreadCountResponse
	MarkNotificationAsRead(ctx context.Context, id uint, userID uint) (*dto.NotificationResponse, error)
	MarkAllAsRead(ctx context.Context, userID uint) (*dto.MarkAllAsReadResponse, error)
	DeleteNotification(ctx context.Context, id uint, userID uint) error
	DeleteAllNotifications(ctx context.Context, userID uint) (*dto.DeleteAllResponse, error)
}
