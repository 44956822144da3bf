// Package notification wires the notification use cases behind a single
// application service consumed by the HTTP layer and by the subscription
// use cases that emit events.
package notification

import (
	"context"

	"plume/internal/application/notification/dto"
	"plume/internal/application/notification/usecases"
	domain "plume/internal/domain/notification"
	"plume/internal/shared/logger"
)

type Service struct {
	createNotification     *usecases.CreateNotificationUseCase
	listNotifications      *usecases.ListNotificationsUseCase
	getUnreadCount         *usecases.GetUnreadCountUseCase
	markNotificationAsRead *usecases.MarkNotificationAsReadUseCase
	markAllAsRead          *usecases.MarkAllAsReadUseCase
	deleteNotification     *usecases.DeleteNotificationUseCase
	deleteAllNotifications *usecases.DeleteAllNotificationsUseCase
}

func NewService(repo domain.Repository, logger logger.Interface) *Service {
	return &Service{
		createNotification:     usecases.NewCreateNotificationUseCase(repo, logger),
		listNotifications:      usecases.NewListNotificationsUseCase(repo, logger),
		getUnreadCount:         usecases.NewGetUnreadCountUseCase(repo, logger),
		markNotificationAsRead: usecases.NewMarkNotificationAsReadUseCase(repo, logger),
		markAllAsRead:          usecases.NewMarkAllAsReadUseCase(repo, logger),
		deleteNotification:     usecases.NewDeleteNotificationUseCase(repo, logger),
		deleteAllNotifications: usecases.NewDeleteAllNotificationsUseCase(repo, logger),
	}
}

func (s *Service) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	return s.createNotification.Execute(ctx, req)
}

// Record persists a factory-built domain notification.
func (s *Service) Record(ctx context.Context, n *domain.Notification) error {
	return s.createNotification.Record(ctx, n)
}

func (s *Service) ListNotifications(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error) {
	return s.listNotifications.Execute(ctx, req)
}

func (s *Service) GetUnreadCount(ctx context.Context, userID uint) *dto.UnreadCountResponse {
	return s.getUnreadCount.Execute(ctx, userID)
}

func (s *Service) MarkNotificationAsRead(ctx context.Context, id uint, userID uint) (*dto.NotificationResponse, error) {
	return s.markNotificationAsRead.Execute(ctx, id, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID uint) (*dto.MarkAllAsReadResponse, error) {
	return s.markAllAsRead.Execute(ctx, userID)
}

func (s *Service) DeleteNotification(ctx context.Context, id uint, userID uint) error {
	return s.deleteNotification.Execute(ctx, id, userID)
}

func (s *Service) DeleteAllNotifications(ctx context.Context, userID uint) (*dto.DeleteAllResponse, error) {
	return s.deleteAllNotifications.Execute(ctx, userID)
}
