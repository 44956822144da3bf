package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/notification/dto"
	"plume/internal/domain/notification"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkNotificationAsReadUseCase(
	repo notification.Repository,
	logger logger.Interface,
) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, id uint, userID uint) (*dto.NotificationResponse, error) {
	n, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find notification", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}
	if n == nil {
		return nil, errors.NewNotFoundError("notification not found")
	}

	if n.UserID() != userID {
		uc.logger.Warnw("unauthorized access to notification", "id", id, "user_id", userID, "owner_id", n.UserID())
		return nil, errors.NewNotFoundError("notification not found")
	}

	if n.ReadStatus().IsRead() {
		return dto.ToNotificationResponse(n), nil
	}

	if err := uc.repo.MarkAsRead(ctx, id); err != nil {
		uc.logger.Errorw("failed to mark notification as read", "id", id, "error", err)
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}

	n.MarkAsRead()
	return dto.ToNotificationResponse(n), nil
}
