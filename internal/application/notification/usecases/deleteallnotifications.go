package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/notification/dto"
	"plume/internal/domain/notification"
	"plume/internal/shared/logger"
)

type DeleteAllNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewDeleteAllNotificationsUseCase(
	repo notification.Repository,
	logger logger.Interface,
) *DeleteAllNotificationsUseCase {
	return &DeleteAllNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *DeleteAllNotificationsUseCase) Execute(ctx context.Context, userID uint) (*dto.DeleteAllResponse, error) {
	deleted, err := uc.repo.DeleteAllByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to delete all notifications", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to delete all notifications: %w", err)
	}

	uc.logger.Infow("all notifications deleted", "user_id", userID, "deleted", deleted)
	return &dto.DeleteAllResponse{DeletedCount: deleted}, nil
}
