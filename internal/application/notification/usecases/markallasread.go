package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/notification/dto"
	"plume/internal/domain/notification"
	"plume/internal/shared/logger"
)

type MarkAllAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(
	repo notification.Repository,
	logger logger.Interface,
) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, userID uint) (*dto.MarkAllAsReadResponse, error) {
	matched, err := uc.repo.MarkAllAsReadByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	uc.logger.Infow("all notifications marked as read", "user_id", userID, "matched", matched)
	return &dto.MarkAllAsReadResponse{MatchedCount: matched}, nil
}
