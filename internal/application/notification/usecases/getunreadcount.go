package usecases

import (
	"context"

	"plume/internal/application/notification/dto"
	"plume/internal/domain/notification"
	"plume/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewGetUnreadCountUseCase(
	repo notification.Repository,
	logger logger.Interface,
) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute returns the unread count for a user. Store faults are masked
// behind a zero count: the badge is best effort and must never break a
// primary flow. Every other notification operation reports its errors.
func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, userID uint) *dto.UnreadCountResponse {
	count, err := uc.repo.CountUnreadByUserID(ctx, userID)
	if err != nil {
		uc.logger.Warnw("failed to get unread count, returning zero", "user_id", userID, "error", err)
		return &dto.UnreadCountResponse{Count: 0}
	}

	return &dto.UnreadCountResponse{Count: count}
}
