package usecases

import (
	"context"
	"fmt"

	"plume/internal/domain/notification"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

type DeleteNotificationUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewDeleteNotificationUseCase(
	repo notification.Repository,
	logger logger.Interface,
) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute deletes a notification only when it belongs to userID. The
// ownership check is mandatory; a mismatch reports not-found so callers
// cannot probe other users' records.
func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, id uint, userID uint) error {
	n, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find notification", "id", id, "error", err)
		return fmt.Errorf("failed to find notification: %w", err)
	}
	if n == nil {
		return errors.NewNotFoundError("notification not found")
	}

	if n.UserID() != userID {
		uc.logger.Warnw("unauthorized delete of notification", "id", id, "user_id", userID, "owner_id", n.UserID())
		return errors.NewNotFoundError("notification not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete notification", "id", id, "error", err)
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	uc.logger.Infow("notification deleted", "id", id, "user_id", userID)
	return nil
}
