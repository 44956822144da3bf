package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/notification/dto"
	"plume/internal/domain/notification"
	vo "plume/internal/domain/notification/valueobjects"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

type CreateNotificationUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewCreateNotificationUseCase(
	repo notification.Repository,
	logger logger.Interface,
) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateNotificationUseCase) Execute(ctx context.Context, req dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	notifType, err := vo.NewNotificationType(req.Type)
	if err != nil {
		return nil, errors.NewValidationError("invalid notification type", err.Error())
	}

	n, err := notification.NewNotification(req.UserID, notifType, req.Title, req.Message, req.Metadata)
	if err != nil {
		return nil, errors.NewValidationError("invalid notification", err.Error())
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to create notification", "user_id", req.UserID, "type", req.Type, "error", err)
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	uc.logger.Infow("notification created", "id", n.ID(), "user_id", req.UserID, "type", req.Type)
	return dto.ToNotificationResponse(n), nil
}

// Record persists an already-constructed domain notification. Used by
// the subscription use cases that build records through the factory
// constructors.
func (uc *CreateNotificationUseCase) Record(ctx context.Context, n *notification.Notification) error {
	if err := uc.repo.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to record notification", "user_id", n.UserID(), "type", n.Type().String(), "error", err)
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}
