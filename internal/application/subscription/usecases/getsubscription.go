package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/subscription/dto"
	"plume/internal/domain/subscription"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

type GetSubscriptionUseCase struct {
	repo   subscription.Repository
	logger logger.Interface
}

func NewGetSubscriptionUseCase(
	repo subscription.Repository,
	logger logger.Interface,
) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionResponse, error) {
	sub, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	return dto.ToSubscriptionResponse(sub), nil
}
