package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/subscription/dto"
	"plume/internal/domain/subscription"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

// CreateSubscriptionUseCase provisions the signup-default trial
// subscription. Exactly one subscription exists per user.
type CreateSubscriptionUseCase struct {
	repo   subscription.Repository
	logger logger.Interface
}

func NewCreateSubscriptionUseCase(
	repo subscription.Repository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionResponse, error) {
	existing, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to check existing subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to check existing subscription: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("subscription already exists for user")
	}

	sub, err := subscription.NewSubscription(userID)
	if err != nil {
		return nil, errors.NewValidationError("invalid subscription", err.Error())
	}

	if err := uc.repo.Create(ctx, sub); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("subscription already exists for user")
		}
		uc.logger.Errorw("failed to create subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("trial subscription created", "user_id", userID, "subscription_id", sub.ID())
	return dto.ToSubscriptionResponse(sub), nil
}
