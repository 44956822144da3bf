package usecases

import (
	"context"
	"fmt"

	notificationdomain "plume/internal/domain/notification"
	"plume/internal/domain/subscription"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

// HandleProviderCancellationUseCase processes the provider-initiated
// subscription deletion event.
type HandleProviderCancellationUseCase struct {
	repo     subscription.Repository
	cache    EntitlementCacheManager
	notifier NotificationRecorder
	logger   logger.Interface
}

func NewHandleProviderCancellationUseCase(
	repo subscription.Repository,
	cache EntitlementCacheManager,
	notifier NotificationRecorder,
	logger logger.Interface,
) *HandleProviderCancellationUseCase {
	return &HandleProviderCancellationUseCase{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *HandleProviderCancellationUseCase) Execute(ctx context.Context, providerCustomerID string) error {
	if providerCustomerID == "" {
		return errors.NewBadRequestError("provider customer ID is required")
	}

	sub, err := uc.repo.GetByProviderCustomerID(ctx, providerCustomerID)
	if err != nil {
		uc.logger.Errorw("failed to look up subscription by provider customer", "provider_customer_id", providerCustomerID, "error", err)
		return fmt.Errorf("failed to look up subscription: %w", err)
	}
	if sub == nil {
		return errors.NewNotFoundError("no subscription linked to provider customer")
	}

	if err := sub.CancelByProvider(); err != nil {
		return errors.NewValidationError("cannot cancel subscription", err.Error())
	}

	if err := uc.repo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update cancelled subscription", "user_id", sub.UserID(), "error", err)
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	if err := uc.cache.InvalidateEntitlements(ctx, sub.UserID()); err != nil {
		uc.logger.Warnw("failed to invalidate entitlement cache", "user_id", sub.UserID(), "error", err)
	}

	if n, err := notificationdomain.NewSubscriptionCancelled(sub.UserID(), sub.PlanType().String()); err == nil {
		if err := uc.notifier.Record(ctx, n); err != nil {
			uc.logger.Warnw("failed to record cancellation notification", "user_id", sub.UserID(), "error", err)
		}
	}

	uc.logger.Infow("subscription cancelled by provider", "user_id", sub.UserID())
	return nil
}
