package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/subscription/dto"
	notificationdomain "plume/internal/domain/notification"
	"plume/internal/domain/subscription"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

// RecordAccountConnectedUseCase gates a social-account connection on
// the plan limit and bumps the usage counter.
type RecordAccountConnectedUseCase struct {
	repo     subscription.Repository
	cache    EntitlementCacheManager
	notifier NotificationRecorder
	logger   logger.Interface
}

func NewRecordAccountConnectedUseCase(
	repo subscription.Repository,
	cache EntitlementCacheManager,
	notifier NotificationRecorder,
	logger logger.Interface,
) *RecordAccountConnectedUseCase {
	return &RecordAccountConnectedUseCase{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *RecordAccountConnectedUseCase) Execute(ctx context.Context, req dto.RecordAccountConnectedRequest) error {
	sub, err := uc.repo.GetByUserID(ctx, req.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "user_id", req.UserID, "error", err)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return errors.NewNotFoundError("subscription not found")
	}

	if !sub.CanConnectMoreAccounts() {
		return errors.NewForbiddenError("social account limit reached for current plan")
	}

	sub.RecordAccountConnected()
	if err := uc.repo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "user_id", req.UserID, "error", err)
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	if err := uc.cache.InvalidateEntitlements(ctx, req.UserID); err != nil {
		uc.logger.Warnw("failed to invalidate entitlement cache", "user_id", req.UserID, "error", err)
	}

	if n, err := notificationdomain.NewAccountConnected(req.UserID, req.Platform, req.AccountName); err == nil {
		if err := uc.notifier.Record(ctx, n); err != nil {
			uc.logger.Warnw("failed to record account-connected notification", "user_id", req.UserID, "error", err)
		}
	}

	return nil
}
