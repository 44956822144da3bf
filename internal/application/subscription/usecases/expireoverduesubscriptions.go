package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/subscription/dto"
	notificationdomain "plume/internal/domain/notification"
	"plume/internal/domain/subscription"
	"plume/internal/shared/logger"
)

const defaultExpireSweepBatch = 200

// ExpireOverdueSubscriptionsUseCase is the background sweep that flips
// trial and active subscriptions past their end date to expired. Reads
// stay correct without it through IsExpired; the sweep keeps the stored
// status consistent for reports.
type ExpireOverdueSubscriptionsUseCase struct {
	repo     subscription.Repository
	cache    EntitlementCacheManager
	notifier NotificationRecorder
	logger   logger.Interface
}

func NewExpireOverdueSubscriptionsUseCase(
	repo subscription.Repository,
	cache EntitlementCacheManager,
	notifier NotificationRecorder,
	logger logger.Interface,
) *ExpireOverdueSubscriptionsUseCase {
	return &ExpireOverdueSubscriptionsUseCase{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *ExpireOverdueSubscriptionsUseCase) Execute(ctx context.Context) (*dto.ExpireSweepResponse, error) {
	candidates, err := uc.repo.ListExpiredCandidates(ctx, defaultExpireSweepBatch)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired candidates: %w", err)
	}

	if len(candidates) == 0 {
		return &dto.ExpireSweepResponse{}, nil
	}

	uc.logger.Infow("found overdue subscriptions", "count", len(candidates))

	expired := 0
	for _, sub := range candidates {
		if err := sub.MarkExpired(); err != nil {
			uc.logger.Warnw("failed to mark subscription expired",
				"subscription_id", sub.ID(),
				"current_status", sub.Status().String(),
				"error", err,
			)
			continue
		}

		if err := uc.repo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to update expired subscription",
				"subscription_id", sub.ID(),
				"error", err,
			)
			continue
		}

		if err := uc.cache.InvalidateEntitlements(ctx, sub.UserID()); err != nil {
			uc.logger.Warnw("failed to invalidate entitlement cache", "user_id", sub.UserID(), "error", err)
		}

		if n, err := notificationdomain.NewSubscriptionExpired(sub.UserID(), sub.PlanType().String()); err == nil {
			if err := uc.notifier.Record(ctx, n); err != nil {
				uc.logger.Warnw("failed to record expiry notification", "user_id", sub.UserID(), "error", err)
			}
		}

		expired++
	}

	return &dto.ExpireSweepResponse{ExpiredCount: expired}, nil
}
