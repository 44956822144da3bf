package usecases

import (
	"context"
	"fmt"

	"plume/internal/domain/subscription"
	"plume/internal/shared/biztime"
	"plume/internal/shared/logger"
)

const defaultResetSweepBatch = 500

// ResetWeeklyUsageUseCase is the background counterpart of the lazy
// per-request reset. The write path already resets stale counters on
// its own; this sweep keeps stored counters fresh for users who never
// schedule, so read models and exports see current-window numbers.
type ResetWeeklyUsageUseCase struct {
	repo   subscription.Repository
	cache  EntitlementCacheManager
	logger logger.Interface
}

func NewResetWeeklyUsageUseCase(
	repo subscription.Repository,
	cache EntitlementCacheManager,
	logger logger.Interface,
) *ResetWeeklyUsageUseCase {
	return &ResetWeeklyUsageUseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Execute resets every stale weekly counter and returns how many
// subscriptions were touched.
func (uc *ResetWeeklyUsageUseCase) Execute(ctx context.Context) (int, error) {
	now := biztime.NowUTC()
	weekStart := biztime.StartOfWeekUTC(now)

	stale, err := uc.repo.ListStaleWeeklyUsage(ctx, weekStart, defaultResetSweepBatch)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale weekly usage: %w", err)
	}

	reset := 0
	for _, sub := range stale {
		if !sub.ResetWeeklyUsageIfDue(now) {
			continue
		}
		if err := uc.repo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to persist weekly usage reset",
				"subscription_id", sub.ID(),
				"error", err,
			)
			continue
		}
		if err := uc.cache.InvalidateEntitlements(ctx, sub.UserID()); err != nil {
			uc.logger.Warnw("failed to invalidate entitlement cache", "user_id", sub.UserID(), "error", err)
		}
		reset++
	}

	if reset > 0 {
		uc.logger.Infow("weekly usage counters reset", "count", reset)
	}
	return reset, nil
}
