package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/subscription/dto"
	notificationdomain "plume/internal/domain/notification"
	"plume/internal/domain/subscription"
	"plume/internal/shared/biztime"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

// RecordPostScheduledUseCase gates post scheduling on the weekly plan
// limit. The lazy weekly reset runs first so a stale counter from a
// previous scheduling window cannot deny a permitted post.
type RecordPostScheduledUseCase struct {
	repo     subscription.Repository
	cache    EntitlementCacheManager
	notifier NotificationRecorder
	logger   logger.Interface
}

func NewRecordPostScheduledUseCase(
	repo subscription.Repository,
	cache EntitlementCacheManager,
	notifier NotificationRecorder,
	logger logger.Interface,
) *RecordPostScheduledUseCase {
	return &RecordPostScheduledUseCase{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *RecordPostScheduledUseCase) Execute(ctx context.Context, req dto.RecordPostScheduledRequest) error {
	sub, err := uc.repo.GetByUserID(ctx, req.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "user_id", req.UserID, "error", err)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return errors.NewNotFoundError("subscription not found")
	}

	now := biztime.NowUTC()
	wasReset := sub.ResetWeeklyUsageIfDue(now)

	if !sub.CanScheduleMorePosts(now) {
		// Persist the reset even when the schedule is denied so the
		// counter reflects the current window.
		if wasReset {
			if err := uc.repo.Update(ctx, sub); err != nil {
				uc.logger.Errorw("failed to persist weekly usage reset", "user_id", req.UserID, "error", err)
			}
		}
		return errors.NewForbiddenError("weekly scheduled post limit reached for current plan")
	}

	sub.RecordPostScheduled()
	if err := uc.repo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "user_id", req.UserID, "error", err)
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	if err := uc.cache.InvalidateEntitlements(ctx, req.UserID); err != nil {
		uc.logger.Warnw("failed to invalidate entitlement cache", "user_id", req.UserID, "error", err)
	}

	if n, err := notificationdomain.NewPostScheduled(req.UserID, req.Platform, req.PostID, req.ScheduledFor); err == nil {
		if err := uc.notifier.Record(ctx, n); err != nil {
			uc.logger.Warnw("failed to record post-scheduled notification", "user_id", req.UserID, "error", err)
		}
	}

	return nil
}
