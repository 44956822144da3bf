package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/subscription/dto"
	notificationdomain "plume/internal/domain/notification"
	"plume/internal/domain/subscription"
	vo "plume/internal/domain/subscription/valueobjects"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

// ChangePlanUseCase switches a user to a selectable plan. Limits and
// price are recomputed from the plan table on the aggregate before
// persistence; the entitlement cache is invalidated afterwards.
type ChangePlanUseCase struct {
	repo     subscription.Repository
	cache    EntitlementCacheManager
	notifier NotificationRecorder
	logger   logger.Interface
}

func NewChangePlanUseCase(
	repo subscription.Repository,
	cache EntitlementCacheManager,
	notifier NotificationRecorder,
	logger logger.Interface,
) *ChangePlanUseCase {
	return &ChangePlanUseCase{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *ChangePlanUseCase) Execute(ctx context.Context, req dto.ChangePlanRequest) (*dto.SubscriptionResponse, error) {
	planType, err := vo.NewPlanType(req.PlanType)
	if err != nil {
		return nil, errors.NewValidationError("invalid plan type", err.Error())
	}
	if !planType.IsSelectable() {
		return nil, errors.NewValidationError(fmt.Sprintf("plan %s cannot be selected", planType))
	}

	sub, err := uc.repo.GetByUserID(ctx, req.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "user_id", req.UserID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	if err := sub.ChangePlan(planType); err != nil {
		return nil, errors.NewValidationError("cannot change plan", err.Error())
	}

	if err := uc.repo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "user_id", req.UserID, "error", err)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	if err := uc.cache.InvalidateEntitlements(ctx, req.UserID); err != nil {
		uc.logger.Warnw("failed to invalidate entitlement cache", "user_id", req.UserID, "error", err)
	}

	if planType.IsPaid() {
		uc.recordActivation(ctx, req.UserID, planType)
	}

	uc.logger.Infow("plan changed", "user_id", req.UserID, "plan_type", planType.String())
	return dto.ToSubscriptionResponse(sub), nil
}

func (uc *ChangePlanUseCase) recordActivation(ctx context.Context, userID uint, planType vo.PlanType) {
	n, err := notificationdomain.NewSubscriptionActivated(userID, planType.String())
	if err != nil {
		uc.logger.Warnw("failed to build activation notification", "user_id", userID, "error", err)
		return
	}
	if err := uc.notifier.Record(ctx, n); err != nil {
		uc.logger.Warnw("failed to record activation notification", "user_id", userID, "error", err)
	}
}
