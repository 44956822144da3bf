package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/subscription/dto"
	"plume/internal/domain/subscription"
	vo "plume/internal/domain/subscription/valueobjects"
	"plume/internal/shared/biztime"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

// GetEntitlementsUseCase serves the read-side entitlement snapshot
// through the cache. Cache faults fall back to the database; a user
// without a subscription is cached as a short-lived null marker.
type GetEntitlementsUseCase struct {
	repo   subscription.Repository
	cache  EntitlementCacheManager
	logger logger.Interface
}

func NewGetEntitlementsUseCase(
	repo subscription.Repository,
	cache EntitlementCacheManager,
	logger logger.Interface,
) *GetEntitlementsUseCase {
	return &GetEntitlementsUseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (uc *GetEntitlementsUseCase) Execute(ctx context.Context, userID uint) (*dto.EntitlementsResponse, error) {
	cached, err := uc.cache.GetEntitlements(ctx, userID)
	if err != nil {
		uc.logger.Warnw("entitlement cache read failed, falling back to database", "user_id", userID, "error", err)
	} else if cached != nil {
		if cached.NotFound {
			return nil, errors.NewNotFoundError("subscription not found")
		}
		return fromCached(cached), nil
	}

	sub, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		if err := uc.cache.SetNullMarker(ctx, userID); err != nil {
			uc.logger.Warnw("failed to set entitlement null marker", "user_id", userID, "error", err)
		}
		return nil, errors.NewNotFoundError("subscription not found")
	}

	resp := dto.ToEntitlementsResponse(sub, biztime.NowUTC())

	if err := uc.cache.SetEntitlements(ctx, userID, toCached(resp)); err != nil {
		uc.logger.Warnw("failed to fill entitlement cache", "user_id", userID, "error", err)
	}

	return resp, nil
}

func toCached(resp *dto.EntitlementsResponse) *CachedEntitlements {
	return &CachedEntitlements{
		PlanType:               resp.PlanType,
		Status:                 resp.Status,
		Active:                 resp.Active,
		SocialAccounts:         resp.Limits.SocialAccounts,
		ScheduledPostsPerWeek:  resp.Limits.ScheduledPostsPerWeek,
		TeamMembers:            resp.Limits.TeamMembers,
		Analytics:              string(resp.Limits.Analytics),
		Support:                string(resp.Limits.Support),
		ConnectedAccounts:      resp.ConnectedAccounts,
		ScheduledPostsThisWeek: resp.ScheduledPostsThisWeek,
		CanConnectMoreAccounts: resp.CanConnectMoreAccounts,
		CanSchedulePosts:       resp.CanSchedulePosts,
		TrialDaysRemaining:     resp.TrialDaysRemaining,
	}
}

func fromCached(cached *CachedEntitlements) *dto.EntitlementsResponse {
	return &dto.EntitlementsResponse{
		PlanType: cached.PlanType,
		Status:   cached.Status,
		Active:   cached.Active,
		Limits: vo.PlanLimits{
			SocialAccounts:        cached.SocialAccounts,
			ScheduledPostsPerWeek: cached.ScheduledPostsPerWeek,
			TeamMembers:           cached.TeamMembers,
			Analytics:             vo.AnalyticsTier(cached.Analytics),
			Support:               vo.SupportTier(cached.Support),
		},
		ConnectedAccounts:      cached.ConnectedAccounts,
		ScheduledPostsThisWeek: cached.ScheduledPostsThisWeek,
		CanConnectMoreAccounts: cached.CanConnectMoreAccounts,
		CanSchedulePosts:       cached.CanSchedulePosts,
		TrialDaysRemaining:     cached.TrialDaysRemaining,
	}
}
