// Package cache holds the Redis-backed read-side caches.
package cache

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"plume/internal/application/subscription/usecases"
	"plume/internal/shared/logger"
)

const (
	entitlementKeyPrefix = "subscription:entitlements:"
	baseEntitlementTTL   = 30 * time.Minute
	entitlementTTLJitter = 10 * time.Minute // TTL range: 30-40 min (anti-stampede)
	nullMarkerTTL        = 2 * time.Minute  // Short TTL for not-found markers (anti-penetration)

	fieldPlanType          = "plan_type"
	fieldStatus            = "status"
	fieldActive            = "active"
	fieldLimitAccounts     = "limit_accounts"
	fieldLimitPosts        = "limit_posts"
	fieldLimitTeamMembers  = "limit_team_members"
	fieldAnalytics         = "analytics"
	fieldSupport           = "support"
	fieldConnectedAccounts = "connected_accounts"
	fieldPostsThisWeek     = "posts_this_week"
	fieldCanConnect        = "can_connect"
	fieldCanSchedule       = "can_schedule"
	fieldTrialDays         = "trial_days"
	fieldNullMarker        = "_null"
)

// RedisEntitlementCache stores the per-user entitlement snapshot as a
// Redis hash. Write paths invalidate; reads fill on miss.
type RedisEntitlementCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisEntitlementCache(client *redis.Client, logger logger.Interface) *RedisEntitlementCache {
	return &RedisEntitlementCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisEntitlementCache) key(userID uint) string {
	return fmt.Sprintf("%s%d", entitlementKeyPrefix, userID)
}

// GetEntitlements retrieves the cached snapshot. A nil result with nil
// error is a cache miss.
func (c *RedisEntitlementCache) GetEntitlements(ctx context.Context, userID uint) (*usecases.CachedEntitlements, error) {
	result, err := c.client.HGetAll(ctx, c.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entitlements from cache: %w", err)
	}

	if len(result) == 0 {
		return nil, nil
	}

	if result[fieldNullMarker] == "1" {
		return &usecases.CachedEntitlements{NotFound: true}, nil
	}

	ent := &usecases.CachedEntitlements{
		PlanType:  result[fieldPlanType],
		Status:    result[fieldStatus],
		Analytics: result[fieldAnalytics],
		Support:   result[fieldSupport],
		Active:    result[fieldActive] == "1",
	}
	ent.SocialAccounts, _ = strconv.Atoi(result[fieldLimitAccounts])
	ent.ScheduledPostsPerWeek, _ = strconv.Atoi(result[fieldLimitPosts])
	ent.TeamMembers, _ = strconv.Atoi(result[fieldLimitTeamMembers])
	ent.ConnectedAccounts, _ = strconv.Atoi(result[fieldConnectedAccounts])
	ent.ScheduledPostsThisWeek, _ = strconv.Atoi(result[fieldPostsThisWeek])
	ent.CanConnectMoreAccounts = result[fieldCanConnect] == "1"
	ent.CanSchedulePosts = result[fieldCanSchedule] == "1"
	ent.TrialDaysRemaining, _ = strconv.Atoi(result[fieldTrialDays])

	return ent, nil
}

// SetEntitlements stores the snapshot with a jittered TTL.
func (c *RedisEntitlementCache) SetEntitlements(ctx context.Context, userID uint, ent *usecases.CachedEntitlements) error {
	key := c.key(userID)

	fields := map[string]interface{}{
		fieldPlanType:          ent.PlanType,
		fieldStatus:            ent.Status,
		fieldActive:            boolToInt(ent.Active),
		fieldLimitAccounts:     ent.SocialAccounts,
		fieldLimitPosts:        ent.ScheduledPostsPerWeek,
		fieldLimitTeamMembers:  ent.TeamMembers,
		fieldAnalytics:         ent.Analytics,
		fieldSupport:           ent.Support,
		fieldConnectedAccounts: ent.ConnectedAccounts,
		fieldPostsThisWeek:     ent.ScheduledPostsThisWeek,
		fieldCanConnect:        boolToInt(ent.CanConnectMoreAccounts),
		fieldCanSchedule:       boolToInt(ent.CanSchedulePosts),
		fieldTrialDays:         ent.TrialDaysRemaining,
	}

	pipe := c.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, entitlementTTLWithJitter())

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set entitlements in cache: %w", err)
	}

	c.logger.Debugw("entitlements cached", "user_id", userID, "plan_type", ent.PlanType)
	return nil
}

// InvalidateEntitlements removes the snapshot, forcing a reload on the
// next read.
func (c *RedisEntitlementCache) InvalidateEntitlements(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate entitlement cache: %w", err)
	}

	c.logger.Debugw("entitlement cache invalidated", "user_id", userID)
	return nil
}

// SetNullMarker stores a short-lived marker indicating the user has no
// subscription, preventing repeated DB lookups.
func (c *RedisEntitlementCache) SetNullMarker(ctx context.Context, userID uint) error {
	key := c.key(userID)

	pipe := c.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fieldNullMarker, "1")
	pipe.Expire(ctx, key, nullMarkerTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set entitlement null marker: %w", err)
	}

	return nil
}

// entitlementTTLWithJitter returns a randomized TTL to prevent cache
// stampede.
func entitlementTTLWithJitter() time.Duration {
	jitter := time.Duration(rand.Int64N(int64(entitlementTTLJitter)))
	return baseEntitlementTTL + jitter
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
