package usecases

import (
	"context"

	"plume/internal/domain/notification"
)

// CachedEntitlements is the cache-side form of the entitlement
// snapshot. NotFound is the null marker: the user was confirmed to
// have no subscription, cached briefly to stop repeated DB lookups.
type CachedEntitlements struct {
	PlanType               string
	Status                 string
	Active                 bool
	SocialAccounts         int
	ScheduledPostsPerWeek  int
	TeamMembers            int
	Analytics              string
	Support                string
	ConnectedAccounts      int
	ScheduledPostsThisWeek int
	CanConnectMoreAccounts bool
	CanSchedulePosts       bool
	TrialDaysRemaining     int
	NotFound               bool
}

// EntitlementCacheManager fronts the entitlement snapshot cache. Every
// write path invalidates; the read path fills on miss.
type EntitlementCacheManager interface {
	GetEntitlements(ctx context.Context, userID uint) (*CachedEntitlements, error)
	SetEntitlements(ctx context.Context, userID uint, ent *CachedEntitlements) error
	InvalidateEntitlements(ctx context.Context, userID uint) error
	// SetNullMarker caches a short-lived not-found marker.
	SetNullMarker(ctx context.Context, userID uint) error
}

// NotificationRecorder persists domain event notifications. Recording
// is best effort: use cases log failures and never fail the primary
// operation over a missing notification.
type NotificationRecorder interface {
	Record(ctx context.Context, n *notification.Notification) error
}
