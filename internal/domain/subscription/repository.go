package subscription

import (
	"context"
	"time"
)

// Repository persists subscription aggregates. Lookup methods return
// (nil, nil) when no record exists so callers can translate absence
// into their own not-found semantics.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetByUserID(ctx context.Context, userID uint) (*Subscription, error)
	GetByProviderCustomerID(ctx context.Context, customerID string) (*Subscription, error)
	// ListExpiredCandidates returns trial or active subscriptions whose
	// end dates have passed, for the expiry sweep.
	ListExpiredCandidates(ctx context.Context, limit int) ([]*Subscription, error)
	// ListStaleWeeklyUsage returns subscriptions whose weekly counter
	// was last reset before the given scheduling window start.
	ListStaleWeeklyUsage(ctx context.Context, weekStart time.Time, limit int) ([]*Subscription, error)
}
