package usecases

import (
	"context"
	"time"

	"plume/internal/domain/notification"
	"plume/internal/domain/subscription"
	"plume/internal/shared/logger"
)

type mockSubscriptionRepository struct {
	CreateFunc                  func(ctx context.Context, sub *subscription.Subscription) error
	UpdateFunc                  func(ctx context.Context, sub *subscription.Subscription) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*subscription.Subscription, error)
	GetByUserIDFunc             func(ctx context.Context, userID uint) (*subscription.Subscription, error)
	GetByProviderCustomerIDFunc func(ctx context.Context, customerID string) (*subscription.Subscription, error)
	ListExpiredCandidatesFunc   func(ctx context.Context, limit int) ([]*subscription.Subscription, error)
	ListStaleWeeklyUsageFunc    func(ctx context.Context, weekStart time.Time, limit int) ([]*subscription.Subscription, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetByProviderCustomerID(ctx context.Context, customerID string) (*subscription.Subscription, error) {
	if m.GetByProviderCustomerIDFunc != nil {
		return m.GetByProviderCustomerIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListExpiredCandidates(ctx context.Context, limit int) ([]*subscription.Subscription, error) {
	if m.ListExpiredCandidatesFunc != nil {
		return m.ListExpiredCandidatesFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListStaleWeeklyUsage(ctx context.Context, weekStart time.Time, limit int) ([]*subscription.Subscription, error) {
	if m.ListStaleWeeklyUsageFunc != nil {
		return m.ListStaleWeeklyUsageFunc(ctx, weekStart, limit)
	}
	return nil, nil
}

type mockEntitlementCache struct {
	GetEntitlementsFunc        func(ctx context.Context, userID uint) (*CachedEntitlements, error)
	SetEntitlementsFunc        func(ctx context.Context, userID uint, ent *CachedEntitlements) error
	InvalidateEntitlementsFunc func(ctx context.Context, userID uint) error
	SetNullMarkerFunc          func(ctx context.Context, userID uint) error
}

func (m *mockEntitlementCache) GetEntitlements(ctx context.Context, userID uint) (*CachedEntitlements, error) {
	if m.GetEntitlementsFunc != nil {
		return m.GetEntitlementsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockEntitlementCache) SetEntitlements(ctx context.Context, userID uint, ent *CachedEntitlements) error {
	if m.SetEntitlementsFunc != nil {
		return m.SetEntitlementsFunc(ctx, userID, ent)
	}
	return nil
}

func (m *mockEntitlementCache) InvalidateEntitlements(ctx context.Context, userID uint) error {
	if m.InvalidateEntitlementsFunc != nil {
		return m.InvalidateEntitlementsFunc(ctx, userID)
	}
	return nil
}

func (m *mockEntitlementCache) SetNullMarker(ctx context.Context, userID uint) error {
	if m.SetNullMarkerFunc != nil {
		return m.SetNullMarkerFunc(ctx, userID)
	}
	return nil
}

type mockNotificationRecorder struct {
	RecordFunc func(ctx context.Context, n *notification.Notification) error
	recorded   []*notification.Notification
}

func (m *mockNotificationRecorder) Record(ctx context.Context, n *notification.Notification) error {
	m.recorded = append(m.recorded, n)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, n)
	}
	return nil
}

type mockLogger struct {
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
