package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plume/internal/application/subscription/dto"
	notificationdomain "plume/internal/domain/notification"
	notifvo "plume/internal/domain/notification/valueobjects"
	"plume/internal/domain/subscription"
	vo "plume/internal/domain/subscription/valueobjects"
	"plume/internal/shared/config"
	"plume/internal/shared/errors"
)

// storedSubscription builds a persisted-form subscription with sensible
// defaults. Callers override fields via mutate.
func storedSubscription(t *testing.T, mutate func(*subscription.ReconstructParams)) *subscription.Subscription {
	t.Helper()
	now := time.Now().UTC()
	params := subscription.ReconstructParams{
		ID:        1,
		UUID:      "00000000-0000-0000-0000-000000000001",
		UserID:    10,
		PlanType:  vo.PlanStandard,
		Status:    vo.StatusActive,
		Price:     10,
		Currency:  "USD",
		StartDate: now.AddDate(0, -1, 0),
		Limits:    vo.PlanLimitsFor(vo.PlanStandard),
		Usage:     subscription.ReconstructUsage(0, 0, now),
		Version:   1,
		CreatedAt: now.AddDate(0, -1, 0),
		UpdatedAt: now,
	}
	if mutate != nil {
		mutate(&params)
	}
	sub, err := subscription.Reconstruct(params)
	require.NoError(t, err)
	return sub
}

func recordedTypes(rec *mockNotificationRecorder) []notifvo.NotificationType {
	types := make([]notifvo.NotificationType, 0, len(rec.recorded))
	for _, n := range rec.recorded {
		types = append(types, n.Type())
	}
	return types
}

func TestCreateSubscriptionUseCase_Execute(t *testing.T) {
	t.Run("creates the signup trial", func(t *testing.T) {
		var created *subscription.Subscription
		repo := &mockSubscriptionRepository{
			CreateFunc: func(ctx context.Context, sub *subscription.Subscription) error {
				sub.SetID(1)
				created = sub
				return nil
			},
		}
		uc := NewCreateSubscriptionUseCase(repo, &mockLogger{})

		resp, err := uc.Execute(context.Background(), 10)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "free_trial", resp.PlanType)
		assert.Equal(t, "trial", resp.Status)
		assert.Equal(t, 2, resp.Limits.SocialAccounts)
		require.NotNil(t, resp.TrialEndDate)
	})

	t.Run("second create conflicts", func(t *testing.T) {
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return storedSubscription(t, nil), nil
			},
		}
		uc := NewCreateSubscriptionUseCase(repo, &mockLogger{})

		_, err := uc.Execute(context.Background(), 10)

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestChangePlanUseCase_Execute(t *testing.T) {
	newUseCase := func(repo *mockSubscriptionRepository, cache *mockEntitlementCache, rec *mockNotificationRecorder) *ChangePlanUseCase {
		return NewChangePlanUseCase(repo, cache, rec, &mockLogger{})
	}

	t.Run("upgrade to premium activates and notifies", func(t *testing.T) {
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			trialEnd := time.Now().UTC().AddDate(0, 0, 10)
			p.PlanType = vo.PlanFreeTrial
			p.Status = vo.StatusTrial
			p.TrialEndDate = &trialEnd
			p.EndDate = &trialEnd
			p.Limits = vo.PlanLimitsFor(vo.PlanFreeTrial)
		})
		updated := false
		invalidated := false
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
			UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				updated = true
				return nil
			},
		}
		cache := &mockEntitlementCache{
			InvalidateEntitlementsFunc: func(ctx context.Context, userID uint) error {
				invalidated = true
				return nil
			},
		}
		rec := &mockNotificationRecorder{}
		uc := newUseCase(repo, cache, rec)

		resp, err := uc.Execute(context.Background(), dto.ChangePlanRequest{UserID: 10, PlanType: "premium"})

		require.NoError(t, err)
		assert.True(t, updated)
		assert.True(t, invalidated)
		assert.Equal(t, "premium", resp.PlanType)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, float64(25), resp.Price)
		assert.Equal(t, vo.Unlimited, resp.Limits.SocialAccounts)
		assert.Nil(t, resp.TrialEndDate)

		require.Len(t, rec.recorded, 1)
		assert.Equal(t, notifvo.TypeSubscriptionActivated, rec.recorded[0].Type())
		assert.Equal(t, "premium", rec.recorded[0].Metadata()["planType"])
	})

	t.Run("downgrade to free records no activation", func(t *testing.T) {
		sub := storedSubscription(t, nil)
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		rec := &mockNotificationRecorder{}
		uc := newUseCase(repo, &mockEntitlementCache{}, rec)

		resp, err := uc.Execute(context.Background(), dto.ChangePlanRequest{UserID: 10, PlanType: "free"})

		require.NoError(t, err)
		assert.Equal(t, "free", resp.PlanType)
		assert.Equal(t, float64(0), resp.Price)
		assert.Empty(t, rec.recorded)
	})

	t.Run("free_trial is not selectable", func(t *testing.T) {
		uc := newUseCase(&mockSubscriptionRepository{}, &mockEntitlementCache{}, &mockNotificationRecorder{})

		_, err := uc.Execute(context.Background(), dto.ChangePlanRequest{UserID: 10, PlanType: "free_trial"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown plan rejected", func(t *testing.T) {
		uc := newUseCase(&mockSubscriptionRepository{}, &mockEntitlementCache{}, &mockNotificationRecorder{})

		_, err := uc.Execute(context.Background(), dto.ChangePlanRequest{UserID: 10, PlanType: "platinum"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("missing subscription reports not found", func(t *testing.T) {
		uc := newUseCase(&mockSubscriptionRepository{}, &mockEntitlementCache{}, &mockNotificationRecorder{})

		_, err := uc.Execute(context.Background(), dto.ChangePlanRequest{UserID: 10, PlanType: "standard"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("notification failure does not fail the change", func(t *testing.T) {
		sub := storedSubscription(t, nil)
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		rec := &mockNotificationRecorder{
			RecordFunc: func(ctx context.Context, n *notificationdomain.Notification) error {
				return fmt.Errorf("store down")
			},
		}
		uc := newUseCase(repo, &mockEntitlementCache{}, rec)

		_, err := uc.Execute(context.Background(), dto.ChangePlanRequest{UserID: 10, PlanType: "premium"})
		require.NoError(t, err)
	})
}

func TestRecordAccountConnectedUseCase_Execute(t *testing.T) {
	t.Run("increments within the limit", func(t *testing.T) {
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			p.Usage = subscription.ReconstructUsage(2, 0, time.Now().UTC())
		})
		var persisted *subscription.Subscription
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
			UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				persisted = s
				return nil
			},
		}
		rec := &mockNotificationRecorder{}
		uc := NewRecordAccountConnectedUseCase(repo, &mockEntitlementCache{}, rec, &mockLogger{})

		err := uc.Execute(context.Background(), dto.RecordAccountConnectedRequest{
			UserID: 10, Platform: "twitter", AccountName: "@plume",
		})

		require.NoError(t, err)
		require.NotNil(t, persisted)
		assert.Equal(t, 3, persisted.Usage().ConnectedAccounts())
		assert.Equal(t, []notifvo.NotificationType{notifvo.TypeSocialAccountConnected}, recordedTypes(rec))
	})

	t.Run("blocks at the plan ceiling", func(t *testing.T) {
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			p.Usage = subscription.ReconstructUsage(4, 0, time.Now().UTC())
		})
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
			UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				t.Fatal("should not persist a blocked connection")
				return nil
			},
		}
		uc := NewRecordAccountConnectedUseCase(repo, &mockEntitlementCache{}, &mockNotificationRecorder{}, &mockLogger{})

		err := uc.Execute(context.Background(), dto.RecordAccountConnectedRequest{
			UserID: 10, Platform: "twitter", AccountName: "@plume",
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("unlimited plan never blocks", func(t *testing.T) {
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			p.PlanType = vo.PlanPremium
			p.Limits = vo.PlanLimitsFor(vo.PlanPremium)
			p.Usage = subscription.ReconstructUsage(5000, 0, time.Now().UTC())
		})
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		uc := NewRecordAccountConnectedUseCase(repo, &mockEntitlementCache{}, &mockNotificationRecorder{}, &mockLogger{})

		err := uc.Execute(context.Background(), dto.RecordAccountConnectedRequest{
			UserID: 10, Platform: "twitter", AccountName: "@plume",
		})
		require.NoError(t, err)
	})
}

func TestRecordAccountDisconnectedUseCase_Execute(t *testing.T) {
	sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
		p.Usage = subscription.ReconstructUsage(2, 0, time.Now().UTC())
	})
	var persisted *subscription.Subscription
	repo := &mockSubscriptionRepository{
		GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
			return sub, nil
		},
		UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
			persisted = s
			return nil
		},
	}
	rec := &mockNotificationRecorder{}
	uc := NewRecordAccountDisconnectedUseCase(repo, &mockEntitlementCache{}, rec, &mockLogger{})

	err := uc.Execute(context.Background(), dto.RecordAccountDisconnectedRequest{
		UserID: 10, Platform: "twitter", AccountName: "@plume",
	})

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, 1, persisted.Usage().ConnectedAccounts())
	assert.Equal(t, []notifvo.NotificationType{notifvo.TypeSocialAccountDisconnected}, recordedTypes(rec))
}

func TestRecordPostScheduledUseCase_Execute(t *testing.T) {
	newUseCase := func(repo *mockSubscriptionRepository, rec *mockNotificationRecorder) *RecordPostScheduledUseCase {
		return NewRecordPostScheduledUseCase(repo, &mockEntitlementCache{}, rec, &mockLogger{})
	}

	t.Run("schedules within the weekly limit", func(t *testing.T) {
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			p.Usage = subscription.ReconstructUsage(0, 3, time.Now().UTC())
		})
		var persisted *subscription.Subscription
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
			UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				persisted = s
				return nil
			},
		}
		rec := &mockNotificationRecorder{}
		uc := newUseCase(repo, rec)

		err := uc.Execute(context.Background(), dto.RecordPostScheduledRequest{
			UserID: 10, Platform: "twitter", PostID: 55, ScheduledFor: "2026-09-01T10:00:00Z",
		})

		require.NoError(t, err)
		require.NotNil(t, persisted)
		assert.Equal(t, 4, persisted.Usage().ScheduledPostsThisWeek())
		assert.Equal(t, []notifvo.NotificationType{notifvo.TypePostScheduled}, recordedTypes(rec))
	})

	t.Run("stale counter from a previous week resets before the check", func(t *testing.T) {
		// Counter is at the ceiling but belongs to a previous window.
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			p.Usage = subscription.ReconstructUsage(0, 8, time.Now().UTC().AddDate(0, 0, -8))
		})
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		uc := newUseCase(repo, &mockNotificationRecorder{})

		err := uc.Execute(context.Background(), dto.RecordPostScheduledRequest{
			UserID: 10, Platform: "twitter", PostID: 55, ScheduledFor: "2026-09-01T10:00:00Z",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, sub.Usage().ScheduledPostsThisWeek())
	})

	t.Run("blocks at the weekly ceiling", func(t *testing.T) {
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			p.Usage = subscription.ReconstructUsage(0, 8, time.Now().UTC())
		})
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		rec := &mockNotificationRecorder{}
		uc := newUseCase(repo, rec)

		err := uc.Execute(context.Background(), dto.RecordPostScheduledRequest{
			UserID: 10, Platform: "twitter", PostID: 55, ScheduledFor: "2026-09-01T10:00:00Z",
		})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
		assert.Empty(t, rec.recorded)
	})

	t.Run("expired subscription cannot schedule", func(t *testing.T) {
		past := time.Now().UTC().AddDate(0, 0, -1)
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			p.EndDate = &past
		})
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		uc := newUseCase(repo, &mockNotificationRecorder{})

		err := uc.Execute(context.Background(), dto.RecordPostScheduledRequest{
			UserID: 10, Platform: "twitter", PostID: 55, ScheduledFor: "2026-09-01T10:00:00Z",
		})
		require.Error(t, err)
	})
}

func TestGetEntitlementsUseCase_Execute(t *testing.T) {
	t.Run("cache hit skips the database", func(t *testing.T) {
		cache := &mockEntitlementCache{
			GetEntitlementsFunc: func(ctx context.Context, userID uint) (*CachedEntitlements, error) {
				return &CachedEntitlements{
					PlanType:         "standard",
					Status:           "active",
					Active:           true,
					SocialAccounts:   4,
					CanSchedulePosts: true,
				}, nil
			},
		}
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				t.Fatal("should not hit the database on cache hit")
				return nil, nil
			},
		}
		uc := NewGetEntitlementsUseCase(repo, cache, &mockLogger{})

		resp, err := uc.Execute(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, "standard", resp.PlanType)
		assert.True(t, resp.Active)
		assert.Equal(t, 4, resp.Limits.SocialAccounts)
	})

	t.Run("cache miss fills from the database", func(t *testing.T) {
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			p.Usage = subscription.ReconstructUsage(2, 5, time.Now().UTC())
		})
		var filled *CachedEntitlements
		cache := &mockEntitlementCache{
			SetEntitlementsFunc: func(ctx context.Context, userID uint, ent *CachedEntitlements) error {
				filled = ent
				return nil
			},
		}
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		uc := NewGetEntitlementsUseCase(repo, cache, &mockLogger{})

		resp, err := uc.Execute(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.ConnectedAccounts)
		assert.Equal(t, 5, resp.ScheduledPostsThisWeek)
		assert.True(t, resp.CanSchedulePosts)
		require.NotNil(t, filled)
		assert.Equal(t, "standard", filled.PlanType)
	})

	t.Run("stale weekly counter reads as zero without mutation", func(t *testing.T) {
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			p.Usage = subscription.ReconstructUsage(0, 8, time.Now().UTC().AddDate(0, 0, -8))
		})
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return sub, nil
			},
			UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				t.Fatal("read path must not write")
				return nil
			},
		}
		uc := NewGetEntitlementsUseCase(repo, &mockEntitlementCache{}, &mockLogger{})

		resp, err := uc.Execute(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, 0, resp.ScheduledPostsThisWeek)
		assert.True(t, resp.CanSchedulePosts)
		assert.Equal(t, 8, sub.Usage().ScheduledPostsThisWeek())
	})

	t.Run("missing subscription sets the null marker", func(t *testing.T) {
		marked := false
		cache := &mockEntitlementCache{
			SetNullMarkerFunc: func(ctx context.Context, userID uint) error {
				marked = true
				return nil
			},
		}
		uc := NewGetEntitlementsUseCase(&mockSubscriptionRepository{}, cache, &mockLogger{})

		_, err := uc.Execute(context.Background(), 10)

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.True(t, marked)
	})

	t.Run("cached null marker short-circuits", func(t *testing.T) {
		cache := &mockEntitlementCache{
			GetEntitlementsFunc: func(ctx context.Context, userID uint) (*CachedEntitlements, error) {
				return &CachedEntitlements{NotFound: true}, nil
			},
		}
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				t.Fatal("should not hit the database behind a null marker")
				return nil, nil
			},
		}
		uc := NewGetEntitlementsUseCase(repo, cache, &mockLogger{})

		_, err := uc.Execute(context.Background(), 10)

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("cache fault falls back to the database", func(t *testing.T) {
		cache := &mockEntitlementCache{
			GetEntitlementsFunc: func(ctx context.Context, userID uint) (*CachedEntitlements, error) {
				return nil, fmt.Errorf("redis down")
			},
		}
		repo := &mockSubscriptionRepository{
			GetByUserIDFunc: func(ctx context.Context, userID uint) (*subscription.Subscription, error) {
				return storedSubscription(t, nil), nil
			},
		}
		uc := NewGetEntitlementsUseCase(repo, cache, &mockLogger{})

		resp, err := uc.Execute(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, "standard", resp.PlanType)
	})
}

func TestReconcileBillingEventUseCase_Execute(t *testing.T) {
	billing := config.BillingConfig{PremiumPriceID: "price_premium_123"}

	newUseCase := func(repo *mockSubscriptionRepository, rec *mockNotificationRecorder) *ReconcileBillingEventUseCase {
		return NewReconcileBillingEventUseCase(repo, &mockEntitlementCache{}, rec, billing, &mockLogger{})
	}

	periodStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("subscription update syncs plan and period", func(t *testing.T) {
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			cust := "cus_123"
			p.ProviderCustomerID = &cust
		})
		var persisted *subscription.Subscription
		repo := &mockSubscriptionRepository{
			GetByProviderCustomerIDFunc: func(ctx context.Context, customerID string) (*subscription.Subscription, error) {
				return sub, nil
			},
			UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				persisted = s
				return nil
			},
		}
		uc := newUseCase(repo, &mockNotificationRecorder{})

		err := uc.Execute(context.Background(), dto.BillingEventCommand{
			EventType:              EventSubscriptionUpdated,
			ProviderCustomerID:     "cus_123",
			ProviderSubscriptionID: "sub_456",
			PriceID:                "price_premium_123",
			ProviderStatus:         "active",
			PeriodStart:            periodStart,
			PeriodEnd:              periodEnd,
		})

		require.NoError(t, err)
		require.NotNil(t, persisted)
		assert.Equal(t, vo.PlanPremium, persisted.PlanType())
		assert.Equal(t, vo.StatusActive, persisted.Status())
		require.NotNil(t, persisted.CurrentPeriodEnd())
		assert.True(t, persisted.CurrentPeriodEnd().Equal(periodEnd))
		require.NotNil(t, persisted.NextBillingDate())
		assert.True(t, persisted.NextBillingDate().Equal(periodEnd))
		require.NotNil(t, persisted.ProviderSubscriptionID())
		assert.Equal(t, "sub_456", *persisted.ProviderSubscriptionID())
	})

	t.Run("unconfigured price bills as standard", func(t *testing.T) {
		sub := storedSubscription(t, nil)
		repo := &mockSubscriptionRepository{
			GetByProviderCustomerIDFunc: func(ctx context.Context, customerID string) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		uc := newUseCase(repo, &mockNotificationRecorder{})

		err := uc.Execute(context.Background(), dto.BillingEventCommand{
			EventType:          EventSubscriptionUpdated,
			ProviderCustomerID: "cus_123",
			PriceID:            "price_unknown",
			ProviderStatus:     "active",
			PeriodStart:        periodStart,
			PeriodEnd:          periodEnd,
		})

		require.NoError(t, err)
		assert.Equal(t, vo.PlanStandard, sub.PlanType())
	})

	t.Run("unknown provider status rejected", func(t *testing.T) {
		sub := storedSubscription(t, nil)
		repo := &mockSubscriptionRepository{
			GetByProviderCustomerIDFunc: func(ctx context.Context, customerID string) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		uc := newUseCase(repo, &mockNotificationRecorder{})

		err := uc.Execute(context.Background(), dto.BillingEventCommand{
			EventType:          EventSubscriptionUpdated,
			ProviderCustomerID: "cus_123",
			ProviderStatus:     "hibernating",
			PeriodStart:        periodStart,
			PeriodEnd:          periodEnd,
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("paid invoice appends history and notifies renewal", func(t *testing.T) {
		sub := storedSubscription(t, nil)
		repo := &mockSubscriptionRepository{
			GetByProviderCustomerIDFunc: func(ctx context.Context, customerID string) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		rec := &mockNotificationRecorder{}
		uc := newUseCase(repo, rec)

		err := uc.Execute(context.Background(), dto.BillingEventCommand{
			EventType:          EventInvoicePaid,
			ProviderCustomerID: "cus_123",
			InvoiceID:          "in_789",
			Amount:             10,
			Description:        "Standard plan, monthly",
			PeriodStart:        periodStart,
			PeriodEnd:          periodEnd,
		})

		require.NoError(t, err)
		history := sub.BillingHistory()
		require.Len(t, history, 1)
		assert.Equal(t, subscription.BillingStatusPaid, history[0].Status)
		assert.Equal(t, "in_789", history[0].InvoiceID)
		assert.Equal(t, []notifvo.NotificationType{notifvo.TypeSubscriptionRenewed}, recordedTypes(rec))
	})

	t.Run("failed invoice appends a failed record without renewal", func(t *testing.T) {
		sub := storedSubscription(t, nil)
		repo := &mockSubscriptionRepository{
			GetByProviderCustomerIDFunc: func(ctx context.Context, customerID string) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		rec := &mockNotificationRecorder{}
		uc := newUseCase(repo, rec)

		err := uc.Execute(context.Background(), dto.BillingEventCommand{
			EventType:          EventInvoiceFailed,
			ProviderCustomerID: "cus_123",
			InvoiceID:          "in_790",
			Amount:             10,
			PeriodStart:        periodStart,
			PeriodEnd:          periodEnd,
		})

		require.NoError(t, err)
		history := sub.BillingHistory()
		require.Len(t, history, 1)
		assert.Equal(t, subscription.BillingStatusFailed, history[0].Status)
		assert.Empty(t, rec.recorded)
	})

	t.Run("unknown customer creates from event metadata", func(t *testing.T) {
		var created *subscription.Subscription
		repo := &mockSubscriptionRepository{
			CreateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				s.SetID(2)
				created = s
				return nil
			},
		}
		uc := newUseCase(repo, &mockNotificationRecorder{})

		err := uc.Execute(context.Background(), dto.BillingEventCommand{
			EventType:          EventSubscriptionCreated,
			ProviderCustomerID: "cus_new",
			UserID:             42,
			PriceID:            "price_premium_123",
			ProviderStatus:     "active",
			PeriodStart:        periodStart,
			PeriodEnd:          periodEnd,
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(42), created.UserID())
		assert.Equal(t, vo.PlanPremium, created.PlanType())
	})

	t.Run("unknown customer without metadata reports not found", func(t *testing.T) {
		uc := newUseCase(&mockSubscriptionRepository{}, &mockNotificationRecorder{})

		err := uc.Execute(context.Background(), dto.BillingEventCommand{
			EventType:          EventSubscriptionCreated,
			ProviderCustomerID: "cus_unknown",
			ProviderStatus:     "active",
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestHandleProviderCancellationUseCase_Execute(t *testing.T) {
	t.Run("cancels and clears the subscription link", func(t *testing.T) {
		sub := storedSubscription(t, func(p *subscription.ReconstructParams) {
			cust := "cus_123"
			subID := "sub_456"
			p.ProviderCustomerID = &cust
			p.ProviderSubscriptionID = &subID
		})
		repo := &mockSubscriptionRepository{
			GetByProviderCustomerIDFunc: func(ctx context.Context, customerID string) (*subscription.Subscription, error) {
				return sub, nil
			},
		}
		rec := &mockNotificationRecorder{}
		uc := NewHandleProviderCancellationUseCase(repo, &mockEntitlementCache{}, rec, &mockLogger{})

		err := uc.Execute(context.Background(), "cus_123")

		require.NoError(t, err)
		assert.Equal(t, vo.StatusCancelled, sub.Status())
		assert.Nil(t, sub.ProviderSubscriptionID())
		require.NotNil(t, sub.ProviderCustomerID())
		assert.Equal(t, []notifvo.NotificationType{notifvo.TypeSubscriptionCancelled}, recordedTypes(rec))
	})

	t.Run("unknown customer reports not found", func(t *testing.T) {
		uc := NewHandleProviderCancellationUseCase(&mockSubscriptionRepository{}, &mockEntitlementCache{}, &mockNotificationRecorder{}, &mockLogger{})

		err := uc.Execute(context.Background(), "cus_unknown")

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestExpireOverdueSubscriptionsUseCase_Execute(t *testing.T) {
	past := time.Now().UTC().AddDate(0, 0, -2)

	t.Run("expires candidates and notifies", func(t *testing.T) {
		subs := []*subscription.Subscription{
			storedSubscription(t, func(p *subscription.ReconstructParams) {
				p.ID = 1
				p.UserID = 10
				p.EndDate = &past
			}),
			storedSubscription(t, func(p *subscription.ReconstructParams) {
				p.ID = 2
				p.UserID = 11
				p.PlanType = vo.PlanFreeTrial
				p.Status = vo.StatusTrial
				p.TrialEndDate = &past
				p.EndDate = &past
				p.Limits = vo.PlanLimitsFor(vo.PlanFreeTrial)
			}),
		}
		repo := &mockSubscriptionRepository{
			ListExpiredCandidatesFunc: func(ctx context.Context, limit int) ([]*subscription.Subscription, error) {
				return subs, nil
			},
		}
		rec := &mockNotificationRecorder{}
		uc := NewExpireOverdueSubscriptionsUseCase(repo, &mockEntitlementCache{}, rec, &mockLogger{})

		resp, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, resp.ExpiredCount)
		for _, sub := range subs {
			assert.Equal(t, vo.StatusExpired, sub.Status())
		}
		assert.Equal(t, []notifvo.NotificationType{
			notifvo.TypeSubscriptionExpired,
			notifvo.TypeSubscriptionExpired,
		}, recordedTypes(rec))
	})

	t.Run("update failure skips without aborting the sweep", func(t *testing.T) {
		subs := []*subscription.Subscription{
			storedSubscription(t, func(p *subscription.ReconstructParams) {
				p.ID = 1
				p.EndDate = &past
			}),
			storedSubscription(t, func(p *subscription.ReconstructParams) {
				p.ID = 2
				p.EndDate = &past
			}),
		}
		repo := &mockSubscriptionRepository{
			ListExpiredCandidatesFunc: func(ctx context.Context, limit int) ([]*subscription.Subscription, error) {
				return subs, nil
			},
			UpdateFunc: func(ctx context.Context, s *subscription.Subscription) error {
				if s.ID() == 1 {
					return fmt.Errorf("deadlock")
				}
				return nil
			},
		}
		uc := NewExpireOverdueSubscriptionsUseCase(repo, &mockEntitlementCache{}, &mockNotificationRecorder{}, &mockLogger{})

		resp, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, resp.ExpiredCount)
	})

	t.Run("empty sweep is quiet", func(t *testing.T) {
		uc := NewExpireOverdueSubscriptionsUseCase(&mockSubscriptionRepository{}, &mockEntitlementCache{}, &mockNotificationRecorder{}, &mockLogger{})

		resp, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, resp.ExpiredCount)
	})
}

func TestResetWeeklyUsageUseCase_Execute(t *testing.T) {
	stale := storedSubscription(t, func(p *subscription.ReconstructParams) {
		p.Usage = subscription.ReconstructUsage(2, 7, time.Now().UTC().AddDate(0, 0, -8))
	})
	repo := &mockSubscriptionRepository{
		ListStaleWeeklyUsageFunc: func(ctx context.Context, weekStart time.Time, limit int) ([]*subscription.Subscription, error) {
			return []*subscription.Subscription{stale}, nil
		},
	}
	uc := NewResetWeeklyUsageUseCase(repo, &mockEntitlementCache{}, &mockLogger{})

	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, stale.Usage().ScheduledPostsThisWeek())
	assert.Equal(t, 2, stale.Usage().ConnectedAccounts())
}
