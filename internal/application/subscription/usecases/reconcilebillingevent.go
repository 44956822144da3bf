package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/subscription/dto"
	notificationdomain "plume/internal/domain/notification"
	"plume/internal/domain/subscription"
	vo "plume/internal/domain/subscription/valueobjects"
	"plume/internal/shared/config"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
)

// Provider event types the reconciler understands. Anything else is
// acknowledged and ignored by the webhook handler before it gets here.
const (
	EventSubscriptionCreated = "customer.subscription.created"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
	EventInvoicePaid         = "invoice.payment_succeeded"
	EventInvoiceFailed       = "invoice.payment_failed"
)

// providerStatusMap translates provider subscription statuses into the
// closed local status set. Unknown statuses are rejected, not stored.
var providerStatusMap = map[string]vo.SubscriptionStatus{
	"trialing":   vo.StatusTrial,
	"active":     vo.StatusActive,
	"past_due":   vo.StatusPastDue,
	"canceled":   vo.StatusCancelled,
	"unpaid":     vo.StatusInactive,
	"incomplete": vo.StatusInactive,
}

// ReconcileBillingEventUseCase applies payment-provider webhook events
// to the local subscription record. The provider is the source of truth
// for paid-state transitions; this use case never calls the provider.
type ReconcileBillingEventUseCase struct {
	repo     subscription.Repository
	cache    EntitlementCacheManager
	notifier NotificationRecorder
	billing  config.BillingConfig
	logger   logger.Interface
}

func NewReconcileBillingEventUseCase(
	repo subscription.Repository,
	cache EntitlementCacheManager,
	notifier NotificationRecorder,
	billing config.BillingConfig,
	logger logger.Interface,
) *ReconcileBillingEventUseCase {
	return &ReconcileBillingEventUseCase{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		billing:  billing,
		logger:   logger,
	}
}

func (uc *ReconcileBillingEventUseCase) Execute(ctx context.Context, cmd dto.BillingEventCommand) error {
	sub, err := uc.lookupOrCreate(ctx, cmd)
	if err != nil {
		return err
	}

	switch cmd.EventType {
	case EventSubscriptionCreated, EventSubscriptionUpdated:
		if err := uc.applyState(sub, cmd); err != nil {
			return err
		}
	case EventInvoicePaid:
		if err := uc.appendInvoice(sub, cmd, subscription.BillingStatusPaid); err != nil {
			return err
		}
	case EventInvoiceFailed:
		if err := uc.appendInvoice(sub, cmd, subscription.BillingStatusFailed); err != nil {
			return err
		}
	default:
		return errors.NewBadRequestError(fmt.Sprintf("unsupported billing event type: %s", cmd.EventType))
	}

	sub.LinkProvider(cmd.ProviderCustomerID, cmd.ProviderSubscriptionID)

	if err := uc.persist(ctx, sub); err != nil {
		return err
	}

	if err := uc.cache.InvalidateEntitlements(ctx, sub.UserID()); err != nil {
		uc.logger.Warnw("failed to invalidate entitlement cache", "user_id", sub.UserID(), "error", err)
	}

	uc.notify(ctx, sub, cmd)

	uc.logger.Infow("billing event reconciled",
		"event_type", cmd.EventType,
		"user_id", sub.UserID(),
		"plan_type", sub.PlanType().String(),
		"status", sub.Status().String(),
	)
	return nil
}

func (uc *ReconcileBillingEventUseCase) lookupOrCreate(ctx context.Context, cmd dto.BillingEventCommand) (*subscription.Subscription, error) {
	if cmd.ProviderCustomerID == "" {
		return nil, errors.NewBadRequestError("billing event is missing the provider customer ID")
	}

	sub, err := uc.repo.GetByProviderCustomerID(ctx, cmd.ProviderCustomerID)
	if err != nil {
		uc.logger.Errorw("failed to look up subscription by provider customer", "provider_customer_id", cmd.ProviderCustomerID, "error", err)
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}
	if sub != nil {
		return sub, nil
	}

	// First event for this customer. Fall back to the user ID carried
	// in the event metadata.
	if cmd.UserID == 0 {
		return nil, errors.NewNotFoundError("no subscription linked to provider customer")
	}

	sub, err = uc.repo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub != nil {
		return sub, nil
	}

	created, err := subscription.NewSubscription(cmd.UserID)
	if err != nil {
		return nil, errors.NewValidationError("invalid subscription", err.Error())
	}
	if err := uc.repo.Create(ctx, created); err != nil {
		uc.logger.Errorw("failed to create subscription for billing event", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return created, nil
}

func (uc *ReconcileBillingEventUseCase) applyState(sub *subscription.Subscription, cmd dto.BillingEventCommand) error {
	status, ok := providerStatusMap[cmd.ProviderStatus]
	if !ok {
		return errors.NewValidationError(fmt.Sprintf("unknown provider subscription status: %s", cmd.ProviderStatus))
	}

	planType := uc.planForPrice(cmd.PriceID)

	if err := sub.ApplyProviderState(planType, status, cmd.PeriodStart, cmd.PeriodEnd); err != nil {
		return errors.NewValidationError("cannot apply provider state", err.Error())
	}
	return nil
}

// planForPrice maps the provider price ID onto a plan. Only the premium
// price is configured; every other paid price bills as standard.
func (uc *ReconcileBillingEventUseCase) planForPrice(priceID string) vo.PlanType {
	if uc.billing.PremiumPriceID != "" && priceID == uc.billing.PremiumPriceID {
		return vo.PlanPremium
	}
	return vo.PlanStandard
}

func (uc *ReconcileBillingEventUseCase) appendInvoice(sub *subscription.Subscription, cmd dto.BillingEventCommand, status subscription.BillingStatus) error {
	date := cmd.PeriodStart
	if date.IsZero() {
		date = sub.UpdatedAt()
	}
	rec, err := subscription.NewBillingRecord(date, cmd.Amount, status, cmd.InvoiceID, cmd.Description)
	if err != nil {
		return errors.NewValidationError("invalid billing record", err.Error())
	}
	sub.AppendBillingRecord(rec)
	return nil
}

func (uc *ReconcileBillingEventUseCase) persist(ctx context.Context, sub *subscription.Subscription) error {
	if err := uc.repo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist reconciled subscription", "user_id", sub.UserID(), "error", err)
		return fmt.Errorf("failed to persist subscription: %w", err)
	}
	return nil
}

func (uc *ReconcileBillingEventUseCase) notify(ctx context.Context, sub *subscription.Subscription, cmd dto.BillingEventCommand) {
	var (
		n   *notificationdomain.Notification
		err error
	)

	switch {
	case cmd.EventType == EventInvoicePaid:
		n, err = notificationdomain.NewSubscriptionRenewed(sub.UserID(), sub.PlanType().String(), cmd.InvoiceID)
	case sub.Status() == vo.StatusExpired:
		n, err = notificationdomain.NewSubscriptionExpired(sub.UserID(), sub.PlanType().String())
	default:
		return
	}

	if err != nil {
		uc.logger.Warnw("failed to build billing notification", "user_id", sub.UserID(), "error", err)
		return
	}
	if err := uc.notifier.Record(ctx, n); err != nil {
		uc.logger.Warnw("failed to record billing notification", "user_id", sub.UserID(), "error", err)
	}
}
