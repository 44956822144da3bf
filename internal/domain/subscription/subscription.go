package subscription

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "plume/internal/domain/subscription/valueobjects"
	"plume/internal/shared/biztime"
)

// Subscription is the aggregate root for a user's entitlements: plan,
// status, billing dates, limits, and live usage counters. Exactly one
// subscription exists per user; plan switches mutate this record rather
// than creating a new one.
type Subscription struct {
	id       uint
	uuid     string
	userID   uint
	planType vo.PlanType
	status   vo.SubscriptionStatus

	price    float64
	currency string

	startDate          time.Time
	endDate            *time.Time
	trialEndDate       *time.Time
	nextBillingDate    *time.Time
	currentPeriodStart *time.Time
	currentPeriodEnd   *time.Time

	limits vo.PlanLimits
	usage  Usage

	billingHistory []BillingRecord

	// Opaque payment-provider linkage; never interpreted here.
	providerCustomerID     *string
	providerSubscriptionID *string

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewSubscription creates the signup-default subscription: a 30-day
// free trial with the trial limit row applied.
func NewSubscription(userID uint) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := biztime.NowUTC()
	trialEnd := now.AddDate(0, 0, 30)

	return &Subscription{
		uuid:      uuid.NewString(),
		userID:    userID,
		planType:  vo.PlanFreeTrial,
		status:    vo.StatusTrial,
		price:     vo.PlanPriceFor(vo.PlanFreeTrial),
		currency:  "USD",
		startDate: now,
		// The trial is the only plan that expires by default.
		endDate:      &trialEnd,
		trialEndDate: &trialEnd,
		limits:       vo.PlanLimitsFor(vo.PlanFreeTrial),
		usage:        NewUsage(now),
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID                     uint
	UUID                   string
	UserID                 uint
	PlanType               vo.PlanType
	Status                 vo.SubscriptionStatus
	Price                  float64
	Currency               string
	StartDate              time.Time
	EndDate                *time.Time
	TrialEndDate           *time.Time
	NextBillingDate        *time.Time
	CurrentPeriodStart     *time.Time
	CurrentPeriodEnd       *time.Time
	Limits                 vo.PlanLimits
	Usage                  Usage
	BillingHistory         []BillingRecord
	ProviderCustomerID     *string
	ProviderSubscriptionID *string
	Version                int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Reconstruct rebuilds a subscription from persistence.
func Reconstruct(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !p.PlanType.IsValid() {
		return nil, fmt.Errorf("invalid plan type: %s", p.PlanType)
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}

	return &Subscription{
		id:                     p.ID,
		uuid:                   p.UUID,
		userID:                 p.UserID,
		planType:               p.PlanType,
		status:                 p.Status,
		price:                  p.Price,
		currency:               p.Currency,
		startDate:              p.StartDate,
		endDate:                p.EndDate,
		trialEndDate:           p.TrialEndDate,
		nextBillingDate:        p.NextBillingDate,
		currentPeriodStart:     p.CurrentPeriodStart,
		currentPeriodEnd:       p.CurrentPeriodEnd,
		limits:                 p.Limits,
		usage:                  p.Usage,
		billingHistory:         p.BillingHistory,
		providerCustomerID:     p.ProviderCustomerID,
		providerSubscriptionID: p.ProviderSubscriptionID,
		version:                p.Version,
		createdAt:              p.CreatedAt,
		updatedAt:              p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                       { return s.id }
func (s *Subscription) UUID() string                   { return s.uuid }
func (s *Subscription) UserID() uint                   { return s.userID }
func (s *Subscription) PlanType() vo.PlanType          { return s.planType }
func (s *Subscription) Status() vo.SubscriptionStatus  { return s.status }
func (s *Subscription) Price() float64                 { return s.price }
func (s *Subscription) Currency() string               { return s.currency }
func (s *Subscription) StartDate() time.Time           { return s.startDate }
func (s *Subscription) EndDate() *time.Time            { return s.endDate }
func (s *Subscription) TrialEndDate() *time.Time       { return s.trialEndDate }
func (s *Subscription) NextBillingDate() *time.Time    { return s.nextBillingDate }
func (s *Subscription) CurrentPeriodStart() *time.Time { return s.currentPeriodStart }
func (s *Subscription) CurrentPeriodEnd() *time.Time   { return s.currentPeriodEnd }
func (s *Subscription) Limits() vo.PlanLimits          { return s.limits }
func (s *Subscription) Usage() Usage                   { return s.usage }
func (s *Subscription) Version() int                   { return s.version }
func (s *Subscription) CreatedAt() time.Time           { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time           { return s.updatedAt }

func (s *Subscription) ProviderCustomerID() *string     { return s.providerCustomerID }
func (s *Subscription) ProviderSubscriptionID() *string { return s.providerSubscriptionID }

// BillingHistory returns the append-only billing entries, oldest first.
func (s *Subscription) BillingHistory() []BillingRecord {
	history := make([]BillingRecord, len(s.billingHistory))
	copy(history, s.billingHistory)
	return history
}

// SetID sets the subscription ID (persistence layer use only).
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// IsExpired reports whether the subscription has passed its end dates.
// A trial expires when now is past the trial end; any plan with an end
// date expires past that date. Plans without an end date never expire
// through this path.
func (s *Subscription) IsExpired(now time.Time) bool {
	if s.planType == vo.PlanFreeTrial && s.trialEndDate != nil && now.After(*s.trialEndDate) {
		return true
	}
	if s.endDate != nil && now.After(*s.endDate) {
		return true
	}
	return false
}

// DaysRemaining returns the whole days left in the trial, rounded up
// and floored at zero. Non-trial plans always report zero.
func (s *Subscription) DaysRemaining(now time.Time) int {
	if s.planType != vo.PlanFreeTrial || s.trialEndDate == nil {
		return 0
	}
	return biztime.DaysRemainingCeil(now, *s.trialEndDate)
}

// HasActiveSubscription reports whether the user currently has access:
// not expired by date and in a service-granting status.
func (s *Subscription) HasActiveSubscription(now time.Time) bool {
	return !s.IsExpired(now) && s.status.CanUseService()
}

// CanConnectMoreAccounts checks the connected-account counter against
// the plan limit. The unlimited sentinel always passes.
func (s *Subscription) CanConnectMoreAccounts() bool {
	return s.limits.AllowsMoreAccounts(s.usage.connectedAccounts)
}

// ResetWeeklyUsageIfDue zeroes the weekly post counter when the current
// scheduling window started after the last reset. Returns true when a
// reset happened; the caller must persist the aggregate in that case.
func (s *Subscription) ResetWeeklyUsageIfDue(now time.Time) bool {
	weekStart := biztime.StartOfWeekUTC(now)
	if !s.usage.lastResetDate.Before(weekStart) {
		return false
	}
	s.usage.scheduledPostsThisWeek = 0
	s.usage.lastResetDate = now
	s.touch()
	return true
}

// CanScheduleMorePosts is the pure scheduling predicate. Callers on the
// write path must run ResetWeeklyUsageIfDue first so a stale counter
// from a previous week cannot deny a permitted post.
func (s *Subscription) CanScheduleMorePosts(now time.Time) bool {
	if s.IsExpired(now) {
		return false
	}
	return s.limits.AllowsMorePosts(s.usage.scheduledPostsThisWeek)
}

// RecordAccountConnected increments the connected-account counter.
// The entitlement check is the caller's responsibility.
func (s *Subscription) RecordAccountConnected() {
	s.usage.connectedAccounts++
	s.touch()
}

// RecordAccountDisconnected decrements the connected-account counter,
// never below zero.
func (s *Subscription) RecordAccountDisconnected() {
	if s.usage.connectedAccounts > 0 {
		s.usage.connectedAccounts--
	}
	s.touch()
}

// RecordPostScheduled increments the weekly post counter.
func (s *Subscription) RecordPostScheduled() {
	s.usage.scheduledPostsThisWeek++
	s.touch()
}

// ChangePlan switches the subscription to a user-selectable plan and
// synchronously recomputes limits and price from the plan table. The
// trial end date is cleared: once a user picks a plan the trial is over.
func (s *Subscription) ChangePlan(newPlan vo.PlanType) error {
	if !newPlan.IsValid() {
		return fmt.Errorf("invalid plan type: %s", newPlan)
	}
	if !newPlan.IsSelectable() {
		return fmt.Errorf("plan %s cannot be selected", newPlan)
	}

	s.planType = newPlan
	s.applyPlanTable()
	s.trialEndDate = nil
	s.endDate = nil

	if s.status != vo.StatusActive {
		if !s.status.CanTransitionTo(vo.StatusActive) {
			return fmt.Errorf("cannot activate subscription with status %s", s.status)
		}
		s.status = vo.StatusActive
	}

	s.touch()
	return nil
}

// applyPlanTable recomputes limits and price from the current plan.
// This must run before persistence whenever planType changes.
func (s *Subscription) applyPlanTable() {
	s.limits = vo.PlanLimitsFor(s.planType)
	s.price = vo.PlanPriceFor(s.planType)
}

// ApplyProviderState reconciles plan and status reported by the payment
// provider. Unknown statuses are rejected rather than stored.
func (s *Subscription) ApplyProviderState(planType vo.PlanType, status vo.SubscriptionStatus, periodStart, periodEnd time.Time) error {
	if !planType.IsValid() {
		return fmt.Errorf("invalid plan type: %s", planType)
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid subscription status: %s", status)
	}

	s.planType = planType
	s.applyPlanTable()
	s.status = status
	s.trialEndDate = nil
	s.currentPeriodStart = &periodStart
	s.currentPeriodEnd = &periodEnd
	s.nextBillingDate = &periodEnd
	s.touch()
	return nil
}

// LinkProvider stores the opaque provider identifiers.
func (s *Subscription) LinkProvider(customerID, subscriptionID string) {
	if customerID != "" {
		s.providerCustomerID = &customerID
	}
	if subscriptionID != "" {
		s.providerSubscriptionID = &subscriptionID
	}
	s.touch()
}

// CancelByProvider handles the provider-initiated deletion event:
// status moves to cancelled and the provider subscription link is cleared.
func (s *Subscription) CancelByProvider() error {
	if s.status == vo.StatusCancelled {
		s.providerSubscriptionID = nil
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("cannot cancel subscription with status %s", s.status)
	}
	s.status = vo.StatusCancelled
	s.providerSubscriptionID = nil
	s.nextBillingDate = nil
	s.touch()
	return nil
}

// MarkExpired transitions the subscription to expired after its end
// date has passed.
func (s *Subscription) MarkExpired() error {
	if s.status == vo.StatusExpired {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot expire subscription with status %s", s.status)
	}
	s.status = vo.StatusExpired
	s.touch()
	return nil
}

// AppendBillingRecord adds one immutable entry to the billing history.
func (s *Subscription) AppendBillingRecord(rec BillingRecord) {
	s.billingHistory = append(s.billingHistory, rec)
	s.touch()
}

func (s *Subscription) touch() {
	s.updatedAt = biztime.NowUTC()
	s.version++
}
