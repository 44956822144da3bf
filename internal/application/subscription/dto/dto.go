package dto

import (
	"time"

	"plume/internal/domain/subscription"
	vo "plume/internal/domain/subscription/valueobjects"
	"plume/internal/shared/biztime"
)

// ChangePlanRequest carries a user plan switch. PlanType must be one of
// the selectable plans; the trial cannot be chosen.
type ChangePlanRequest struct {
	UserID   uint
	PlanType string `json:"plan_type" binding:"required"`
}

// RecordAccountConnectedRequest reports that a social account was linked.
type RecordAccountConnectedRequest struct {
	UserID      uint
	Platform    string `json:"platform" binding:"required"`
	AccountName string `json:"account_name" binding:"required"`
}

// RecordAccountDisconnectedRequest reports that a social account was removed.
type RecordAccountDisconnectedRequest struct {
	UserID      uint
	Platform    string `json:"platform" binding:"required"`
	AccountName string `json:"account_name" binding:"required"`
}

// RecordPostScheduledRequest reports that a post entered the schedule.
type RecordPostScheduledRequest struct {
	UserID       uint
	Platform     string `json:"platform" binding:"required"`
	PostID       uint   `json:"post_id" binding:"required"`
	ScheduledFor string `json:"scheduled_for" binding:"required"`
}

// BillingEventCommand is the normalized form of a payment-provider
// webhook event. Identifiers are opaque; PriceID selects the plan.
type BillingEventCommand struct {
	EventType              string
	ProviderCustomerID     string
	ProviderSubscriptionID string
	// UserID comes from event metadata; required only when no
	// subscription is linked to the customer yet.
	UserID         uint
	PriceID        string
	ProviderStatus string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	InvoiceID      string
	Amount         float64
	Description    string
}

type UsageInfo struct {
	ConnectedAccounts      int       `json:"connected_accounts"`
	ScheduledPostsThisWeek int       `json:"scheduled_posts_this_week"`
	LastResetDate          time.Time `json:"last_reset_date"`
}

type BillingRecordResponse struct {
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	InvoiceID   string    `json:"invoice_id"`
	Description string    `json:"description"`
}

type SubscriptionResponse struct {
	ID              uint                    `json:"id"`
	UUID            string                  `json:"uuid"`
	UserID          uint                    `json:"user_id"`
	PlanType        string                  `json:"plan_type"`
	Status          string                  `json:"status"`
	Price           float64                 `json:"price"`
	Currency        string                  `json:"currency"`
	StartDate       time.Time               `json:"start_date"`
	EndDate         *time.Time              `json:"end_date,omitempty"`
	TrialEndDate    *time.Time              `json:"trial_end_date,omitempty"`
	NextBillingDate *time.Time              `json:"next_billing_date,omitempty"`
	Limits          vo.PlanLimits           `json:"limits"`
	Usage           UsageInfo               `json:"usage"`
	BillingHistory  []BillingRecordResponse `json:"billing_history"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// EntitlementsResponse is the read-side snapshot the frontend gates
// features on. Counters are reported as of the current scheduling
// window without mutating the aggregate.
type EntitlementsResponse struct {
	PlanType               string        `json:"plan_type"`
	Status                 string        `json:"status"`
	Active                 bool          `json:"active"`
	Limits                 vo.PlanLimits `json:"limits"`
	ConnectedAccounts      int           `json:"connected_accounts"`
	ScheduledPostsThisWeek int           `json:"scheduled_posts_this_week"`
	CanConnectMoreAccounts bool          `json:"can_connect_more_accounts"`
	CanSchedulePosts       bool          `json:"can_schedule_posts"`
	TrialDaysRemaining     int           `json:"trial_days_remaining"`
}

type ExpireSweepResponse struct {
	ExpiredCount int `json:"expired_count"`
}

func ToSubscriptionResponse(sub *subscription.Subscription) *SubscriptionResponse {
	history := sub.BillingHistory()
	records := make([]BillingRecordResponse, 0, len(history))
	for _, rec := range history {
		records = append(records, BillingRecordResponse{
			Date:        rec.Date,
			Amount:      rec.Amount,
			Status:      string(rec.Status),
			InvoiceID:   rec.InvoiceID,
			Description: rec.Description,
		})
	}

	return &SubscriptionResponse{
		ID:              sub.ID(),
		UUID:            sub.UUID(),
		UserID:          sub.UserID(),
		PlanType:        sub.PlanType().String(),
		Status:          sub.Status().String(),
		Price:           sub.Price(),
		Currency:        sub.Currency(),
		StartDate:       sub.StartDate(),
		EndDate:         sub.EndDate(),
		TrialEndDate:    sub.TrialEndDate(),
		NextBillingDate: sub.NextBillingDate(),
		Limits:          sub.Limits(),
		Usage: UsageInfo{
			ConnectedAccounts:      sub.Usage().ConnectedAccounts(),
			ScheduledPostsThisWeek: sub.Usage().ScheduledPostsThisWeek(),
			LastResetDate:          sub.Usage().LastResetDate(),
		},
		BillingHistory: records,
		CreatedAt:      sub.CreatedAt(),
		UpdatedAt:      sub.UpdatedAt(),
	}
}

// ToEntitlementsResponse derives the snapshot at a point in time. A
// weekly counter from a previous scheduling window reads as zero; the
// stored value is only rewritten on the scheduling write path.
func ToEntitlementsResponse(sub *subscription.Subscription, now time.Time) *EntitlementsResponse {
	postsThisWeek := sub.Usage().ScheduledPostsThisWeek()
	if sub.Usage().LastResetDate().Before(biztime.StartOfWeekUTC(now)) {
		postsThisWeek = 0
	}

	canSchedule := !sub.IsExpired(now) && sub.Limits().AllowsMorePosts(postsThisWeek)

	return &EntitlementsResponse{
		PlanType:               sub.PlanType().String(),
		Status:                 sub.Status().String(),
		Active:                 sub.HasActiveSubscription(now),
		Limits:                 sub.Limits(),
		ConnectedAccounts:      sub.Usage().ConnectedAccounts(),
		ScheduledPostsThisWeek: postsThisWeek,
		CanConnectMoreAccounts: sub.CanConnectMoreAccounts(),
		CanSchedulePosts:       canSchedule,
		TrialDaysRemaining:     sub.DaysRemaining(now),
	}
}
