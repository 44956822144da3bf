package valueobjects

import "fmt"

type SubscriptionStatus string

const (
	StatusTrial     SubscriptionStatus = "trial"
	StatusActive    SubscriptionStatus = "active"
	StatusInactive  SubscriptionStatus = "inactive"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusPastDue   SubscriptionStatus = "past_due"
	StatusExpired   SubscriptionStatus = "expired"
)

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusTrial:     true,
	StatusActive:    true,
	StatusInactive:  true,
	StatusCancelled: true,
	StatusPastDue:   true,
	StatusExpired:   true,
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsValid() bool {
	return ValidStatuses[s]
}

// CanUseService reports whether the subscription grants access at all.
// Expiration by date is checked separately on the aggregate.
func (s SubscriptionStatus) CanUseService() bool {
	return s == StatusTrial || s == StatusActive
}

func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusTrial:     {StatusActive, StatusCancelled, StatusExpired, StatusInactive},
		StatusActive:    {StatusPastDue, StatusCancelled, StatusExpired, StatusInactive},
		StatusInactive:  {StatusActive, StatusTrial},
		StatusPastDue:   {StatusActive, StatusCancelled, StatusExpired},
		StatusCancelled: {StatusActive},
		StatusExpired:   {StatusActive},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

func NewSubscriptionStatus(str string) (SubscriptionStatus, error) {
	s := SubscriptionStatus(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid subscription status: %s", str)
	}
	return s, nil
}
