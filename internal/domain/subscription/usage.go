package subscription

import "time"

// Usage tracks live consumption against the plan limits. The weekly
// post counter is reset lazily when a scheduling window boundary is
// crossed; the connected-account counter never resets.
type Usage struct {
	connectedAccounts      int
	scheduledPostsThisWeek int
	lastResetDate          time.Time
}

func NewUsage(now time.Time) Usage {
	return Usage{lastResetDate: now}
}

func ReconstructUsage(connectedAccounts, scheduledPostsThisWeek int, lastResetDate time.Time) Usage {
	if connectedAccounts < 0 {
		connectedAccounts = 0
	}
	if scheduledPostsThisWeek < 0 {
		scheduledPostsThisWeek = 0
	}
	return Usage{
		connectedAccounts:      connectedAccounts,
		scheduledPostsThisWeek: scheduledPostsThisWeek,
		lastResetDate:          lastResetDate,
	}
}

func (u Usage) ConnectedAccounts() int {
	return u.connectedAccounts
}

func (u Usage) ScheduledPostsThisWeek() int {
	return u.scheduledPostsThisWeek
}

func (u Usage) LastResetDate() time.Time {
	return u.lastResetDate
}
