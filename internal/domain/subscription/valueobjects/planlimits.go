package valueobjects

// Unlimited is the sentinel meaning a limit has no ceiling.
const Unlimited = -1

type AnalyticsTier string

const (
	AnalyticsBasic    AnalyticsTier = "basic"
	AnalyticsAdvanced AnalyticsTier = "advanced"
	AnalyticsCustom   AnalyticsTier = "custom"
)

type SupportTier string

const (
	SupportCommunity SupportTier = "community"
	SupportPriority  SupportTier = "priority"
	SupportPremium   SupportTier = "premium"
)

// PlanLimits is the entitlement set attached to a plan. Integer limits
// use Unlimited (-1) as a no-ceiling sentinel; all other values are
// non-negative ceilings.
type PlanLimits struct {
	SocialAccounts        int           `json:"social_accounts"`
	ScheduledPostsPerWeek int           `json:"scheduled_posts_per_week"`
	Analytics             AnalyticsTier `json:"analytics"`
	Support               SupportTier   `json:"support"`
	TeamMembers           int           `json:"team_members"`
}

// planTable is the single source of truth for limits and prices per plan.
// ChangePlan must recompute from this table before any persistence.
var planTable = map[PlanType]struct {
	limits PlanLimits
	price  float64
}{
	PlanFreeTrial: {
		limits: PlanLimits{
			SocialAccounts:        2,
			ScheduledPostsPerWeek: 5,
			Analytics:             AnalyticsBasic,
			Support:               SupportCommunity,
			TeamMembers:           1,
		},
		price: 0,
	},
	PlanFree: {
		limits: PlanLimits{
			SocialAccounts:        1,
			ScheduledPostsPerWeek: 1,
			Analytics:             AnalyticsBasic,
			Support:               SupportCommunity,
			TeamMembers:           1,
		},
		price: 0,
	},
	PlanStandard: {
		limits: PlanLimits{
			SocialAccounts:        4,
			ScheduledPostsPerWeek: 8,
			Analytics:             AnalyticsAdvanced,
			Support:               SupportPriority,
			TeamMembers:           1,
		},
		price: 10,
	},
	PlanPremium: {
		limits: PlanLimits{
			SocialAccounts:        Unlimited,
			ScheduledPostsPerWeek: Unlimited,
			Analytics:             AnalyticsCustom,
			Support:               SupportPremium,
			TeamMembers:           Unlimited,
		},
		price: 25,
	},
}

// PlanLimitsFor returns the limit row for the given plan. Unknown plans
// fall back to the free row.
func PlanLimitsFor(p PlanType) PlanLimits {
	row, ok := planTable[p]
	if !ok {
		row = planTable[PlanFree]
	}
	return row.limits
}

// PlanPriceFor returns the monthly price for the given plan. Unknown
// plans fall back to the free price.
func PlanPriceFor(p PlanType) float64 {
	row, ok := planTable[p]
	if !ok {
		row = planTable[PlanFree]
	}
	return row.price
}

// AllowsMoreAccounts reports whether one more social account fits under
// the limit given the current count. Unlimited always allows.
func (l PlanLimits) AllowsMoreAccounts(connected int) bool {
	if l.SocialAccounts == Unlimited {
		return true
	}
	return connected < l.SocialAccounts
}

// AllowsMorePosts reports whether one more scheduled post fits under the
// weekly limit given the current count. Unlimited always allows.
func (l PlanLimits) AllowsMorePosts(scheduledThisWeek int) bool {
	if l.ScheduledPostsPerWeek == Unlimited {
		return true
	}
	return scheduledThisWeek < l.ScheduledPostsPerWeek
}
