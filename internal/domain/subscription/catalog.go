package subscription

import vo "plume/internal/domain/subscription/valueobjects"

// PlanDetails is the human-readable catalog entry for a plan, served to
// pricing pages. Presentation only; entitlement checks read the limit
// table, never this catalog.
type PlanDetails struct {
	PlanType vo.PlanType   `json:"plan_type"`
	Name     string        `json:"name"`
	Price    float64       `json:"price"`
	Currency string        `json:"currency"`
	Limits   vo.PlanLimits `json:"limits"`
	Features []string      `json:"features"`
}

var planCatalog = map[vo.PlanType]PlanDetails{
	vo.PlanFreeTrial: {
		PlanType: vo.PlanFreeTrial,
		Name:     "Free Trial",
		Features: []string{
			"2 social accounts",
			"5 scheduled posts per week",
			"Basic analytics",
			"Community support",
		},
	},
	vo.PlanFree: {
		PlanType: vo.PlanFree,
		Name:     "Free",
		Features: []string{
			"1 social account",
			"1 scheduled post per week",
			"Basic analytics",
			"Community support",
		},
	},
	vo.PlanStandard: {
		PlanType: vo.PlanStandard,
		Name:     "Standard",
		Features: []string{
			"4 social accounts",
			"8 scheduled posts per week",
			"Advanced analytics",
			"Priority support",
		},
	},
	vo.PlanPremium: {
		PlanType: vo.PlanPremium,
		Name:     "Premium",
		Features: []string{
			"Unlimited social accounts",
			"Unlimited scheduled posts",
			"Custom analytics",
			"Premium support",
			"Unlimited team members",
		},
	},
}

// GetPlanDetails returns the catalog entry for a plan, with price and
// limits filled from the plan table. Unknown plans fall back to free.
func GetPlanDetails(p vo.PlanType) PlanDetails {
	details, ok := planCatalog[p]
	if !ok {
		details = planCatalog[vo.PlanFree]
		p = vo.PlanFree
	}
	details.Price = vo.PlanPriceFor(p)
	details.Currency = "USD"
	details.Limits = vo.PlanLimitsFor(p)
	return details
}

// ListPlanDetails returns catalog entries for every plan users can see,
// trial first, then ascending price.
func ListPlanDetails() []PlanDetails {
	order := []vo.PlanType{vo.PlanFreeTrial, vo.PlanFree, vo.PlanStandard, vo.PlanPremium}
	details := make([]PlanDetails, 0, len(order))
	for _, p := range order {
		details = append(details, GetPlanDetails(p))
	}
	return details
}
