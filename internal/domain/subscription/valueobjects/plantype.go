package valueobjects

import "fmt"

// PlanType identifies the subscription tier. The set is closed: every
// plan maps to exactly one row of the limit table (see PlanLimitsFor).
type PlanType string

const (
	PlanFreeTrial PlanType = "free_trial"
	PlanFree      PlanType = "free"
	PlanStandard  PlanType = "standard"
	PlanPremium   PlanType = "premium"
)

var validPlanTypes = map[PlanType]bool{
	PlanFreeTrial: true,
	PlanFree:      true,
	PlanStandard:  true,
	PlanPremium:   true,
}

func (p PlanType) String() string {
	return string(p)
}

func (p PlanType) IsValid() bool {
	return validPlanTypes[p]
}

// IsSelectable reports whether users may switch to this plan themselves.
// free_trial is system-assigned at signup and never selectable.
func (p PlanType) IsSelectable() bool {
	return p == PlanFree || p == PlanStandard || p == PlanPremium
}

func (p PlanType) IsPaid() bool {
	return p == PlanStandard || p == PlanPremium
}

func NewPlanType(s string) (PlanType, error) {
	p := PlanType(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid plan type: %s", s)
	}
	return p, nil
}
