package usecases

import (
	"plume/internal/domain/subscription"
)

// ListPlansUseCase serves the static plan catalog for pricing pages.
type ListPlansUseCase struct{}

func NewListPlansUseCase() *ListPlansUseCase {
	return &ListPlansUseCase{}
}

func (uc *ListPlansUseCase) Execute() []subscription.PlanDetails {
	return subscription.ListPlanDetails()
}
