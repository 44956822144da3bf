package handlers

import (
	"context"

	"plume/internal/application/subscription/dto"
	"plume/internal/domain/subscription"
)

// Service interface for SubscriptionHandler - enables unit testing with mocks.

type subscriptionService interface {
	CreateSubscription(ctx context.Context, userID uint) (*dto.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, userID uint) (*dto.SubscriptionResponse, error)
	GetEntitlements(ctx context.Context, userID uint) (*dto.EntitlementsResponse, error)
	ChangePlan(ctx context.Context, req dto.ChangePlanRequest) (*dto.SubscriptionResponse, error)
	ListPlans() []subscription.PlanDetails
}
