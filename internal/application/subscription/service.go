// Package subscription wires the entitlement use cases behind a single
// application service.
package subscription

import (
	"context"

	"plume/internal/application/subscription/dto"
	"plume/internal/application/subscription/usecases"
	domain "plume/internal/domain/subscription"
	"plume/internal/shared/config"
	"plume/internal/shared/logger"
)

type Service struct {
	createSubscription         *usecases.CreateSubscriptionUseCase
	getSubscription            *usecases.GetSubscriptionUseCase
	listPlans                  *usecases.ListPlansUseCase
	changePlan                 *usecases.ChangePlanUseCase
	recordAccountConnected     *usecases.RecordAccountConnectedUseCase
	recordAccountDisconnected  *usecases.RecordAccountDisconnectedUseCase
	recordPostScheduled        *usecases.RecordPostScheduledUseCase
	getEntitlements            *usecases.GetEntitlementsUseCase
	reconcileBillingEvent      *usecases.ReconcileBillingEventUseCase
	handleProviderCancellation *usecases.HandleProviderCancellationUseCase
	expireOverdue              *usecases.ExpireOverdueSubscriptionsUseCase
	resetWeeklyUsage           *usecases.ResetWeeklyUsageUseCase
}

func NewService(
	repo domain.Repository,
	cache usecases.EntitlementCacheManager,
	notifier usecases.NotificationRecorder,
	billing config.BillingConfig,
	logger logger.Interface,
) *Service {
	return &Service{
		createSubscription:         usecases.NewCreateSubscriptionUseCase(repo, logger),
		getSubscription:            usecases.NewGetSubscriptionUseCase(repo, logger),
		listPlans:                  usecases.NewListPlansUseCase(),
		changePlan:                 usecases.NewChangePlanUseCase(repo, cache, notifier, logger),
		recordAccountConnected:     usecases.NewRecordAccountConnectedUseCase(repo, cache, notifier, logger),
		recordAccountDisconnected:  usecases.NewRecordAccountDisconnectedUseCase(repo, cache, notifier, logger),
		recordPostScheduled:        usecases.NewRecordPostScheduledUseCase(repo, cache, notifier, logger),
		getEntitlements:            usecases.NewGetEntitlementsUseCase(repo, cache, logger),
		reconcileBillingEvent:      usecases.NewReconcileBillingEventUseCase(repo, cache, notifier, billing, logger),
		handleProviderCancellation: usecases.NewHandleProviderCancellationUseCase(repo, cache, notifier, logger),
		expireOverdue:              usecases.NewExpireOverdueSubscriptionsUseCase(repo, cache, notifier, logger),
		resetWeeklyUsage:           usecases.NewResetWeeklyUsageUseCase(repo, cache, logger),
	}
}

func (s *Service) CreateSubscription(ctx context.Context, userID uint) (*dto.SubscriptionResponse, error) {
	return s.createSubscription.Execute(ctx, userID)
}

func (s *Service) GetSubscription(ctx context.Context, userID uint) (*dto.SubscriptionResponse, error) {
	return s.getSubscription.Execute(ctx, userID)
}

func (s *Service) ListPlans() []domain.PlanDetails {
	return s.listPlans.Execute()
}

func (s *Service) ChangePlan(ctx context.Context, req dto.ChangePlanRequest) (*dto.SubscriptionResponse, error) {
	return s.changePlan.Execute(ctx, req)
}

func (s *Service) RecordAccountConnected(ctx context.Context, req dto.RecordAccountConnectedRequest) error {
	return s.recordAccountConnected.Execute(ctx, req)
}

func (s *Service) RecordAccountDisconnected(ctx context.Context, req dto.RecordAccountDisconnectedRequest) error {
	return s.recordAccountDisconnected.Execute(ctx, req)
}

func (s *Service) RecordPostScheduled(ctx context.Context, req dto.RecordPostScheduledRequest) error {
	return s.recordPostScheduled.Execute(ctx, req)
}

func (s *Service) GetEntitlements(ctx context.Context, userID uint) (*dto.EntitlementsResponse, error) {
	return s.getEntitlements.Execute(ctx, userID)
}

func (s *Service) ReconcileBillingEvent(ctx context.Context, cmd dto.BillingEventCommand) error {
	return s.reconcileBillingEvent.Execute(ctx, cmd)
}

func (s *Service) HandleProviderCancellation(ctx context.Context, providerCustomerID string) error {
	return s.handleProviderCancellation.Execute(ctx, providerCustomerID)
}

func (s *Service) ExpireOverdueSubscriptions(ctx context.Context) (*dto.ExpireSweepResponse, error) {
	return s.expireOverdue.Execute(ctx)
}

func (s *Service) ResetWeeklyUsage(ctx context.Context) (int, error) {
	return s.resetWeeklyUsage.Execute(ctx)
}
