package mappers

import (
	"fmt"

	"plume/internal/domain/subscription"
	vo "plume/internal/domain/subscription/valueobjects"
	"plume/internal/infrastructure/persistence/models"
	"plume/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
	ToBillingRecordModels(entity *subscription.Subscription) []models.BillingRecordModel
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	planType, err := vo.NewPlanType(model.PlanType)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan type: %w", err)
	}

	status, err := vo.NewSubscriptionStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription status: %w", err)
	}

	history := make([]subscription.BillingRecord, 0, len(model.BillingRecords))
	for _, rec := range model.BillingRecords {
		billingStatus, err := subscription.NewBillingStatus(rec.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to map billing record %d: %w", rec.ID, err)
		}
		history = append(history, subscription.BillingRecord{
			Date:        rec.Date,
			Amount:      rec.Amount,
			Status:      billingStatus,
			InvoiceID:   rec.InvoiceID,
			Description: rec.Description,
		})
	}

	entity, err := subscription.Reconstruct(subscription.ReconstructParams{
		ID:                 model.ID,
		UUID:               model.UUID,
		UserID:             model.UserID,
		PlanType:           planType,
		Status:             status,
		Price:              model.Price,
		Currency:           model.Currency,
		StartDate:          model.StartDate,
		EndDate:            model.EndDate,
		TrialEndDate:       model.TrialEndDate,
		NextBillingDate:    model.NextBillingDate,
		CurrentPeriodStart: model.CurrentPeriodStart,
		CurrentPeriodEnd:   model.CurrentPeriodEnd,
		Limits: vo.PlanLimits{
			SocialAccounts:        model.LimitSocialAccounts,
			ScheduledPostsPerWeek: model.LimitScheduledPostsPerWeek,
			TeamMembers:           model.LimitTeamMembers,
			Analytics:             vo.AnalyticsTier(model.LimitAnalytics),
			Support:               vo.SupportTier(model.LimitSupport),
		},
		Usage:                  subscription.ReconstructUsage(model.ConnectedAccounts, model.ScheduledPostsThisWeek, model.LastResetDate),
		BillingHistory:         history,
		ProviderCustomerID:     model.ProviderCustomerID,
		ProviderSubscriptionID: model.ProviderSubscriptionID,
		Version:                model.Version,
		CreatedAt:              model.CreatedAt,
		UpdatedAt:              model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	limits := entity.Limits()
	usage := entity.Usage()

	return &models.SubscriptionModel{
		ID:                         entity.ID(),
		UUID:                       entity.UUID(),
		UserID:                     entity.UserID(),
		PlanType:                   entity.PlanType().String(),
		Status:                     entity.Status().String(),
		Price:                      entity.Price(),
		Currency:                   entity.Currency(),
		StartDate:                  entity.StartDate(),
		EndDate:                    entity.EndDate(),
		TrialEndDate:               entity.TrialEndDate(),
		NextBillingDate:            entity.NextBillingDate(),
		CurrentPeriodStart:         entity.CurrentPeriodStart(),
		CurrentPeriodEnd:           entity.CurrentPeriodEnd(),
		LimitSocialAccounts:        limits.SocialAccounts,
		LimitScheduledPostsPerWeek: limits.ScheduledPostsPerWeek,
		LimitTeamMembers:           limits.TeamMembers,
		LimitAnalytics:             string(limits.Analytics),
		LimitSupport:               string(limits.Support),
		ConnectedAccounts:          usage.ConnectedAccounts(),
		ScheduledPostsThisWeek:     usage.ScheduledPostsThisWeek(),
		LastResetDate:              usage.LastResetDate(),
		ProviderCustomerID:         entity.ProviderCustomerID(),
		ProviderSubscriptionID:     entity.ProviderSubscriptionID(),
		Version:                    entity.Version(),
		CreatedAt:                  entity.CreatedAt(),
		UpdatedAt:                  entity.UpdatedAt(),
	}, nil
}

// ToBillingRecordModels converts the full billing history. The
// repository diffs against the stored count to append only new entries.
func (m *SubscriptionMapperImpl) ToBillingRecordModels(entity *subscription.Subscription) []models.BillingRecordModel {
	return mapper.MapSlice(entity.BillingHistory(), func(rec subscription.BillingRecord) models.BillingRecordModel {
		return models.BillingRecordModel{
			SubscriptionID: entity.ID(),
			Date:           rec.Date,
			Amount:         rec.Amount,
			Status:         string(rec.Status),
			InvoiceID:      rec.InvoiceID,
			Description:    rec.Description,
		}
	})
}

func (m *SubscriptionMapperImpl) ToEntities(modelList []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.SubscriptionModel) uint { return model.ID })
}
