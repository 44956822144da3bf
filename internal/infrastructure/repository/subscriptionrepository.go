package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"plume/internal/domain/subscription"
	"plume/internal/infrastructure/persistence/mappers"
	"plume/internal/infrastructure/persistence/models"
	"plume/internal/shared/errors"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	return nil
}

// Update persists the aggregate and appends any billing records added
// since the last load. History rows are never updated or removed.
func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription entity to model: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SubscriptionModel{}).
			Where("id = ?", model.ID).
			Omit("created_at").
			Select("*").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update subscription: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("subscription not found")
		}

		var stored int64
		if err := tx.Model(&models.BillingRecordModel{}).
			Where("subscription_id = ?", model.ID).
			Count(&stored).Error; err != nil {
			return fmt.Errorf("failed to count billing records: %w", err)
		}

		records := r.mapper.ToBillingRecordModels(sub)
		if int64(len(records)) > stored {
			newRecords := records[stored:]
			if err := tx.Create(&newRecords).Error; err != nil {
				return fmt.Errorf("failed to append billing records: %w", err)
			}
		}

		return nil
	})
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *SubscriptionRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	return r.getOne(ctx, "user_id = ?", userID)
}

func (r *SubscriptionRepositoryImpl) GetByProviderCustomerID(ctx context.Context, customerID string) (*subscription.Subscription, error) {
	return r.getOne(ctx, "provider_customer_id = ?", customerID)
}

func (r *SubscriptionRepositoryImpl) getOne(ctx context.Context, query string, arg interface{}) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Preload("BillingRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("billing_records.id ASC")
		}).
		Where(query, arg).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map subscription model to entity: %w", err)
	}

	return entity, nil
}

func (r *SubscriptionRepositoryImpl) ListExpiredCandidates(ctx context.Context, limit int) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("status IN ?", []string{"trial", "active"}).
		Where("end_date IS NOT NULL AND end_date < ?", time.Now().UTC()).
		Order("end_date ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expired candidates: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map subscription models: %w", err)
	}

	return entities, nil
}

func (r *SubscriptionRepositoryImpl) ListStaleWeeklyUsage(ctx context.Context, weekStart time.Time, limit int) ([]*subscription.Subscription, error) {
	var modelList []*models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("last_reset_date < ?", weekStart).
		Order("last_reset_date ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stale weekly usage: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map subscription models: %w", err)
	}

	return entities, nil
}
