package models

import (
	"time"

	"plume/internal/shared/constants"
)

// SubscriptionModel is the row form of the subscription aggregate.
// Limits and usage are flattened into columns; billing history lives in
// its own table.
type SubscriptionModel struct {
	ID       uint   `gorm:"primaryKey"`
	UUID     string `gorm:"size:36;not null;uniqueIndex"`
	UserID   uint   `gorm:"not null;uniqueIndex"`
	PlanType string `gorm:"size:20;not null"`
	Status   string `gorm:"size:20;not null;index"`

	Price    float64 `gorm:"not null;default:0"`
	Currency string  `gorm:"size:3;not null;default:'USD'"`

	StartDate          time.Time `gorm:"not null"`
	EndDate            *time.Time
	TrialEndDate       *time.Time
	NextBillingDate    *time.Time
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time

	LimitSocialAccounts        int    `gorm:"not null;default:0"`
	LimitScheduledPostsPerWeek int    `gorm:"not null;default:0"`
	LimitTeamMembers           int    `gorm:"not null;default:0"`
	LimitAnalytics             string `gorm:"size:20;not null;default:'basic'"`
	LimitSupport               string `gorm:"size:20;not null;default:'community'"`

	ConnectedAccounts      int       `gorm:"not null;default:0"`
	ScheduledPostsThisWeek int       `gorm:"not null;default:0"`
	LastResetDate          time.Time `gorm:"not null;index"`

	ProviderCustomerID     *string `gorm:"size:255;index"`
	ProviderSubscriptionID *string `gorm:"size:255"`

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	BillingRecords []BillingRecordModel `gorm:"foreignKey:SubscriptionID"`
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BillingRecordModel is one append-only billing history entry.
type BillingRecordModel struct {
	ID             uint      `gorm:"primaryKey"`
	SubscriptionID uint      `gorm:"not null;index"`
	Date           time.Time `gorm:"not null"`
	Amount         float64   `gorm:"not null;default:0"`
	Status         string    `gorm:"size:20;not null"`
	InvoiceID      string    `gorm:"size:255"`
	Description    string    `gorm:"size:255"`
	CreatedAt      time.Time
}

func (BillingRecordModel) TableName() string {
	return constants.TableBillingRecords
}
