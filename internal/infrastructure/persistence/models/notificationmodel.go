package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"plume/internal/shared/constants"
)

type NotificationModel struct {
	ID         uint           `gorm:"primaryKey"`
	UserID     uint           `gorm:"not null;index:idx_user_read"`
	Type       string         `gorm:"size:50;not null;index"`
	Title      string         `gorm:"size:255;not null"`
	Message    string         `gorm:"size:1000;not null"`
	Metadata   datatypes.JSON `gorm:"type:json"`
	ReadStatus string         `gorm:"size:20;not null;default:'unread';index:idx_user_read"`
	Version    int            `gorm:"not null;default:1"`
	CreatedAt  time.Time      `gorm:"index"`
	UpdatedAt  time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ReadStatus == "" {
		n.ReadStatus = "unread"
	}
	return nil
}
