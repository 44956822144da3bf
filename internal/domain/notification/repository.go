package notification

import (
	"context"

	vo "plume/internal/domain/notification/valueobjects"
)

// ListFilter narrows a notification listing.
type ListFilter struct {
	UnreadOnly bool
	// Type filters to a single notification type when non-nil.
	Type *vo.NotificationType
}

// Repository persists notification records. FindByID returns (nil, nil)
// when the record does not exist.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id uint) (*Notification, error)
	// ListByUserID returns records newest first along with the total
	// matching count.
	ListByUserID(ctx context.Context, userID uint, filter ListFilter, limit, offset int) ([]*Notification, int64, error)
	CountUnreadByUserID(ctx context.Context, userID uint) (int64, error)
	MarkAsRead(ctx context.Context, id uint) error
	// MarkAllAsReadByUserID returns the number of records flipped.
	MarkAllAsReadByUserID(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	// DeleteAllByUserID returns the number of records removed.
	DeleteAllByUserID(ctx context.Context, userID uint) (int64, error)
}
