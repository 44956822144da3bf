package usecases

import (
	"context"

	"plume/internal/domain/notification"
	"plume/internal/shared/logger"
)

type mockNotificationRepository struct {
	CreateFunc                func(ctx context.Context, n *notification.Notification) error
	FindByIDFunc              func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByUserIDFunc          func(ctx context.Context, userID uint, filter notification.ListFilter, limit, offset int) ([]*notification.Notification, int64, error)
	CountUnreadByUserIDFunc   func(ctx context.Context, userID uint) (int64, error)
	MarkAsReadFunc            func(ctx context.Context, id uint) error
	MarkAllAsReadByUserIDFunc func(ctx context.Context, userID uint) (int64, error)
	DeleteFunc                func(ctx context.Context, id uint) error
	DeleteAllByUserIDFunc     func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUserID(ctx context.Context, userID uint, filter notification.ListFilter, limit, offset int) ([]*notification.Notification, int64, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, filter, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnreadByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadByUserIDFunc != nil {
		return m.CountUnreadByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id uint) error {
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllAsReadByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.MarkAllAsReadByUserIDFunc != nil {
		return m.MarkAllAsReadByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) DeleteAllByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.DeleteAllByUserIDFunc != nil {
		return m.DeleteAllByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

type mockLogger struct {
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
