package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appDto "plume/internal/application/notification/dto"
	"plume/internal/interfaces/http/handlers/testutil"
	"plume/internal/shared/errors"
)

// =====================================================================
// Mock notification service
// =====================================================================

type mockNotificationService struct {
	listNotificationsFn  func(ctx context.Context, req appDto.ListNotificationsRequest) (*appDto.ListResponse, error)
	getUnreadCountFn     func(ctx context.Context, userID uint) *appDto.UnreadCountResponse
	markNotifAsReadFn    func(ctx context.Context, id uint, userID uint) (*appDto.NotificationResponse, error)
	markAllNotifReadFn   func(ctx context.Context, userID uint) (*appDto.MarkAllAsReadResponse, error)
	deleteNotificationFn func(ctx context.Context, id uint, userID uint) error
	deleteAllFn          func(ctx context.Context, userID uint) (*appDto.DeleteAllResponse, error)
}

func (m *mockNotificationService) ListNotifications(ctx context.Context, req appDto.ListNotificationsRequest) (*appDto.ListResponse, error) {
	if m.listNotificationsFn != nil {
		return m.listNotificationsFn(ctx, req)
	}
	return nil, nil
}

func (m *mockNotificationService) GetUnreadCount(ctx context.Context, userID uint) *appDto.UnreadCountResponse {
	if m.getUnreadCountFn != nil {
		return m.getUnreadCountFn(ctx, userID)
	}
	return &appDto.UnreadCountResponse{}
}

func (m *mockNotificationService) MarkNotificationAsRead(ctx context.Context, id uint, userID uint) (*appDto.NotificationResponse, error) {
	if m.markNotifAsReadFn != nil {
		return m.markNotifAsReadFn(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockNotificationService) MarkAllAsRead(ctx context.Context, userID uint) (*appDto.MarkAllAsReadResponse, error) {
	if m.markAllNotifReadFn != nil {
		return m.markAllNotifReadFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockNotificationService) DeleteNotification(ctx context.Context, id uint, userID uint) error {
	if m.deleteNotificationFn != nil {
		return m.deleteNotificationFn(ctx, id, userID)
	}
	return nil
}

func (m *mockNotificationService) DeleteAllNotifications(ctx context.Context, userID uint) (*appDto.DeleteAllResponse, error) {
	if m.deleteAllFn != nil {
		return m.deleteAllFn(ctx, userID)
	}
	return nil, nil
}

// =====================================================================
// Tests
// =====================================================================

func TestNotificationHandler_ListNotifications(t *testing.T) {
	t.Run("forwards pagination and filters from the query string", func(t *testing.T) {
		var captured appDto.ListNotificationsRequest
		svc := &mockNotificationService{
			listNotificationsFn: func(ctx context.Context, req appDto.ListNotificationsRequest) (*appDto.ListResponse, error) {
				captured = req
				return &appDto.ListResponse{
					Notifications: []*appDto.NotificationResponse{
						{ID: 1, UserID: 10, Type: "post_scheduled", Title: "Post Scheduled", CreatedAt: time.Now()},
					},
					Pagination: appDto.PaginationInfo{Total: 1, Page: 2, Limit: 5, TotalPages: 1},
				}, nil
			},
		}
		handler := NewNotificationHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)
		testutil.SetAuthContext(c, 10)
		testutil.SetQueryParams(c, map[string]string{
			"page":   "2",
			"limit":  "5",
			"unread": "true",
			"type":   "post_scheduled",
		})

		handler.ListNotifications(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(10), captured.UserID)
		assert.Equal(t, 2, captured.Page)
		assert.Equal(t, 5, captured.Limit)
		assert.True(t, captured.UnreadOnly)
		assert.Equal(t, "post_scheduled", captured.Type)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
	})

	t.Run("rejects unauthenticated requests", func(t *testing.T) {
		handler := NewNotificationHandler(&mockNotificationService{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)

		handler.ListNotifications(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("propagates service errors", func(t *testing.T) {
		svc := &mockNotificationService{
			listNotificationsFn: func(ctx context.Context, req appDto.ListNotificationsRequest) (*appDto.ListResponse, error) {
				return nil, errors.NewInternalError("query failed")
			},
		}
		handler := NewNotificationHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/notifications", nil)
		testutil.SetAuthContext(c, 10)

		handler.ListNotifications(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestNotificationHandler_GetUnreadCount(t *testing.T) {
	t.Run("returns the count for the authenticated user", func(t *testing.T) {
		svc := &mockNotificationService{
			getUnreadCountFn: func(ctx context.Context, userID uint) *appDto.UnreadCountResponse {
				assert.Equal(t, uint(10), userID)
				return &appDto.UnreadCountResponse{Count: 7}
			},
		}
		handler := NewNotificationHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/notifications/unread-count", nil)
		testutil.SetAuthContext(c, 10)

		handler.GetUnreadCount(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var count appDto.UnreadCountResponse
		require.NoError(t, json.Unmarshal(resp.Data, &count))
		assert.Equal(t, int64(7), count.Count)
	})
}

func TestNotificationHandler_MarkAsRead(t *testing.T) {
	t.Run("marks the notification by path parameter", func(t *testing.T) {
		var gotID, gotUserID uint
		svc := &mockNotificationService{
			markNotifAsReadFn: func(ctx context.Context, id uint, userID uint) (*appDto.NotificationResponse, error) {
				gotID, gotUserID = id, userID
				return &appDto.NotificationResponse{ID: id, UserID: userID, IsRead: true}, nil
			},
		}
		handler := NewNotificationHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPut, "/notifications/5/read", nil)
		testutil.SetAuthContext(c, 10)
		testutil.SetURLParam(c, "id", "5")

		handler.MarkAsRead(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(5), gotID)
		assert.Equal(t, uint(10), gotUserID)
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		handler := NewNotificationHandler(&mockNotificationService{}, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPut, "/notifications/abc/read", nil)
		testutil.SetAuthContext(c, 10)
		testutil.SetURLParam(c, "id", "abc")

		handler.MarkAsRead(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns not found for another user's notification", func(t *testing.T) {
		svc := &mockNotificationService{
			markNotifAsReadFn: func(ctx context.Context, id uint, userID uint) (*appDto.NotificationResponse, error) {
				return nil, errors.NewNotFoundError("notification not found")
			},
		}
		handler := NewNotificationHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPut, "/notifications/5/read", nil)
		testutil.SetAuthContext(c, 10)
		testutil.SetURLParam(c, "id", "5")

		handler.MarkAsRead(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNotificationHandler_MarkAllAsRead(t *testing.T) {
	svc := &mockNotificationService{
		markAllNotifReadFn: func(ctx context.Context, userID uint) (*appDto.MarkAllAsReadResponse, error) {
			return &appDto.MarkAllAsReadResponse{MatchedCount: 3}, nil
		},
	}
	handler := NewNotificationHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/notifications/read-all", nil)
	testutil.SetAuthContext(c, 10)

	handler.MarkAllAsRead(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var result appDto.MarkAllAsReadResponse
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, int64(3), result.MatchedCount)
}

func TestNotificationHandler_DeleteNotification(t *testing.T) {
	t.Run("deletes and returns no content", func(t *testing.T) {
		svc := &mockNotificationService{
			deleteNotificationFn: func(ctx context.Context, id uint, userID uint) error {
				assert.Equal(t, uint(5), id)
				assert.Equal(t, uint(10), userID)
				return nil
			},
		}
		handler := NewNotificationHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/notifications/5", nil)
		testutil.SetAuthContext(c, 10)
		testutil.SetURLParam(c, "id", "5")

		handler.DeleteNotification(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("surfaces not found", func(t *testing.T) {
		svc := &mockNotificationService{
			deleteNotificationFn: func(ctx context.Context, id uint, userID uint) error {
				return errors.NewNotFoundError("notification not found")
			},
		}
		handler := NewNotificationHandler(svc, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/notifications/99", nil)
		testutil.SetAuthContext(c, 10)
		testutil.SetURLParam(c, "id", "99")

		handler.DeleteNotification(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNotificationHandler_DeleteAllNotifications(t *testing.T) {
	svc := &mockNotificationService{
		deleteAllFn: func(ctx context.Context, userID uint) (*appDto.DeleteAllResponse, error) {
			return &appDto.DeleteAllResponse{DeletedCount: 12}, nil
		},
	}
	handler := NewNotificationHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/notifications", nil)
	testutil.SetAuthContext(c, 10)

	handler.DeleteAllNotifications(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var result appDto.DeleteAllResponse
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, int64(12), result.DeletedCount)
}
