package dto

import (
	"time"

	"plume/internal/domain/notification"
)

// CreateNotificationRequest carries a new event record. Type is the
// string form of the closed notification-type set.
type CreateNotificationRequest struct {
	UserID   uint
	Type     string
	Title    string
	Message  string
	Metadata map[string]interface{}
}

// ListNotificationsRequest narrows and pages a listing.
type ListNotificationsRequest struct {
	UserID     uint
	Page       int
	Limit      int
	UnreadOnly bool
	// Type filters to a single notification type when non-empty.
	Type string
}

type NotificationResponse struct {
	ID        uint                   `json:"id"`
	UserID    uint                   `json:"user_id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Metadata  map[string]interface{} `json:"metadata"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

type PaginationInfo struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

type ListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Pagination    PaginationInfo          `json:"pagination"`
	UnreadCount   int64                   `json:"unread_count"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllAsReadResponse struct {
	MatchedCount int64 `json:"matched_count"`
}

type DeleteAllResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ToNotificationResponse converts a domain notification to its response
// form.
func ToNotificationResponse(n *notification.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Metadata:  n.Metadata(),
		IsRead:    n.ReadStatus().IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

// ToNotificationResponseList converts a slice of domain notifications.
func ToNotificationResponseList(notifications []*notification.Notification) []*NotificationResponse {
	responses := make([]*NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, ToNotificationResponse(n))
	}
	return responses
}
