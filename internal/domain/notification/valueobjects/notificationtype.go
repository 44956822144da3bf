package valueobjects

import "fmt"

// NotificationType is the closed set of domain events recorded for a
// user. Unknown types are rejected at the boundary, never at
// persistence time.
type NotificationType string

const (
	TypeSocialAccountConnected        NotificationType = "social_account_connected"
	TypeSocialAccountDisconnected     NotificationType = "social_account_disconnected"
	TypeSocialAccountConnectionFailed NotificationType = "social_account_connection_failed"

	TypePostPublished       NotificationType = "post_published"
	TypePostScheduled       NotificationType = "post_scheduled"
	TypePostPublishFailed   NotificationType = "post_publish_failed"
	TypePostScheduleFailed  NotificationType = "post_schedule_failed"
	TypeScheduledPostEdited NotificationType = "scheduled_post_edited"

	TypeSubscriptionActivated NotificationType = "subscription_activated"
	TypeSubscriptionCancelled NotificationType = "subscription_cancelled"
	TypeSubscriptionExpired   NotificationType = "subscription_expired"
	TypeSubscriptionRenewed   NotificationType = "subscription_renewed"

	TypeProfileUpdated        NotificationType = "profile_updated"
	TypePasswordChanged       NotificationType = "password_changed"
	TypeProfilePictureUpdated NotificationType = "profile_picture_updated"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeSocialAccountConnected:        true,
	TypeSocialAccountDisconnected:     true,
	TypeSocialAccountConnectionFailed: true,
	TypePostPublished:                 true,
	TypePostScheduled:                 true,
	TypePostPublishFailed:             true,
	TypePostScheduleFailed:            true,
	TypeScheduledPostEdited:           true,
	TypeSubscriptionActivated:         true,
	TypeSubscriptionCancelled:         true,
	TypeSubscriptionExpired:           true,
	TypeSubscriptionRenewed:           true,
	TypeProfileUpdated:                true,
	TypePasswordChanged:               true,
	TypeProfilePictureUpdated:         true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
