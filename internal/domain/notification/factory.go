package notification

import (
	"fmt"

	vo "plume/internal/domain/notification/valueobjects"
)

// Domain-event constructors. Each composes a fixed title and message
// template from the supplied parameters; the templates carry
// presentation text only, never business logic.

func NewAccountConnected(userID uint, platform, accountName string) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypeSocialAccountConnected,
		"Social account connected",
		fmt.Sprintf("Your %s account %q has been connected successfully.", platform, accountName),
		map[string]interface{}{"platform": platform, "accountName": accountName},
	)
}

func NewAccountDisconnected(userID uint, platform, accountName string) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypeSocialAccountDisconnected,
		"Social account disconnected",
		fmt.Sprintf("Your %s account %q has been disconnected.", platform, accountName),
		map[string]interface{}{"platform": platform, "accountName": accountName},
	)
}

func NewAccountConnectionFailed(userID uint, platform, reason string) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypeSocialAccountConnectionFailed,
		"Account connection failed",
		fmt.Sprintf("We could not connect your %s account: %s", platform, reason),
		map[string]interface{}{"platform": platform, "reason": reason},
	)
}

func NewPostPublished(userID uint, platform string, postID uint) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypePostPublished,
		"Post published",
		fmt.Sprintf("Your post has been published to %s.", platform),
		map[string]interface{}{"platform": platform, "postId": postID},
	)
}

func NewPostScheduled(userID uint, platform string, postID uint, scheduledFor string) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypePostScheduled,
		"Post scheduled",
		fmt.Sprintf("Your post has been scheduled for %s on %s.", scheduledFor, platform),
		map[string]interface{}{"platform": platform, "postId": postID, "scheduledFor": scheduledFor},
	)
}

func NewPostPublishFailed(userID uint, platform string, postID uint, reason string) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypePostPublishFailed,
		"Post publishing failed",
		fmt.Sprintf("Your post could not be published to %s: %s", platform, reason),
		map[string]interface{}{"platform": platform, "postId": postID, "reason": reason},
	)
}

func NewPostScheduleFailed(userID uint, platform, reason string) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypePostScheduleFailed,
		"Post scheduling failed",
		fmt.Sprintf("Your post could not be scheduled on %s: %s", platform, reason),
		map[string]interface{}{"platform": platform, "reason": reason},
	)
}

func NewScheduledPostEdited(userID uint, postID uint) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypeScheduledPostEdited,
		"Scheduled post updated",
		"Your scheduled post has been updated.",
		map[string]interface{}{"postId": postID},
	)
}

func NewSubscriptionActivated(userID uint, planType string) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypeSubscriptionActivated,
		"Subscription activated",
		fmt.Sprintf("Your %s subscription is now active. Enjoy your new features!", planType),
		map[string]interface{}{"planType": planType},
	)
}

func NewSubscriptionCancelled(userID uint, planType string) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypeSubscriptionCancelled,
		"Subscription cancelled",
		fmt.Sprintf("Your %s subscription has been cancelled.", planType),
		map[string]interface{}{"planType": planType},
	)
}

func NewSubscriptionExpired(userID uint, planType string) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypeSubscriptionExpired,
		"Subscription expired",
		fmt.Sprintf("Your %s subscription has expired. Choose a plan to keep scheduling posts.", planType),
		map[string]interface{}{"planType": planType},
	)
}

func NewSubscriptionRenewed(userID uint, planType, invoiceID string) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypeSubscriptionRenewed,
		"Subscription renewed",
		fmt.Sprintf("Your %s subscription has been renewed.", planType),
		map[string]interface{}{"planType": planType, "invoiceId": invoiceID},
	)
}

func NewProfileUpdated(userID uint) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypeProfileUpdated,
		"Profile updated",
		"Your profile details have been updated.",
		nil,
	)
}

func NewPasswordChanged(userID uint) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypePasswordChanged,
		"Password changed",
		"Your password has been changed. If this wasn't you, contact support immediately.",
		nil,
	)
}

func NewProfilePictureUpdated(userID uint) (*Notification, error) {
	return NewNotification(
		userID,
		vo.TypeProfilePictureUpdated,
		"Profile picture updated",
		"Your profile picture has been updated.",
		nil,
	)
}
