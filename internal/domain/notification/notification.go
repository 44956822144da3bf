package notification

import (
	"fmt"
	"time"

	vo "plume/internal/domain/notification/valueobjects"
)

const (
	// MaxTitleLength bounds notification titles.
	MaxTitleLength = 100
	// MaxMessageLength bounds notification messages.
	MaxMessageLength = 500
)

// Notification is one immutable event record for a user. Only the read
// status ever changes after creation; records are created by domain
// events, never by direct user input.
type Notification struct {
	id         uint
	userID     uint
	notifType  vo.NotificationType
	title      string
	message    string
	metadata   map[string]interface{}
	readStatus vo.ReadStatus
	version    int
	createdAt  time.Time
	updatedAt  time.Time
}

func NewNotification(
	userID uint,
	notifType vo.NotificationType,
	title string,
	message string,
	metadata map[string]interface{},
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notifType)
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > MaxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", MaxMessageLength)
	}

	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	now := time.Now().UTC()
	return &Notification{
		userID:     userID,
		notifType:  notifType,
		title:      title,
		message:    message,
		metadata:   metadata,
		readStatus: vo.ReadStatusUnread,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructNotification rebuilds a notification from persistence.
func ReconstructNotification(
	id uint,
	userID uint,
	notifType vo.NotificationType,
	title string,
	message string,
	metadata map[string]interface{},
	readStatus vo.ReadStatus,
	version int,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notifType)
	}
	if !readStatus.IsValid() {
		return nil, fmt.Errorf("invalid read status: %s", readStatus)
	}

	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	return &Notification{
		id:         id,
		userID:     userID,
		notifType:  notifType,
		title:      title,
		message:    message,
		metadata:   metadata,
		readStatus: readStatus,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (n *Notification) ID() uint                      { return n.id }
func (n *Notification) UserID() uint                  { return n.userID }
func (n *Notification) Type() vo.NotificationType     { return n.notifType }
func (n *Notification) Title() string                 { return n.title }
func (n *Notification) Message() string               { return n.message }
func (n *Notification) ReadStatus() vo.ReadStatus     { return n.readStatus }
func (n *Notification) Version() int                  { return n.version }
func (n *Notification) CreatedAt() time.Time          { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time          { return n.updatedAt }

func (n *Notification) Metadata() map[string]interface{} {
	metadata := make(map[string]interface{}, len(n.metadata))
	for k, v := range n.metadata {
		metadata[k] = v
	}
	return metadata
}

// SetID sets the notification ID (persistence layer use only).
func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead flips the read status. Marking an already-read record is
// a no-op.
func (n *Notification) MarkAsRead() {
	if n.readStatus.IsRead() {
		return
	}
	n.readStatus = vo.ReadStatusRead
	n.updatedAt = time.Now().UTC()
	n.version++
}
