package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationKind is the type of in-app notification
type NotificationKind string

const (
	// NotificationKindEditionSold notifies the creator that an edition was minted
	NotificationKindEditionSold NotificationKind = "edition_sold"
)

// Notification represents the notifications table - in-app notification rows
// inserted best-effort after a purchase confirms
type Notification struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID is the notification recipient
	UserID uuid.UUID `gorm:"column:user_id;not null;type:uuid;index"`
	// Kind is the notification type
	Kind NotificationKind `gorm:"column:kind;not null;type:text"`
	// Payload is the notification-specific data as JSON
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// CreatedAt is when the notification was inserted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
