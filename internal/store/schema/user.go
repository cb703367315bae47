package schema

import (
	"time"

	"github.com/google/uuid"
)

// User represents the users table, read-only for fulfillment.
// Only the fields fulfillment needs are mapped here.
type User struct {
	// ID is the user identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// DisplayName is the public profile name
	DisplayName string `gorm:"column:display_name;not null;type:text"`
	// WalletAddress is the user's primary wallet (nil if none connected)
	WalletAddress *string `gorm:"column:wallet_address;type:text"`
	// PushToken is the device token for push notifications (nil if unregistered)
	PushToken *string `gorm:"column:push_token;type:text"`
	// CreatedAt is when the account was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
