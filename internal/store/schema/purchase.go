package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/mural-hq/mint-fulfillment/internal/domain"
)

// Purchase represents the purchases table - the unit of fulfillment work.
// All fulfillment-related fields are exclusively owned by the orchestrator;
// reservation and payment code only create the row and move it to submitted.
type Purchase struct {
	// ID is the purchase identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// PostID is the post whose edition is being purchased
	PostID uuid.UUID `gorm:"column:post_id;not null;type:uuid;index"`
	// UserID is the buyer
	UserID uuid.UUID `gorm:"column:user_id;not null;type:uuid;index"`
	// Status is the fulfillment state machine position
	Status domain.PurchaseStatus `gorm:"column:status;not null;type:text;index"`
	// Amount is the paid price in the smallest currency unit
	Amount int64 `gorm:"column:amount;not null;default:0"`
	// PaymentTxSignature is the payment transaction hash observed at submission
	PaymentTxSignature *string `gorm:"column:payment_tx_signature;type:text"`
	// BuyerWalletAddress snapshots the wallet that paid; it may differ from the
	// buyer's current primary wallet
	BuyerWalletAddress *string `gorm:"column:buyer_wallet_address;type:text"`
	// NFTMint is the minted asset address, set exactly once on success
	NFTMint *string `gorm:"column:nft_mint;type:text"`
	// FulfillmentKey is the opaque claim token of the worker holding the lease
	FulfillmentKey *string `gorm:"column:fulfillment_key;type:text"`
	// FulfillmentClaimedAt is when the current claim was issued; claims older
	// than the staleness window may be reclaimed
	FulfillmentClaimedAt *time.Time `gorm:"column:fulfillment_claimed_at;type:timestamptz"`
	// MasterTxSignature is the collection creation transaction, recorded by the
	// attempt that created the collection
	MasterTxSignature *string `gorm:"column:master_tx_signature;type:text"`
	// PrintTxSignature is the edition mint transaction
	PrintTxSignature *string `gorm:"column:print_tx_signature;type:text"`
	// FailedAt is stamped when the purchase fails terminally
	FailedAt *time.Time `gorm:"column:failed_at;type:timestamptz"`
	// CreatedAt is when the purchase was reserved
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the purchase was last modified
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}
