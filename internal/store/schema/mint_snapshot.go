package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MintSnapshot represents the mint_snapshots table - a best-effort record of
// the metadata that was live when an edition was minted, written after the
// purchase confirms
type MintSnapshot struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PurchaseID is the confirmed purchase this snapshot belongs to
	PurchaseID uuid.UUID `gorm:"column:purchase_id;not null;type:uuid;uniqueIndex"`
	// NFTMint is the minted asset address
	NFTMint string `gorm:"column:nft_mint;not null;type:text"`
	// Metadata is the metadata document the edition was minted with
	Metadata datatypes.JSON `gorm:"column:metadata;not null;type:jsonb"`
	// CreatedAt is when the snapshot was taken
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MintSnapshot model
func (MintSnapshot) TableName() string {
	return "mint_snapshots"
}
