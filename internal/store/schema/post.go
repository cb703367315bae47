package schema

import (
	"time"

	"github.com/google/uuid"
)

// Post represents the posts table - the shared resource owning edition supply.
// Content fields (title, caption, media) are owned by content-management code;
// fulfillment only touches the supply counter, the collection address, and the
// metadata URI.
type Post struct {
	// ID is the post identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// CreatorID is the user who published the post and receives mint proceeds
	CreatorID uuid.UUID `gorm:"column:creator_id;not null;type:uuid;index"`
	// Title is the post title, used as the NFT name prefix
	Title string `gorm:"column:title;not null;type:text"`
	// Caption is the post body (owned by content-management code)
	Caption string `gorm:"column:caption;type:text"`
	// MediaURI points at the post's primary media asset
	MediaURI string `gorm:"column:media_uri;not null;type:text"`
	// MetadataURI is the uploaded NFT metadata document, set once by fulfillment
	MetadataURI *string `gorm:"column:metadata_uri;type:text"`
	// MaxSupply caps the number of editions (nil = unlimited)
	MaxSupply *int `gorm:"column:max_supply"`
	// CurrentSupply counts reserved editions; incremented at reservation time,
	// decremented only by the compensating rollback on terminal failure
	CurrentSupply int `gorm:"column:current_supply;not null;default:0"`
	// MasterCollectionAddress is the on-chain collection, set exactly once by
	// whichever fulfillment attempt wins the race
	MasterCollectionAddress *string `gorm:"column:master_collection_address;type:text"`
	// RoyaltyBps is the creator royalty in basis points, passed to the chain gateway
	RoyaltyBps int `gorm:"column:royalty_bps;not null;default:0"`
	// CreatedAt is when the post was published
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the post was last modified
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Post model
func (Post) TableName() string {
	return "posts"
}
