package chain

import (
	"context"
)

// CreateCollectionParams describes the collection (master edition) to create
// for a post
type CreateCollectionParams struct {
	// CreatorWallet receives the collection and its royalties
	CreatorWallet string `json:"creator_wallet"`
	// MetadataURI is the uploaded metadata document for the post
	MetadataURI string `json:"metadata_uri"`
	// Name is the collection display name
	Name string `json:"name"`
	// MaxSupply caps the number of editions (nil = open edition)
	MaxSupply *int `json:"max_supply,omitempty"`
	// RoyaltyBps is the creator royalty in basis points
	RoyaltyBps int `json:"royalty_bps"`
}

// CollectionResult is the outcome of a collection creation
type CollectionResult struct {
	// CollectionAddress is the on-chain address of the new collection
	CollectionAddress string `json:"collection_address"`
	// Signature is the transaction signature of the creation
	Signature string `json:"signature"`
}

// CreateEditionParams describes the individual edition to mint into a collection
type CreateEditionParams struct {
	// BuyerWallet receives the minted edition
	BuyerWallet string `json:"buyer_wallet"`
	// CreatorWallet is the collection owner
	CreatorWallet string `json:"creator_wallet"`
	// CollectionAddress is the collection the edition belongs to
	CollectionAddress string `json:"collection_address"`
	// MetadataURI is the metadata document shared by all editions of the post
	MetadataURI string `json:"metadata_uri"`
	// Name is the edition display name
	Name string `json:"name"`
	// EditionNumber is the ordinal of this edition within the post's supply
	EditionNumber int `json:"edition_number"`
}

// EditionResult is the outcome of an edition mint
type EditionResult struct {
	// AssetAddress is the minted NFT's address
	AssetAddress string `json:"asset_address"`
	// Signature is the transaction signature of the mint
	Signature string `json:"signature"`
}

// Service is the boundary to the minting gateway. Both calls are network
// operations with no built-in idempotency; at-most-once semantics are entirely
// the caller's responsibility. Implementations return errors already wrapped
// as TransientError or TerminalError.
//
//go:generate mockgen -source=chain.go -destination=../mocks/chain.go -package=mocks -mock_names=Service=MockChainService
type Service interface {
	// CreateCollection creates the on-chain collection backing a post
	CreateCollection(ctx context.Context, params CreateCollectionParams) (*CollectionResult, error)

	// CreateEdition mints one edition referencing an existing collection
	CreateEdition(ctx context.Context, params CreateEditionParams) (*EditionResult, error)
}
