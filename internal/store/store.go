package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
)

// Store defines the interface for database operations.
// Every mutation that protects an invariant is a single atomic conditional
// update; a zero-row result is a signal to branch, never an error.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetPurchase retrieves a purchase by ID (nil, nil when absent)
	GetPurchase(ctx context.Context, id uuid.UUID) (*schema.Purchase, error)
	// GetPost retrieves a post by ID (nil, nil when absent)
	GetPost(ctx context.Context, id uuid.UUID) (*schema.Post, error)
	// GetUser retrieves a user by ID (nil, nil when absent)
	GetUser(ctx context.Context, id uuid.UUID) (*schema.User, error)

	// ClaimPurchase attempts to acquire the fulfillment claim on a purchase.
	// The conditional update matches when the purchase is in a retryable
	// status, when a minting claim has gone stale (claimed before
	// staleBefore), or when the purchase is confirmed without a recorded
	// mint (orphaned write). On match it moves the purchase to minting and
	// stamps the claim key and time, returning the updated row. Returns
	// (nil, nil) when zero rows matched.
	ClaimPurchase(ctx context.Context, id uuid.UUID, key string, now time.Time, staleBefore time.Time) (*schema.Purchase, error)

	// ResetOrphanedPurchase moves a confirmed purchase without a mint back to
	// awaiting_fulfillment, clearing the claim fields
	ResetOrphanedPurchase(ctx context.Context, id uuid.UUID) (bool, error)

	// SetPostMetadataURI persists the metadata URI on a post only if none is
	// set yet; returns false when another attempt already persisted one
	SetPostMetadataURI(ctx context.Context, postID uuid.UUID, uri string) (bool, error)

	// SetMasterCollection persists the collection address on a post only if
	// master_collection_address is still null; returns true when this caller won
	SetMasterCollection(ctx context.Context, postID uuid.UUID, address string) (bool, error)

	// RecordMasterSignature stores the collection creation tx signature on the
	// purchase currently being minted
	RecordMasterSignature(ctx context.Context, purchaseID uuid.UUID, signature string) error

	// ConfirmPurchase finalizes a minting purchase: sets confirmed, the mint
	// address and print signature, and clears the claim fields in one update.
	// Returns false when the purchase was no longer in minting.
	ConfirmPurchase(ctx context.Context, id uuid.UUID, nftMint string, printTxSignature string) (bool, error)

	// ReleaseForRetry moves a minting purchase back to a retryable status and
	// clears the claim fields, releasing the lease for a later attempt
	ReleaseForRetry(ctx context.Context, id uuid.UUID, status domain.PurchaseStatus) (bool, error)

	// FailPurchase terminally fails a minting purchase and releases its
	// reserved supply slot (decrement floored at zero) in one transaction.
	// Returns false (and skips the decrement) when the claim was lost.
	FailPurchase(ctx context.Context, id uuid.UUID, failedAt time.Time) (bool, error)

	// MarkAwaitingFulfillment moves a submitted purchase to awaiting_fulfillment
	// once its payment transaction is confirmed
	MarkAwaitingFulfillment(ctx context.Context, id uuid.UUID) (bool, error)

	// ListPurchasesByStatus returns purchases in any of the given statuses not
	// touched since updatedBefore, oldest first
	ListPurchasesByStatus(ctx context.Context, statuses []domain.PurchaseStatus, updatedBefore time.Time, limit int) ([]*schema.Purchase, error)

	// CreateNotification inserts an in-app notification row
	CreateNotification(ctx context.Context, notification *schema.Notification) error
	// CreateMintSnapshot inserts a mint snapshot, ignoring duplicates
	CreateMintSnapshot(ctx context.Context, snapshot *schema.MintSnapshot) error
}
