package domain

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseStatus represents the lifecycle state of an edition purchase.
// The values are wire-visible through API responses and must stay stable.
type PurchaseStatus string

const (
	// StatusReserved means the purchase slot is reserved but payment has not been submitted
	StatusReserved PurchaseStatus = "reserved"
	// StatusSubmitted means the payment transaction has been submitted and awaits confirmation
	StatusSubmitted PurchaseStatus = "submitted"
	// StatusAwaitingFulfillment means payment is confirmed and the purchase is ready to be minted
	StatusAwaitingFulfillment PurchaseStatus = "awaiting_fulfillment"
	// StatusMasterCreated means a previous attempt created the collection but the edition mint is still pending
	StatusMasterCreated PurchaseStatus = "master_created"
	// StatusMinting means a fulfillment worker currently holds the claim and is minting
	StatusMinting PurchaseStatus = "minting"
	// StatusConfirmed means the edition NFT has been minted and recorded (terminal)
	StatusConfirmed PurchaseStatus = "confirmed"
	// StatusFailed means fulfillment failed terminally and the supply slot was released (terminal)
	StatusFailed PurchaseStatus = "failed"
	// StatusAbandoned means the buyer never completed payment (set by reservation code)
	StatusAbandoned PurchaseStatus = "abandoned"
)

// IsValidPurchaseStatus checks if a status is one of the known enum values
func IsValidPurchaseStatus(s PurchaseStatus) bool {
	switch s {
	case StatusReserved, StatusSubmitted, StatusAwaitingFulfillment,
		StatusMasterCreated, StatusMinting, StatusConfirmed,
		StatusFailed, StatusAbandoned:
		return true
	}
	return false
}

// Terminal reports whether the status is a final state for the purchase
func (s PurchaseStatus) Terminal() bool {
	return s == StatusConfirmed || s == StatusFailed || s == StatusAbandoned
}

// Retryable reports whether a fulfillment attempt may be started from this status
func (s PurchaseStatus) Retryable() bool {
	return s == StatusAwaitingFulfillment || s == StatusMasterCreated
}

// FulfillResult is the outcome of a single fulfillment invocation.
// It is the only thing that crosses back into the webhook/poller layer;
// errors never escape as Go errors past the orchestrator boundary.
type FulfillResult struct {
	Success bool           `json:"success"`
	Status  PurchaseStatus `json:"status"`
	NFTMint string         `json:"nft_mint,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// PurchaseEventType identifies the kind of purchase event published post-commit
type PurchaseEventType string

const (
	// EventTypePurchaseConfirmed is published after an edition mint is recorded
	EventTypePurchaseConfirmed PurchaseEventType = "purchase.confirmed"
	// EventTypePurchaseFailed is published after a purchase fails terminally
	EventTypePurchaseFailed PurchaseEventType = "purchase.failed"
)

// PurchaseEvent is the payload published to the message broker after the
// authoritative state transition commits
type PurchaseEvent struct {
	// EventID is a unique identifier for this event (ULID for time-sortable uniqueness)
	EventID string `json:"event_id"`
	// EventType is the kind of event (e.g. "purchase.confirmed")
	EventType PurchaseEventType `json:"event_type"`
	// PurchaseID is the purchase this event concerns
	PurchaseID uuid.UUID `json:"purchase_id"`
	// PostID is the post the purchased edition belongs to
	PostID uuid.UUID `json:"post_id"`
	// BuyerID is the purchasing user
	BuyerID uuid.UUID `json:"buyer_id"`
	// NFTMint is the minted asset address (empty for failure events)
	NFTMint string `json:"nft_mint,omitempty"`
	// EditionNumber is the ordinal of the minted edition within the post
	EditionNumber int `json:"edition_number,omitempty"`
	// Timestamp is when the event was generated
	Timestamp time.Time `json:"timestamp"`
}
