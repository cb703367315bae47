package webhook

import "time"

// Event type constants for the payment provider's webhook feed
const (
	// EventTypePaymentConfirmed is fired when a payment transaction has settled
	EventTypePaymentConfirmed = "payment.confirmed"

	// EventTypePaymentFailed is fired when a payment transaction reverted or expired
	EventTypePaymentFailed = "payment.failed"
)

// PaymentEvent represents an inbound webhook event from the payment provider
type PaymentEvent struct {
	// EventID is a unique identifier for this event (ULID for time-sortable uniqueness)
	EventID string `json:"event_id"`
	// EventType is the type of event (e.g., "payment.confirmed")
	EventType string `json:"event_type"`
	// Timestamp is when the event was generated
	Timestamp time.Time `json:"timestamp"`
	// Data contains the event-specific payload
	Data PaymentEventData `json:"data"`
}

// PaymentEventData contains the payment event payload
type PaymentEventData struct {
	// PurchaseID is the purchase the payment belongs to
	PurchaseID string `json:"purchase_id"`
	// TxHash is the payment transaction hash
	TxHash string `json:"tx_hash"`
	// Amount is the settled amount in the smallest currency unit
	Amount int64 `json:"amount"`
	// Chain is the network the payment settled on (e.g., "eip155:8453")
	Chain string `json:"chain"`
}
