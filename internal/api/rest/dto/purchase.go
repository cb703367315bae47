package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
)

// PurchaseResponse is the status-polling payload for a purchase
type PurchaseResponse struct {
	ID               uuid.UUID             `json:"id"`
	PostID           uuid.UUID             `json:"post_id"`
	BuyerID          uuid.UUID             `json:"buyer_id"`
	Status           domain.PurchaseStatus `json:"status"`
	Amount           int64                 `json:"amount"`
	PaymentTx        *string               `json:"payment_tx,omitempty"`
	NFTMint          *string               `json:"nft_mint,omitempty"`
	PrintTxSignature *string               `json:"print_tx_signature,omitempty"`
	FailedAt         *time.Time            `json:"failed_at,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// FromPurchase maps a purchase row to its API representation
func FromPurchase(p *schema.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:               p.ID,
		PostID:           p.PostID,
		BuyerID:          p.UserID,
		Status:           p.Status,
		Amount:           p.Amount,
		PaymentTx:        p.PaymentTxSignature,
		NFTMint:          p.NFTMint,
		PrintTxSignature: p.PrintTxSignature,
		FailedAt:         p.FailedAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// WebhookAck is the response body for an accepted webhook delivery
type WebhookAck struct {
	Received bool   `json:"received"`
	EventID  string `json:"event_id"`
}
