package fulfillment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/logger"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
)

type claimOutcome int

const (
	claimAcquired claimOutcome = iota
	claimAlreadyDone
	claimBusy
	claimRetryable
)

type claimResult struct {
	outcome  claimOutcome
	status   domain.PurchaseStatus
	nftMint  string
	purchase *schema.Purchase
}

// acquireClaim attempts to take the exclusive minting lease on the purchase.
// Exactly one concurrent caller gets claimAcquired; everyone else learns why
// they lost.
func (o *orchestrator) acquireClaim(ctx context.Context, purchaseID uuid.UUID) (*claimResult, error) {
	key := uuid.NewString()
	now := o.clock.Now()
	staleBefore := now.Add(-o.config.ClaimStaleness)

	purchase, err := o.store.ClaimPurchase(ctx, purchaseID, key, now, staleBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to claim purchase: %w", err)
	}
	if purchase != nil {
		logger.InfoCtx(ctx, "Acquired fulfillment claim",
			zap.String("purchase_id", purchaseID.String()),
			zap.String("fulfillment_key", key),
		)
		return &claimResult{outcome: claimAcquired, purchase: purchase}, nil
	}

	// The conditional update matched nothing; read the row to explain why
	current, err := o.store.GetPurchase(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchase after claim miss: %w", err)
	}
	if current == nil {
		return nil, domain.ErrPurchaseNotFound
	}

	switch current.Status {
	case domain.StatusConfirmed:
		if current.NFTMint != nil && *current.NFTMint != "" {
			return &claimResult{outcome: claimAlreadyDone, status: current.Status, nftMint: *current.NFTMint}, nil
		}
		// Confirmed without a mint is an interrupted finalize; push it back
		// so the next attempt can re-run the whole flow
		reset, rerr := o.store.ResetOrphanedPurchase(ctx, purchaseID)
		if rerr != nil {
			return nil, fmt.Errorf("failed to reset orphaned purchase: %w", rerr)
		}
		if reset {
			logger.WarnCtx(ctx, "Reset orphaned confirmed purchase",
				zap.String("purchase_id", purchaseID.String()),
			)
		}
		return &claimResult{outcome: claimRetryable, status: domain.StatusAwaitingFulfillment}, nil
	case domain.StatusMinting:
		if current.FulfillmentClaimedAt != nil && current.FulfillmentClaimedAt.Before(staleBefore) {
			// Stale between our update and this read; the next call will win
			return &claimResult{outcome: claimRetryable, status: current.Status}, nil
		}
		return &claimResult{outcome: claimBusy, status: current.Status}, nil
	}

	return &claimResult{outcome: claimRetryable, status: current.Status}, nil
}
