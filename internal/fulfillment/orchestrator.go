package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
	"github.com/mural-hq/mint-fulfillment/internal/chain"
	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/logger"
	"github.com/mural-hq/mint-fulfillment/internal/metadata"
	"github.com/mural-hq/mint-fulfillment/internal/store"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
)

// DefaultClaimStaleness is how old a minting claim must be before another
// worker may reclaim it. It must exceed realistic chain-confirmation latency;
// it also bounds how long a crashed worker blocks retries.
const DefaultClaimStaleness = 2 * time.Minute

// Config holds orchestrator configuration
type Config struct {
	ClaimStaleness time.Duration
}

// Orchestrator drives a purchase from payment-confirmed to NFT-minted. It is
// safe to invoke concurrently and repeatedly for the same purchase; all mutual
// exclusion happens through the store's conditional updates. It never retries
// internally - callers re-invoke on retryable results.
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/orchestrator.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// Fulfill runs one fulfillment attempt for the purchase. Errors never
	// escape; every outcome is a FulfillResult.
	Fulfill(ctx context.Context, purchaseID uuid.UUID) domain.FulfillResult
}

type orchestrator struct {
	config   Config
	store    store.Store
	chain    chain.Service
	metadata metadata.Resolver
	clock    adapter.Clock
	hooks    []Hook
}

// NewOrchestrator creates a new fulfillment orchestrator
func NewOrchestrator(
	cfg Config,
	st store.Store,
	chainService chain.Service,
	metadataResolver metadata.Resolver,
	clock adapter.Clock,
	hooks ...Hook,
) Orchestrator {
	if cfg.ClaimStaleness <= 0 {
		cfg.ClaimStaleness = DefaultClaimStaleness
	}

	return &orchestrator{
		config:   cfg,
		store:    st,
		chain:    chainService,
		metadata: metadataResolver,
		clock:    clock,
		hooks:    hooks,
	}
}

// Fulfill runs one fulfillment attempt for the purchase
func (o *orchestrator) Fulfill(ctx context.Context, purchaseID uuid.UUID) domain.FulfillResult {
	claim, err := o.acquireClaim(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			return domain.FulfillResult{Success: false, Error: err.Error()}
		}
		logger.ErrorCtx(ctx, err, zap.String("purchase_id", purchaseID.String()))
		return domain.FulfillResult{Success: false, Error: fmt.Sprintf("claim acquisition failed: %v", err)}
	}

	switch claim.outcome {
	case claimAlreadyDone:
		return domain.FulfillResult{Success: true, Status: domain.StatusConfirmed, NFTMint: claim.nftMint}
	case claimBusy:
		return domain.FulfillResult{Success: false, Status: domain.StatusMinting, Error: "fulfillment in progress"}
	case claimRetryable:
		return domain.FulfillResult{Success: false, Status: claim.status, Error: "purchase not ready, retry later"}
	}

	return o.mint(ctx, claim.purchase)
}

// mint executes the claimed attempt: load records, resolve metadata and
// collection, mint the edition, finalize
func (o *orchestrator) mint(ctx context.Context, purchase *schema.Purchase) domain.FulfillResult {
	post, err := o.store.GetPost(ctx, purchase.PostID)
	if err != nil {
		return o.releaseForRetry(ctx, purchase, nil, err)
	}
	if post == nil {
		return o.failTerminally(ctx, purchase, nil, nil, domain.ErrPostNotFound)
	}

	buyer, err := o.store.GetUser(ctx, purchase.UserID)
	if err != nil {
		return o.releaseForRetry(ctx, purchase, post, err)
	}
	creator, err := o.store.GetUser(ctx, post.CreatorID)
	if err != nil {
		return o.releaseForRetry(ctx, purchase, post, err)
	}

	// Missing records are configuration errors, not flakiness
	buyerWallet := purchase.BuyerWalletAddress
	if buyerWallet == nil && buyer != nil {
		buyerWallet = buyer.WalletAddress
	}
	if buyerWallet == nil || *buyerWallet == "" {
		return o.failTerminally(ctx, purchase, post, buyer, domain.ErrMissingBuyerWallet)
	}
	if creator == nil || creator.WalletAddress == nil || *creator.WalletAddress == "" {
		return o.failTerminally(ctx, purchase, post, buyer, domain.ErrMissingCreatorWallet)
	}

	metadataURI, err := o.metadata.Resolve(ctx, post, creator)
	if err != nil {
		// Metadata storage flakiness is retryable, never terminal
		return o.releaseForRetry(ctx, purchase, post, err)
	}

	collectionAddress, err := o.resolveCollection(ctx, purchase, post, creator, metadataURI)
	if err != nil {
		return o.handleChainFailure(ctx, purchase, post, buyer, err)
	}

	// The supply counter was incremented when this purchase was reserved, so
	// it names the current edition index; re-deriving a count here would let
	// two concurrent mints pick the same ordinal
	editionNumber := post.CurrentSupply

	edition, err := o.chain.CreateEdition(ctx, chain.CreateEditionParams{
		BuyerWallet:       *buyerWallet,
		CreatorWallet:     *creator.WalletAddress,
		CollectionAddress: collectionAddress,
		MetadataURI:       metadataURI,
		Name:              fmt.Sprintf("%s #%d", post.Title, editionNumber),
		EditionNumber:     editionNumber,
	})
	if err != nil {
		return o.handleChainFailure(ctx, purchase, post, buyer, err)
	}

	confirmed, err := o.store.ConfirmPurchase(ctx, purchase.ID, edition.AssetAddress, edition.Signature)
	if err != nil {
		// The mint succeeded but we could not record it. Do not release the
		// claim: a fresh attempt would mint a second edition. The staleness
		// window will let a later attempt repair the row.
		logger.ErrorCtx(ctx, err,
			zap.String("purchase_id", purchase.ID.String()),
			zap.String("nft_mint", edition.AssetAddress),
		)
		return domain.FulfillResult{Success: false, Status: domain.StatusMinting, Error: fmt.Sprintf("failed to record mint: %v", err)}
	}
	if !confirmed {
		// The claim went stale mid-mint and another worker took over
		current, gerr := o.store.GetPurchase(ctx, purchase.ID)
		if gerr == nil && current != nil && current.Status == domain.StatusConfirmed && current.NFTMint != nil {
			return domain.FulfillResult{Success: true, Status: domain.StatusConfirmed, NFTMint: *current.NFTMint}
		}
		logger.WarnCtx(ctx, "Lost fulfillment claim during finalize",
			zap.String("purchase_id", purchase.ID.String()),
			zap.String("nft_mint", edition.AssetAddress),
		)
		return domain.FulfillResult{Success: false, Status: domain.StatusMinting, Error: "claim lost during finalize"}
	}

	o.runHooks(ctx, &HookPayload{
		Purchase:      purchase,
		Post:          post,
		Buyer:         buyer,
		Creator:       creator,
		Status:        domain.StatusConfirmed,
		NFTMint:       edition.AssetAddress,
		MetadataURI:   metadataURI,
		EditionNumber: editionNumber,
	})

	return domain.FulfillResult{Success: true, Status: domain.StatusConfirmed, NFTMint: edition.AssetAddress}
}

// handleChainFailure classifies a chain error and applies the matching
// transition: release the lease for retry, or fail terminally with the
// compensating supply decrement
func (o *orchestrator) handleChainFailure(ctx context.Context, purchase *schema.Purchase, post *schema.Post, buyer *schema.User, err error) domain.FulfillResult {
	classified := chain.Classify(err)

	if chain.IsTransient(classified) {
		return o.releaseForRetry(ctx, purchase, post, classified)
	}

	return o.failTerminally(ctx, purchase, post, buyer, classified)
}

// releaseForRetry reverts the purchase to a pre-mint status and clears the
// claim so any caller may re-invoke later. No compensating supply change.
func (o *orchestrator) releaseForRetry(ctx context.Context, purchase *schema.Purchase, post *schema.Post, cause error) domain.FulfillResult {
	status := domain.StatusAwaitingFulfillment
	if post != nil && post.MasterCollectionAddress != nil && *post.MasterCollectionAddress != "" {
		// The collection survives retries; restart past the creation phase
		status = domain.StatusMasterCreated
	}

	released, err := o.store.ReleaseForRetry(ctx, purchase.ID, status)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("purchase_id", purchase.ID.String()))
	} else if !released {
		logger.WarnCtx(ctx, "Purchase was not in minting when releasing claim",
			zap.String("purchase_id", purchase.ID.String()),
		)
	}

	logger.InfoCtx(ctx, "Fulfillment attempt will be retried",
		zap.String("purchase_id", purchase.ID.String()),
		zap.String("status", string(status)),
		zap.Error(cause),
	)

	return domain.FulfillResult{Success: false, Status: status, Error: cause.Error()}
}

// failTerminally moves the purchase to failed, releasing its supply slot, and
// runs the post-commit hooks for the failure
func (o *orchestrator) failTerminally(ctx context.Context, purchase *schema.Purchase, post *schema.Post, buyer *schema.User, cause error) domain.FulfillResult {
	failed, err := o.store.FailPurchase(ctx, purchase.ID, o.clock.Now())
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("purchase_id", purchase.ID.String()))
		return domain.FulfillResult{Success: false, Status: domain.StatusFailed, Error: cause.Error()}
	}
	if !failed {
		logger.WarnCtx(ctx, "Purchase was not in minting when failing",
			zap.String("purchase_id", purchase.ID.String()),
		)
	}

	logger.WarnCtx(ctx, "Purchase failed terminally",
		zap.String("purchase_id", purchase.ID.String()),
		zap.Error(cause),
	)

	o.runHooks(ctx, &HookPayload{
		Purchase: purchase,
		Post:     post,
		Buyer:    buyer,
		Status:   domain.StatusFailed,
	})

	return domain.FulfillResult{Success: false, Status: domain.StatusFailed, Error: cause.Error()}
}
