package fulfillment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mural-hq/mint-fulfillment/internal/chain"
	"github.com/mural-hq/mint-fulfillment/internal/logger"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
)

// resolveCollection returns the post's master collection address, creating the
// collection on first use. Concurrent first purchases race freely on chain;
// the store's conditional write picks a single winner and losers adopt the
// winning address.
func (o *orchestrator) resolveCollection(ctx context.Context, purchase *schema.Purchase, post *schema.Post, creator *schema.User, metadataURI string) (string, error) {
	if post.MasterCollectionAddress != nil && *post.MasterCollectionAddress != "" {
		return *post.MasterCollectionAddress, nil
	}

	collection, err := o.chain.CreateCollection(ctx, chain.CreateCollectionParams{
		CreatorWallet: *creator.WalletAddress,
		MetadataURI:   metadataURI,
		Name:          post.Title,
		MaxSupply:     post.MaxSupply,
		RoyaltyBps:    post.RoyaltyBps,
	})
	if err != nil {
		// Collection creation never fails a purchase; the claim is released
		// and the next attempt retries with supply untouched
		return "", chain.NewTransientError(fmt.Errorf("failed to create collection: %w", err))
	}

	won, err := o.store.SetMasterCollection(ctx, post.ID, collection.CollectionAddress)
	if err != nil {
		return "", chain.NewTransientError(fmt.Errorf("failed to persist collection address: %w", err))
	}

	if won {
		post.MasterCollectionAddress = &collection.CollectionAddress
		if rerr := o.store.RecordMasterSignature(ctx, purchase.ID, collection.Signature); rerr != nil {
			// The signature is an audit trail, not a correctness input
			logger.ErrorCtx(ctx, rerr, zap.String("purchase_id", purchase.ID.String()))
		}
		logger.InfoCtx(ctx, "Created master collection",
			zap.String("post_id", post.ID.String()),
			zap.String("collection_address", collection.CollectionAddress),
		)
		return collection.CollectionAddress, nil
	}

	// Another purchase won the race; our collection is abandoned on chain
	fresh, err := o.store.GetPost(ctx, post.ID)
	if err != nil {
		return "", chain.NewTransientError(fmt.Errorf("failed to reload post after collection race: %w", err))
	}
	if fresh == nil || fresh.MasterCollectionAddress == nil || *fresh.MasterCollectionAddress == "" {
		return "", chain.NewTransientError(fmt.Errorf("post %s has no collection address after losing creation race", post.ID))
	}

	logger.WarnCtx(ctx, "Discarding losing master collection",
		zap.String("post_id", post.ID.String()),
		zap.String("discarded_address", collection.CollectionAddress),
		zap.String("winning_address", *fresh.MasterCollectionAddress),
	)

	post.MasterCollectionAddress = fresh.MasterCollectionAddress
	return *fresh.MasterCollectionAddress, nil
}
