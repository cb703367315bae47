package fulfillment

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/logger"
	"github.com/mural-hq/mint-fulfillment/internal/messaging"
	"github.com/mural-hq/mint-fulfillment/internal/store"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
)

// HookPayload carries everything a post-transition hook might need. Buyer,
// Creator and Post may be nil on failure paths that never loaded them.
type HookPayload struct {
	Purchase      *schema.Purchase
	Post          *schema.Post
	Buyer         *schema.User
	Creator       *schema.User
	Status        domain.PurchaseStatus
	NFTMint       string
	MetadataURI   string
	EditionNumber int
}

// Hook runs after a purchase reaches a terminal status. Hooks are best-effort:
// a hook error is logged and never reverts the transition or stops the
// remaining hooks.
type Hook interface {
	Name() string
	Run(ctx context.Context, payload *HookPayload) error
}

// runHooks executes each hook in order, isolating failures and panics
func (o *orchestrator) runHooks(ctx context.Context, payload *HookPayload) {
	for _, hook := range o.hooks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorCtx(ctx, fmt.Errorf("hook %s panicked: %v", hook.Name(), r),
						zap.String("purchase_id", payload.Purchase.ID.String()),
					)
				}
			}()

			if err := hook.Run(ctx, payload); err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("hook %s failed: %w", hook.Name(), err),
					zap.String("purchase_id", payload.Purchase.ID.String()),
				)
			}
		}()
	}
}

// NotificationHook records an edition-sold notification for the creator
type NotificationHook struct {
	store store.Store
	json  adapter.JSON
}

// NewNotificationHook creates a notification hook
func NewNotificationHook(st store.Store, json adapter.JSON) *NotificationHook {
	return &NotificationHook{store: st, json: json}
}

// Name returns the hook name
func (h *NotificationHook) Name() string {
	return "notification"
}

// Run creates the creator's edition-sold notification
func (h *NotificationHook) Run(ctx context.Context, payload *HookPayload) error {
	if payload.Status != domain.StatusConfirmed || payload.Post == nil {
		return nil
	}

	data, err := h.json.Marshal(map[string]interface{}{
		"purchase_id":    payload.Purchase.ID.String(),
		"post_id":        payload.Post.ID.String(),
		"buyer_id":       payload.Purchase.UserID.String(),
		"nft_mint":       payload.NFTMint,
		"edition_number": payload.EditionNumber,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	return h.store.CreateNotification(ctx, &schema.Notification{
		UserID:  payload.Post.CreatorID,
		Kind:    schema.NotificationKindEditionSold,
		Payload: datatypes.JSON(data),
	})
}

// SnapshotHook persists an immutable record of the minted metadata
type SnapshotHook struct {
	store store.Store
	json  adapter.JSON
}

// NewSnapshotHook creates a mint snapshot hook
func NewSnapshotHook(st store.Store, json adapter.JSON) *SnapshotHook {
	return &SnapshotHook{store: st, json: json}
}

// Name returns the hook name
func (h *SnapshotHook) Name() string {
	return "mint_snapshot"
}

// Run writes the mint snapshot row
func (h *SnapshotHook) Run(ctx context.Context, payload *HookPayload) error {
	if payload.Status != domain.StatusConfirmed || payload.Post == nil {
		return nil
	}

	data, err := h.json.Marshal(map[string]interface{}{
		"metadata_uri":   payload.MetadataURI,
		"edition_number": payload.EditionNumber,
		"title":          payload.Post.Title,
		"nft_mint":       payload.NFTMint,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot metadata: %w", err)
	}

	return h.store.CreateMintSnapshot(ctx, &schema.MintSnapshot{
		PurchaseID: payload.Purchase.ID,
		NFTMint:    payload.NFTMint,
		Metadata:   datatypes.JSON(data),
	})
}

// PublisherHook emits the purchase lifecycle event to the message bus
type PublisherHook struct {
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewPublisherHook creates an event publishing hook
func NewPublisherHook(publisher messaging.Publisher, clock adapter.Clock) *PublisherHook {
	return &PublisherHook{publisher: publisher, clock: clock}
}

// Name returns the hook name
func (h *PublisherHook) Name() string {
	return "event_publisher"
}

// Run publishes purchase.confirmed or purchase.failed
func (h *PublisherHook) Run(ctx context.Context, payload *HookPayload) error {
	eventType := domain.EventTypePurchaseConfirmed
	if payload.Status == domain.StatusFailed {
		eventType = domain.EventTypePurchaseFailed
	}

	event := &domain.PurchaseEvent{
		EventID:       ulid.Make().String(),
		EventType:     eventType,
		PurchaseID:    payload.Purchase.ID,
		PostID:        payload.Purchase.PostID,
		BuyerID:       payload.Purchase.UserID,
		NFTMint:       payload.NFTMint,
		EditionNumber: payload.EditionNumber,
		Timestamp:     h.clock.Now().UTC().Truncate(time.Millisecond),
	}

	return h.publisher.PublishPurchaseEvent(ctx, event)
}
