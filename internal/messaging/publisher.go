package messaging

import (
	"context"

	"github.com/mural-hq/mint-fulfillment/internal/domain"
)

// Publisher defines the interface for publishing purchase events to the
// message broker. Downstream consumers (notification fan-out, analytics)
// subscribe to these; publishing is always best-effort from the
// orchestrator's point of view.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishPurchaseEvent publishes a purchase lifecycle event
	PublishPurchaseEvent(ctx context.Context, event *domain.PurchaseEvent) error
	// Close closes the connection
	Close()
}
