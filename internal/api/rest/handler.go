package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
	"github.com/mural-hq/mint-fulfillment/internal/api/rest/dto"
	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/fulfillment"
	"github.com/mural-hq/mint-fulfillment/internal/logger"
	"github.com/mural-hq/mint-fulfillment/internal/store"
	"github.com/mural-hq/mint-fulfillment/internal/webhook"
)

// Signature headers set by the payment provider on webhook deliveries
const (
	HeaderWebhookSignature = "X-Webhook-Signature"
	HeaderWebhookTimestamp = "X-Webhook-Timestamp"
)

// maxWebhookBody caps how much of a webhook delivery is read
const maxWebhookBody = 64 * 1024

// WebhookConfig holds inbound webhook verification settings
type WebhookConfig struct {
	Secret       string
	ReplayWindow time.Duration
}

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetPurchase retrieves a purchase for status polling
	// GET /api/v1/purchases/:id
	GetPurchase(c *gin.Context)

	// FulfillPurchase runs one fulfillment attempt for a purchase
	// POST /api/v1/purchases/:id/fulfill
	FulfillPurchase(c *gin.Context)

	// PaymentWebhook receives signed payment events from the payment provider
	// POST /api/v1/webhooks/payments
	PaymentWebhook(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store        store.Store
	orchestrator fulfillment.Orchestrator
	clock        adapter.Clock
	webhookCfg   WebhookConfig
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, orchestrator fulfillment.Orchestrator, clock adapter.Clock, webhookCfg WebhookConfig) Handler {
	return &handler{
		store:        st,
		orchestrator: orchestrator,
		clock:        clock,
		webhookCfg:   webhookCfg,
	}
}

// GetPurchase retrieves a purchase by ID
func (h *handler) GetPurchase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid purchase ID", err.Error())
		return
	}

	purchase, err := h.store.GetPurchase(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to load purchase", zap.String("purchase_id", id.String()))
		return
	}
	if purchase == nil {
		respondNotFound(c, "Purchase not found")
		return
	}

	c.JSON(http.StatusOK, dto.FromPurchase(purchase))
}

// FulfillPurchase runs one fulfillment attempt and returns its result.
// The call is safe to repeat; a purchase already fulfilled returns success
// with the recorded mint.
func (h *handler) FulfillPurchase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid purchase ID", err.Error())
		return
	}

	result := h.orchestrator.Fulfill(c.Request.Context(), id)

	if !result.Success && result.Error == domain.ErrPurchaseNotFound.Error() {
		respondNotFound(c, "Purchase not found")
		return
	}

	// Failures are domain outcomes, not transport errors
	c.JSON(http.StatusOK, result)
}

// PaymentWebhook verifies and applies a payment event
func (h *handler) PaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		respondBadRequest(c, "Failed to read request body", err.Error())
		return
	}

	timestamp, err := strconv.ParseInt(c.GetHeader(HeaderWebhookTimestamp), 10, 64)
	if err != nil {
		respondBadRequest(c, "Missing or invalid webhook timestamp header")
		return
	}

	var event webhook.PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		respondBadRequest(c, "Invalid webhook payload", err.Error())
		return
	}

	signature := c.GetHeader(HeaderWebhookSignature)
	if err := webhook.VerifySignature(h.webhookCfg.Secret, signature, timestamp, event.EventID, body, h.clock.Now(), h.webhookCfg.ReplayWindow); err != nil {
		logger.WarnCtx(c.Request.Context(), "Rejected webhook delivery",
			zap.Error(err),
			zap.String("event_id", event.EventID),
			zap.String("client_ip", c.ClientIP()),
		)
		respondUnauthorized(c, "Webhook verification failed", err.Error())
		return
	}

	purchaseID, err := uuid.Parse(event.Data.PurchaseID)
	if err != nil {
		respondBadRequest(c, "Invalid purchase ID in webhook payload", err.Error())
		return
	}

	switch event.EventType {
	case webhook.EventTypePaymentConfirmed:
		h.applyPaymentConfirmed(c, purchaseID, event)
	case webhook.EventTypePaymentFailed:
		// The reservation expiry abandons unpaid purchases; just record it
		logger.InfoCtx(c.Request.Context(), "Payment failed event received",
			zap.String("event_id", event.EventID),
			zap.String("purchase_id", purchaseID.String()),
		)
		c.JSON(http.StatusOK, dto.WebhookAck{Received: true, EventID: event.EventID})
	default:
		respondBadRequest(c, "Unknown event type", event.EventType)
	}
}

// applyPaymentConfirmed advances the purchase and runs fulfillment inline
func (h *handler) applyPaymentConfirmed(c *gin.Context, purchaseID uuid.UUID, event webhook.PaymentEvent) {
	marked, err := h.store.MarkAwaitingFulfillment(c.Request.Context(), purchaseID)
	if err != nil {
		respondInternalError(c, err, "Failed to update purchase", zap.String("purchase_id", purchaseID.String()))
		return
	}
	if !marked {
		// Re-delivered event or the sweeper won; fulfillment below is still
		// safe because Fulfill is claim-guarded and idempotent
		logger.InfoCtx(c.Request.Context(), "Purchase already past submitted",
			zap.String("event_id", event.EventID),
			zap.String("purchase_id", purchaseID.String()),
		)
	}

	result := h.orchestrator.Fulfill(c.Request.Context(), purchaseID)
	logger.InfoCtx(c.Request.Context(), "Webhook-triggered fulfillment finished",
		zap.String("purchase_id", purchaseID.String()),
		zap.Bool("success", result.Success),
		zap.String("status", string(result.Status)),
	)

	c.JSON(http.StatusOK, dto.WebhookAck{Received: true, EventID: event.EventID})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   h.clock.Now().UTC().Format(time.RFC3339),
	})
}
