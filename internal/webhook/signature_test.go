package webhook_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mural-hq/mint-fulfillment/internal/webhook"
)

const testSecret = "746573742d7365637265742d6b6579"

func signedTestEvent(t *testing.T, now time.Time) (webhook.PaymentEvent, []byte, string, int64) {
	event := webhook.PaymentEvent{
		EventID:   "01JG8XAMPLE1234567890123456",
		EventType: webhook.EventTypePaymentConfirmed,
		Timestamp: now,
		Data: webhook.PaymentEventData{
			PurchaseID: "7e6f8b6e-8a33-44c2-9f6e-0f8a1d2c3b4a",
			TxHash:     "0x4a79f5f901a1746d77a34e4e7f3a08f1e999e6e3e632436ae10e3660e04e3f5c",
			Amount:     5_000_000,
			Chain:      "eip155:8453",
		},
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	timestamp := now.Unix()
	signature := webhook.ComputeSignature(testSecret, timestamp, event.EventID, body)

	return event, body, signature, timestamp
}

func TestVerifySignatureRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	event, body, signature, timestamp := signedTestEvent(t, now)

	assert.Contains(t, signature, "sha256=")

	err := webhook.VerifySignature(testSecret, signature, timestamp, event.EventID, body, now, webhook.DefaultReplayWindow)
	assert.NoError(t, err)
}

func TestVerifySignatureTamperedBody(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	event, body, signature, timestamp := signedTestEvent(t, now)

	tampered := append([]byte(nil), body...)
	tampered[len(tampered)-2] = 'X'

	err := webhook.VerifySignature(testSecret, signature, timestamp, event.EventID, tampered, now, webhook.DefaultReplayWindow)
	assert.ErrorIs(t, err, webhook.ErrInvalidSignature)
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	event, body, signature, timestamp := signedTestEvent(t, now)

	err := webhook.VerifySignature("other-secret", signature, timestamp, event.EventID, body, now, webhook.DefaultReplayWindow)
	assert.ErrorIs(t, err, webhook.ErrInvalidSignature)
}

func TestVerifySignatureWrongEventID(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, body, signature, timestamp := signedTestEvent(t, now)

	err := webhook.VerifySignature(testSecret, signature, timestamp, "01JG8OTHER0000000000000000", body, now, webhook.DefaultReplayWindow)
	assert.ErrorIs(t, err, webhook.ErrInvalidSignature)
}

func TestVerifySignatureStaleTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	event, body, signature, timestamp := signedTestEvent(t, now)

	later := now.Add(10 * time.Minute)
	err := webhook.VerifySignature(testSecret, signature, timestamp, event.EventID, body, later, webhook.DefaultReplayWindow)
	assert.ErrorIs(t, err, webhook.ErrStaleTimestamp)
}

func TestVerifySignatureFutureTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	event, body, _, _ := signedTestEvent(t, now)

	future := now.Add(10 * time.Minute).Unix()
	signature := webhook.ComputeSignature(testSecret, future, event.EventID, body)

	err := webhook.VerifySignature(testSecret, signature, future, event.EventID, body, now, webhook.DefaultReplayWindow)
	assert.ErrorIs(t, err, webhook.ErrStaleTimestamp)
}

func TestComputeSignatureDiffersByEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, body, signature, timestamp := signedTestEvent(t, now)

	other := webhook.ComputeSignature(testSecret, timestamp, "01JG8OTHER0000000000000000", body)
	assert.NotEqual(t, signature, other)
}
