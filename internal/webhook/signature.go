package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidSignature means the signature header does not match the payload
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrStaleTimestamp means the signed timestamp is outside the replay window
	ErrStaleTimestamp = errors.New("webhook timestamp outside replay window")
)

// DefaultReplayWindow bounds how old a signed webhook may be before it is
// rejected as a possible replay
const DefaultReplayWindow = 5 * time.Minute

// ComputeSignature computes the HMAC-SHA256 signature for a webhook payload.
// The signature covers {timestamp}.{event_id}.{json_body}, which binds:
// 1. The timestamp to prevent replay attacks
// 2. The event ID for deduplication
// 3. The entire payload integrity
// The result is formatted as "sha256=<hex_signature>".
func ComputeSignature(secret string, timestamp int64, eventID string, body []byte) string {
	signaturePayload := fmt.Sprintf("%d.%s.%s", timestamp, eventID, string(body))

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(signaturePayload))

	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}

// VerifySignature checks an inbound webhook's signature header and replay
// window. Comparison is constant-time.
func VerifySignature(secret string, signature string, timestamp int64, eventID string, body []byte, now time.Time, replayWindow time.Duration) error {
	if replayWindow <= 0 {
		replayWindow = DefaultReplayWindow
	}

	age := now.Unix() - timestamp
	if age > int64(replayWindow.Seconds()) || age < -int64(replayWindow.Seconds()) {
		return ErrStaleTimestamp
	}

	expected := ComputeSignature(secret, timestamp, eventID, body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}

	return nil
}
