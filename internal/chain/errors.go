package chain

import (
	"errors"
	"strings"
)

// TransientError marks a chain failure that is safe to retry: RPC flakiness,
// transaction expiry, or propagation lag. The purchase keeps its supply slot.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "transient chain error: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NewTransientError pre-classifies an error as retryable, bypassing the
// pattern table
func NewTransientError(err error) error {
	return &TransientError{Err: err}
}

// TerminalError marks a chain failure that retrying will not fix; the caller
// must fail the purchase and release its supply slot.
type TerminalError struct {
	Err error
}

func (e *TerminalError) Error() string {
	return "terminal chain error: " + e.Err.Error()
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// transientPatterns is the single home for the gateway SDK's error-text
// heuristics. These strings are product-specific and tied to the SDK the
// gateway wraps; keep them here and nowhere else.
var transientPatterns = []string{
	"block height exceeded",
	"blockhash not found",
	"accountnotfound",
	"account does not exist",
	"not found",
	"timed out",
	"timeout",
	"deadline exceeded",
	"transaction expired",
	"node is behind",
	"connection refused",
	"connection reset",
	"too many requests",
	"rate limited",
}

// Classify wraps an error from the gateway into TransientError or
// TerminalError based on the pattern table. Errors that already carry a
// classification pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var transient *TransientError
	var terminal *TerminalError
	if errors.As(err, &transient) || errors.As(err, &terminal) {
		return err
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return &TransientError{Err: err}
		}
	}

	return &TerminalError{Err: err}
}

// IsTransient reports whether an error was classified as retryable
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}
