package chain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mural-hq/mint-fulfillment/internal/chain"
)

func TestClassify_Transient(t *testing.T) {
	transient := []error{
		errors.New("Transaction simulation failed: block height exceeded"),
		errors.New("Blockhash not found"),
		errors.New("AccountNotFoundError: collection account missing"),
		errors.New("rpc call timed out after 30s"),
		errors.New("context deadline exceeded"),
		errors.New("transaction expired before confirmation"),
		errors.New("dial tcp: connection refused"),
		errors.New("429 Too Many Requests"),
		errors.New("signature abc123 not found"),
	}

	for _, err := range transient {
		classified := chain.Classify(err)
		assert.True(t, chain.IsTransient(classified), err.Error())
		assert.ErrorIs(t, classified, err)
	}
}

func TestClassify_Terminal(t *testing.T) {
	terminal := []error{
		errors.New("invalid creator address"),
		errors.New("insufficient funds for rent"),
		errors.New("custom program error: 0x1"),
		errors.New("metadata uri too long"),
	}

	for _, err := range terminal {
		classified := chain.Classify(err)
		assert.False(t, chain.IsTransient(classified), err.Error())

		var terminalErr *chain.TerminalError
		assert.ErrorAs(t, classified, &terminalErr)
		assert.ErrorIs(t, classified, err)
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, chain.Classify(nil))
}

func TestClassify_AlreadyClassified(t *testing.T) {
	inner := errors.New("generic failure")
	transient := &chain.TransientError{Err: inner}

	// A pre-classified error passes through untouched, even when its message
	// does not match any pattern
	assert.Same(t, transient, chain.Classify(transient).(*chain.TransientError))

	terminal := &chain.TerminalError{Err: errors.New("timed out")}
	assert.Same(t, terminal, chain.Classify(terminal).(*chain.TerminalError))

	// Wrapped classifications are preserved too
	wrapped := fmt.Errorf("create edition: %w", transient)
	assert.True(t, chain.IsTransient(chain.Classify(wrapped)))
}

func TestIsTransient_Unclassified(t *testing.T) {
	assert.False(t, chain.IsTransient(errors.New("timed out")))
	assert.False(t, chain.IsTransient(nil))
}
