package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mural-hq/mint-fulfillment/internal/domain"
)

func TestIsValidPurchaseStatus(t *testing.T) {
	valid := []domain.PurchaseStatus{
		domain.StatusReserved,
		domain.StatusSubmitted,
		domain.StatusAwaitingFulfillment,
		domain.StatusMasterCreated,
		domain.StatusMinting,
		domain.StatusConfirmed,
		domain.StatusFailed,
		domain.StatusAbandoned,
	}
	for _, s := range valid {
		assert.True(t, domain.IsValidPurchaseStatus(s), string(s))
	}

	assert.False(t, domain.IsValidPurchaseStatus("pending"))
	assert.False(t, domain.IsValidPurchaseStatus(""))
	assert.False(t, domain.IsValidPurchaseStatus("CONFIRMED"))
}

func TestPurchaseStatus_Terminal(t *testing.T) {
	assert.True(t, domain.StatusConfirmed.Terminal())
	assert.True(t, domain.StatusFailed.Terminal())
	assert.True(t, domain.StatusAbandoned.Terminal())

	assert.False(t, domain.StatusReserved.Terminal())
	assert.False(t, domain.StatusSubmitted.Terminal())
	assert.False(t, domain.StatusAwaitingFulfillment.Terminal())
	assert.False(t, domain.StatusMasterCreated.Terminal())
	assert.False(t, domain.StatusMinting.Terminal())
}

func TestPurchaseStatus_Retryable(t *testing.T) {
	assert.True(t, domain.StatusAwaitingFulfillment.Retryable())
	assert.True(t, domain.StatusMasterCreated.Retryable())

	assert.False(t, domain.StatusMinting.Retryable())
	assert.False(t, domain.StatusConfirmed.Retryable())
	assert.False(t, domain.StatusFailed.Retryable())
}
