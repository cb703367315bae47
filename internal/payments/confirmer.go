package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
)

// PaymentState is the observed on-chain state of a payment transaction
type PaymentState int

const (
	// PaymentPending means the transaction is not yet mined or not yet deep enough
	PaymentPending PaymentState = iota
	// PaymentConfirmed means the transaction succeeded with enough confirmations
	PaymentConfirmed
	// PaymentReverted means the transaction was mined but reverted; the payment never settled
	PaymentReverted
)

// Confirmer checks whether a payment transaction has settled on chain
//
//go:generate mockgen -source=confirmer.go -destination=../mocks/confirmer.go -package=mocks -mock_names=Confirmer=MockConfirmer
type Confirmer interface {
	// ConfirmPayment returns the current payment state of the transaction
	ConfirmPayment(ctx context.Context, txHash string) (PaymentState, error)
}

// ethConfirmer implements Confirmer against an EVM RPC endpoint
type ethConfirmer struct {
	client        adapter.EthClient
	confirmations uint64
}

// NewEthConfirmer creates a confirmer requiring the given confirmation depth
func NewEthConfirmer(client adapter.EthClient, confirmations uint64) Confirmer {
	if confirmations == 0 {
		confirmations = 1
	}
	return &ethConfirmer{
		client:        client,
		confirmations: confirmations,
	}
}

// ConfirmPayment looks up the receipt with a short retry for RPC flakiness.
// A missing receipt is pending, not an error.
func (c *ethConfirmer) ConfirmPayment(ctx context.Context, txHash string) (PaymentState, error) {
	var receipt *types.Receipt

	operation := func() error {
		var err error
		receipt, err = c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return backoff.Permanent(err)
			}
			return fmt.Errorf("failed to fetch receipt: %w", err)
		}
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(500*time.Millisecond),
	), 3), ctx)

	if err := backoff.Retry(operation, b); err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return PaymentPending, nil
		}
		return PaymentPending, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return PaymentReverted, nil
	}

	head, err := c.client.BlockNumber(ctx)
	if err != nil {
		return PaymentPending, fmt.Errorf("failed to fetch block number: %w", err)
	}

	mined := receipt.BlockNumber.Uint64()
	if head < mined || head-mined+1 < c.confirmations {
		return PaymentPending, nil
	}

	return PaymentConfirmed, nil
}
