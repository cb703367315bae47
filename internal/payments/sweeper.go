package payments

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
	"github.com/mural-hq/mint-fulfillment/internal/domain"
	"github.com/mural-hq/mint-fulfillment/internal/fulfillment"
	"github.com/mural-hq/mint-fulfillment/internal/logger"
	"github.com/mural-hq/mint-fulfillment/internal/store"
	"github.com/mural-hq/mint-fulfillment/internal/store/schema"
	"github.com/mural-hq/mint-fulfillment/internal/sweeper"
)

// SweepConfig holds configuration for the payment sweeper
type SweepConfig struct {
	BatchSize      int           // Purchases to reconcile per cycle
	WorkerPoolSize int           // Concurrent workers
	PollInterval   time.Duration // Sleep between cycles
	RetryDelay     time.Duration // Only re-drive retryable purchases untouched this long
}

// paymentSweeper implements the Sweeper interface for payment reconciliation.
// Each cycle confirms submitted payments and re-drives purchases that a
// previous fulfillment attempt released for retry. Fulfill is idempotent and
// claim-guarded, so overlap with webhook-triggered fulfillment is harmless.
type paymentSweeper struct {
	config       *SweepConfig
	store        store.Store
	confirmer    Confirmer
	orchestrator fulfillment.Orchestrator
	clock        adapter.Clock
	pool         pond.Pool
	running      atomic.Bool
	stopChan     chan struct{}
	stoppedCh    chan struct{}
}

// NewPaymentSweeper creates a new payment reconciliation sweeper
func NewPaymentSweeper(
	config *SweepConfig,
	st store.Store,
	confirmer Confirmer,
	orchestrator fulfillment.Orchestrator,
	clock adapter.Clock,
) sweeper.Sweeper {
	return &paymentSweeper{
		config:       config,
		store:        st,
		confirmer:    confirmer,
		orchestrator: orchestrator,
		clock:        clock,
		stopChan:     make(chan struct{}),
		stoppedCh:    make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *paymentSweeper) Name() string {
	return "payment-sweeper"
}

// Start begins the sweeper's main loop
func (s *paymentSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting payment sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("poll_interval", s.config.PollInterval),
		zap.Duration("retry_delay", s.config.RetryDelay),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Payment sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Payment sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
			if !s.sleep(ctx, s.config.PollInterval) {
				s.cleanup()
				return nil
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *paymentSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *paymentSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping payment sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Payment sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Payment sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs one reconciliation pass: confirm submitted payments,
// then re-drive released purchases
func (s *paymentSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize*2),
		pond.WithContext(ctx),
	)

	submitted, err := s.store.ListPurchasesByStatus(ctx,
		[]domain.PurchaseStatus{domain.StatusSubmitted},
		startTime, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list submitted purchases: %w", err)
	}

	retryable, err := s.store.ListPurchasesByStatus(ctx,
		[]domain.PurchaseStatus{domain.StatusAwaitingFulfillment, domain.StatusMasterCreated},
		startTime.Add(-s.config.RetryDelay), s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list retryable purchases: %w", err)
	}

	var confirmedCount, fulfilledCount, failedCount atomic.Int32

	for _, purchase := range submitted {
		s.pool.Submit(func() {
			s.reconcilePayment(ctx, purchase, &confirmedCount, &fulfilledCount, &failedCount)
		})
	}
	for _, purchase := range retryable {
		s.pool.Submit(func() {
			s.redrive(ctx, purchase, &fulfilledCount, &failedCount)
		})
	}

	s.pool.StopAndWait()

	if len(submitted)+len(retryable) > 0 {
		logger.InfoCtx(ctx, "Payment sweep cycle completed",
			zap.Duration("duration", s.clock.Since(startTime)),
			zap.Int("submitted", len(submitted)),
			zap.Int("retryable", len(retryable)),
			zap.Int32("payments_confirmed", confirmedCount.Load()),
			zap.Int32("fulfilled", fulfilledCount.Load()),
			zap.Int32("failed", failedCount.Load()),
		)
	}

	return nil
}

// reconcilePayment checks one submitted purchase's payment transaction and,
// once settled, moves it to awaiting_fulfillment and runs fulfillment
func (s *paymentSweeper) reconcilePayment(ctx context.Context, purchase *schema.Purchase, confirmed, fulfilled, failed *atomic.Int32) {
	if purchase.PaymentTxSignature == nil || *purchase.PaymentTxSignature == "" {
		logger.WarnCtx(ctx, "Submitted purchase has no payment transaction",
			zap.String("purchase_id", purchase.ID.String()),
		)
		return
	}

	state, err := s.confirmer.ConfirmPayment(ctx, *purchase.PaymentTxSignature)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("purchase_id", purchase.ID.String()),
			zap.String("payment_tx", *purchase.PaymentTxSignature),
		)
		return
	}

	switch state {
	case PaymentPending:
		return
	case PaymentReverted:
		// The payment never settled; the reservation expiry will abandon the
		// purchase and release its slot, so only record the observation here
		logger.WarnCtx(ctx, "Payment transaction reverted",
			zap.String("purchase_id", purchase.ID.String()),
			zap.String("payment_tx", *purchase.PaymentTxSignature),
		)
		return
	}

	confirmed.Add(1)

	marked, err := s.store.MarkAwaitingFulfillment(ctx, purchase.ID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("purchase_id", purchase.ID.String()))
		return
	}
	if !marked {
		// The webhook path got there first
		return
	}

	s.fulfill(ctx, purchase, fulfilled, failed)
}

// redrive re-invokes fulfillment for a purchase released by an earlier attempt
func (s *paymentSweeper) redrive(ctx context.Context, purchase *schema.Purchase, fulfilled, failed *atomic.Int32) {
	s.fulfill(ctx, purchase, fulfilled, failed)
}

func (s *paymentSweeper) fulfill(ctx context.Context, purchase *schema.Purchase, fulfilled, failed *atomic.Int32) {
	result := s.orchestrator.Fulfill(ctx, purchase.ID)

	switch {
	case result.Success:
		fulfilled.Add(1)
	case result.Status == domain.StatusFailed:
		failed.Add(1)
	case result.Status == domain.StatusMinting:
		// Busy elsewhere; nothing to do
	default:
		logger.InfoCtx(ctx, "Fulfillment attempt deferred",
			zap.String("purchase_id", purchase.ID.String()),
			zap.String("status", string(result.Status)),
			zap.String("reason", result.Error),
		)
	}
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns false when interrupted.
func (s *paymentSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-s.stopChan:
		return false
	case <-ctx.Done():
		return false
	}
}
