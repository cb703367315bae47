package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
	"github.com/mural-hq/mint-fulfillment/internal/config"
	"github.com/mural-hq/mint-fulfillment/internal/fulfillment"
	"github.com/mural-hq/mint-fulfillment/internal/logger"
	"github.com/mural-hq/mint-fulfillment/internal/metadata"
	"github.com/mural-hq/mint-fulfillment/internal/payments"
	"github.com/mural-hq/mint-fulfillment/internal/providers/gateway"
	"github.com/mural-hq/mint-fulfillment/internal/providers/jetstream"
	"github.com/mural-hq/mint-fulfillment/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Payment Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(30 * time.Second)
	clock := adapter.NewClock()

	// Connect to the payment chain RPC
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer ethClient.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum RPC", zap.Uint64("confirmations", cfg.Ethereum.Confirmations))

	// Connect to NATS for purchase lifecycle events
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Initialize minting gateway client
	chainService := gateway.NewClient(httpClient, jsonAdapter, gateway.Config{
		BaseURL: cfg.Gateway.BaseURL,
		APIKey:  cfg.Gateway.APIKey,
	})

	// Initialize metadata resolver
	uploader := metadata.NewHTTPUploader(httpClient, jsonAdapter, metadata.StorageConfig{
		BaseURL: cfg.Storage.BaseURL,
		APIKey:  cfg.Storage.APIKey,
	})
	metadataResolver := metadata.NewBuilder(dataStore, httpClient, uploader, jsonAdapter)

	// Initialize fulfillment orchestrator with post-commit hooks
	orchestrator := fulfillment.NewOrchestrator(
		fulfillment.Config{ClaimStaleness: cfg.Fulfillment.ClaimStaleness},
		dataStore,
		chainService,
		metadataResolver,
		clock,
		fulfillment.NewNotificationHook(dataStore, jsonAdapter),
		fulfillment.NewSnapshotHook(dataStore, jsonAdapter),
		fulfillment.NewPublisherHook(publisher, clock),
	)

	// Initialize payment confirmer and sweeper
	confirmer := payments.NewEthConfirmer(ethClient, cfg.Ethereum.Confirmations)
	paymentSweeper := payments.NewPaymentSweeper(&payments.SweepConfig{
		BatchSize:      cfg.PaymentSweeper.BatchSize,
		WorkerPoolSize: cfg.PaymentSweeper.WorkerPoolSize,
		PollInterval:   cfg.PaymentSweeper.PollInterval,
		RetryDelay:     cfg.PaymentSweeper.RetryDelay,
	}, dataStore, confirmer, orchestrator, clock)

	logger.InfoCtx(ctx, "Initialized payment sweeper (continuous mode)",
		zap.Int("batch_size", cfg.PaymentSweeper.BatchSize),
		zap.Int("worker_pool_size", cfg.PaymentSweeper.WorkerPoolSize),
		zap.Duration("poll_interval", cfg.PaymentSweeper.PollInterval),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := paymentSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := paymentSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
