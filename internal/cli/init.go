// Package cli provides the process bootstrap shared by the cakue binaries.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"cakue/internal/amqp"
	"cakue/internal/config"
	applog "cakue/internal/log"
	"cakue/internal/services"
	"cakue/internal/storage"
)

// SetupLogger initializes structured logging at the given level and installs
// it as the default logger.
func SetupLogger(level string, json bool) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(level),
		Component: applog.ComponentApp,
		JSON:      json,
	})
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStorage opens the database described by cfg and applies migrations.
// Returns the repository or exits the process on failure.
func InitStorage(ctx context.Context, logger *applog.Logger, cfg *config.Config) *storage.SQLiteRepository {
	repo, err := storage.Open(ctx, storage.Options{
		Path:            cfg.SQLiteDBPath,
		BusyTimeout:     cfg.DBBusyTimeout,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnectAttempts: cfg.DBConnectAttempts,
	})
	if err != nil {
		logger.Error("Failed to initialize database", applog.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	logger.Info("Database ready", "path", cfg.SQLiteDBPath)
	return repo
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(logger *applog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// GracefulShutdown runs each cleanup step with a shared deadline. Steps run
// in order and a failing step does not stop the remaining ones.
func GracefulShutdown(logger *applog.Logger, timeout time.Duration, steps ...func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, step := range steps {
		if step == nil {
			continue
		}
		if err := step(ctx); err != nil {
			logger.Error("Shutdown step failed", applog.FieldOperation, applog.OpShutdown, applog.FieldError, err)
		}
	}

	if ctx.Err() != nil {
		logger.Warn("Shutdown timeout reached")
		return
	}
	logger.Info("Shutdown complete")
}

// amqpConnectAttempts bounds the broker dial retries at startup.
const amqpConnectAttempts = 5

// InitRelay connects to the broker and builds the outbox relay publishing
// through it. The caller owns the returned client.
func InitRelay(ctx context.Context, logger *applog.Logger, cfg *config.Config, store services.OutboxStore) (*services.EventRelay, *amqp.Client, error) {
	client, err := amqp.NewClient(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, amqpConnectAttempts)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		return nil, nil, fmt.Errorf("init relay: %w", err)
	}

	relayConfig := services.DefaultEventRelayConfig()
	relayConfig.PollInterval = cfg.RelayPollInterval
	relayConfig.BatchSize = cfg.RelayBatchSize
	relayConfig.MaxRetries = cfg.RelayMaxRetries

	logger.Info("AMQP publisher connected", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	return services.NewEventRelay(store, client, relayConfig), client, nil
}
