package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"cakue/internal/cli"
	"cakue/internal/config"
	applog "cakue/internal/log"
)

func main() {
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg.LogLevel, cfg.IsProduction()).WithComponent(applog.ComponentRelay)

	if err := run(cfg, logger); err != nil {
		logger.Error("Relay stopped with error", applog.FieldError, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *applog.Logger) error {
	if !cfg.AMQPEnabled() {
		return errors.New("AMQP_URL is required to run the relay")
	}
	if cfg.RelayEmbedded {
		// Both processes may drain the outbox; MarkSyncEventProcessing
		// claims each event for one of them.
		logger.Warn("Relay is also embedded in the API process; set RELAY_EMBEDDED=false to run it only here")
	}

	logger.Info("Starting cakue-relay", applog.FieldOperation, applog.OpStartup)

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	repo := cli.InitStorage(ctx, logger, cfg)
	defer repo.Close()

	relay, client, err := cli.InitRelay(ctx, logger, cfg, repo)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := relay.Start(ctx); err != nil {
		return fmt.Errorf("start event relay: %w", err)
	}

	statsTicker := time.NewTicker(time.Minute)
	defer statsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			cli.GracefulShutdown(logger, 30*time.Second, relay.Stop)
			return nil
		case <-statsTicker.C:
			stats, err := repo.SyncEventStats(ctx)
			if err != nil {
				logger.Warn("Failed to read outbox stats", applog.FieldError, err)
				continue
			}
			logger.Info("Outbox stats",
				"pending", stats.Pending,
				"processing", stats.Processing,
				"failed", stats.Failed)
		}
	}
}
