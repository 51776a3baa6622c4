package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"cakue/internal/amqp"
	"cakue/internal/auth"
	"cakue/internal/cache"
	"cakue/internal/cli"
	"cakue/internal/config"
	"cakue/internal/core"
	apphttp "cakue/internal/http"
	applog "cakue/internal/log"
	"cakue/internal/report"
	"cakue/internal/services"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig()
	logger := cli.SetupLogger(cfg.LogLevel, cfg.IsProduction())

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

// run owns every resource it opens and releases them before returning.
func run(cfg *config.Config, logger *applog.Logger) error {
	logger.Info("Starting cakue",
		applog.FieldOperation, applog.OpStartup,
		"environment", cfg.Environment,
		"port", cfg.Port,
		"amqp_enabled", cfg.AMQPEnabled())

	ctx, cancel := cli.SignalContext(logger)
	defer cancel()

	repo := cli.InitStorage(ctx, logger.WithComponent(applog.ComponentStorage), cfg)
	defer repo.Close()

	tokens, err := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("init token issuer: %w", err)
	}

	summaries := cache.NewLRUCache[core.Summary](cfg.ReportCacheSize, cfg.ReportCacheTTL)
	cacheManager := cache.NewManager()
	cacheManager.Register(summaries)
	cacheManager.StartCleanup(time.Minute)
	defer cacheManager.Stop()

	reports := services.NewReportService(repo, summaries)
	ingest := services.NewTransactionService(repo, reports)

	// Outbox entries are only written when something drains them.
	var events services.EventQueue
	if cfg.AMQPEnabled() {
		events = repo
	}

	srv := apphttp.NewServer(apphttp.Config{
		Addr:                 ":" + cfg.Port,
		AllowedOrigins:       cfg.AllowedOrigins,
		RateLimitWindow:      cfg.RateLimitWindow,
		RateLimitMaxRequests: cfg.RateLimitMaxRequests,
		LoginRateLimitMax:    cfg.LoginRateLimitMax,
	}, apphttp.Deps{
		Auth:         services.NewAuthService(repo, tokens),
		Ledger:       services.NewLedgerService(repo),
		Transactions: ingest,
		Sync:         services.NewSyncService(ingest, repo, events, cfg.SyncMaxBatch),
		Reports:      reports,
		Renderer:     report.NewRenderer(cfg.ReportLocale),
		Tokens:       tokens,
		DB:           repo,
		Outbox:       repo,
	}, logger)

	var (
		relay      *services.EventRelay
		amqpClient *amqp.Client
	)
	if cfg.AMQPEnabled() && cfg.RelayEmbedded {
		relay, amqpClient, err = cli.InitRelay(ctx, logger.WithComponent(applog.ComponentRelay), cfg, repo)
		if err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if relay != nil {
		g.Go(func() error {
			return relay.Start(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		var relayStop, amqpClose func(context.Context) error
		if relay != nil {
			relayStop = relay.Stop
			amqpClose = func(context.Context) error { return amqpClient.Close() }
		}
		cli.GracefulShutdown(logger, shutdownTimeout,
			srv.Shutdown,
			relayStop,
			amqpClose,
		)
		return nil
	})

	return g.Wait()
}
