package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stellar-payout/config"
	"stellar-payout/internal/adapter/horizon"
	httpHandler "stellar-payout/internal/adapter/http/handler"
	fileStorage "stellar-payout/internal/adapter/storage/file"
	redisStorage "stellar-payout/internal/adapter/storage/redis"
	"stellar-payout/internal/core/ports"
	"stellar-payout/internal/service"
	"stellar-payout/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("horizon", cfg.Horizon.URL).
		Msg("Starting Stellar payout service")

	ctx := context.Background()

	// Ledger adapter
	httpClient := &http.Client{Timeout: cfg.Horizon.Timeout}
	ledger := horizon.NewClient(cfg.Horizon, httpClient, log)
	keys := horizon.NewKeypairSource()

	// History store
	historyStore, err := fileStorage.NewHistoryStore(cfg.History, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize history store")
	}

	// Health checkers
	healthCheckers := []ports.HealthChecker{
		horizon.NewHealthCheck(cfg.Horizon.URL, httpClient),
	}

	// Optional Redis-backed rate limiting
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Core services
	provisioner := service.NewProvisionService(keys, log)
	funder := service.NewFundingService(ledger, log)
	trust := service.NewTrustlineService(ledger, cfg.Distribution.SettlementWait, log)
	dispatcher := service.NewDispatchService(ledger, trust, cfg.Asset.Code, log)
	balances := service.NewBalanceService(ledger, cfg.Asset.Code, log)
	distributionSvc := service.NewDistributionService(provisioner, funder, dispatcher, balances, historyStore, log)
	assetSvc := service.NewAssetService(ledger, keys, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		DistributionSvc: distributionSvc,
		AssetSvc:        assetSvc,
		HistoryStore:    historyStore,
		Distribution:    cfg.Distribution,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  healthCheckers,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
