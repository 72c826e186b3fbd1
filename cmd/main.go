package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"traffic-sender/internal/adapter/adnetwork"
	"traffic-sender/internal/adapter/cache"
	"traffic-sender/internal/adapter/http"
	"traffic-sender/internal/adapter/postgres"
	"traffic-sender/internal/adapter/usecase"
	"traffic-sender/internal/config"
	"traffic-sender/internal/db"
)

// main loads configuration, optionally migrates and seeds the database,
// wires the repositories, the ad network client and the automation engine,
// then serves HTTP until SIGINT or SIGTERM. Shutdown stops the scheduler and
// the budget aggregator before the server drains.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout, cfg.Env)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	campaigns := postgres.NewCampaignRepository(pool, logger)
	urls := postgres.NewURLRepository(pool, logger)
	settings := postgres.NewSettingsRepository(pool)
	errLog := postgres.NewErrorLogRepository(pool)

	network := adnetwork.NewClient(cfg.AdNetwork, errLog, logger)
	inventory := cache.NewClickLimitCache(urls, cfg.Automation.CacheTTL, logger)
	locks := usecase.NewCampaignLocker()

	automation := usecase.NewAutomationUseCase(campaigns, settings, network, inventory, errLog, locks, logger, cfg.Automation.EvaluationTimeout)
	aggregator := usecase.NewBudgetAggregator(campaigns, settings, network, errLog, locks, logger, cfg.Automation.EvaluationTimeout)
	if err = aggregator.Start(ctx); err != nil {
		logger.Error("budget aggregator start error", slog.Any("error", err))
		return
	}
	defer aggregator.Stop()

	scheduler := usecase.NewScheduler(campaigns, automation, cfg.Automation.TickInterval, cfg.Automation.Concurrency, logger)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		scheduler.Run(ctx)
	}()

	handler := httpadapter.NewHandler(httpadapter.Services{
		Automation: automation,
		Clicks:     usecase.NewClickUseCase(inventory, urls, logger),
		URLs:       usecase.NewURLUseCase(campaigns, urls, inventory, aggregator, logger),
		Settings:   usecase.NewSettingsUseCase(settings),
		Errors:     usecase.NewErrorLogUseCase(errLog),
	}, logger, cfg.HTTP.RequestTimeout)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	wg.Wait()
}
