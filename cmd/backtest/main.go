package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jchow97/BasketballPredictor/internal/backtest"
	"github.com/jchow97/BasketballPredictor/internal/bankroll"
	"github.com/jchow97/BasketballPredictor/internal/config"
	"github.com/jchow97/BasketballPredictor/internal/database"
	"github.com/jchow97/BasketballPredictor/internal/estimator"
	"github.com/jchow97/BasketballPredictor/internal/metrics"
	"github.com/jchow97/BasketballPredictor/internal/pipeline"
	"github.com/jchow97/BasketballPredictor/internal/store"
	"github.com/jchow97/BasketballPredictor/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/backtest.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting backtest",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"training_seasons", cfg.Training.Seasons,
		"backtest_seasons", cfg.Backtest.Seasons,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to database
	logger.Info("connecting to database",
		"host", cfg.Database.Postgres.Host,
		"port", cfg.Database.Postgres.Port,
		"database", cfg.Database.Postgres.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database.Postgres)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	collector := metrics.New()
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, collector.Handler())
		metricsServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler: mux,
		}
		go func() {
			logger.Info("starting metrics server", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
			if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	// Assemble the store, with an optional Redis cache in front of spread reads
	var dataStore store.Store = store.NewPostgres(pool)
	if cfg.Cache.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.Addr,
			DB:   cfg.Cache.DB,
		})
		defer client.Close()
		dataStore = store.NewSpreadCache(dataStore, client, cfg.Cache.TTL, logger).
			WithMetrics(collector)
		logger.Info("spread cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
	}

	builderOpts := []pipeline.BuilderOption{
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(collector),
	}
	if cfg.Training.IncludeBPM {
		builderOpts = append(builderOpts, pipeline.WithRosterBPM())
	}
	if cfg.Training.Strict {
		builderOpts = append(builderOpts, pipeline.WithStrict())
	}
	builder := pipeline.NewBuilder(dataStore, builderOpts...)

	ridge := estimator.NewRidge(cfg.Estimator.Lambda)

	simulator, err := bankroll.NewSimulator(bankroll.Config{
		StartingBankroll: decimal.NewFromFloat(cfg.Bankroll.StartingBankroll),
		WagerFraction:    decimal.NewFromFloat(cfg.Bankroll.WagerFraction),
		MinimumWager:     decimal.NewFromFloat(cfg.Bankroll.MinimumWager),
		PayoutMultiplier: decimal.NewFromFloat(cfg.Bankroll.PayoutMultiplier),
	})
	if err != nil {
		logger.Error("invalid bankroll config", "error", err)
		os.Exit(1)
	}

	runnerOpts := []backtest.RunnerOption{
		backtest.WithRunnerLogger(logger),
		backtest.WithRunnerMetrics(collector),
	}
	if cfg.Training.Parallel {
		runnerOpts = append(runnerOpts, backtest.WithParallelGeneration())
	}
	runner := backtest.NewRunner(dataStore, builder, ridge, simulator, cfg.Backtest.OutputDir, runnerOpts...)

	results, err := runner.Run(ctx, cfg.Training.Seasons, cfg.Backtest.Seasons)
	if err != nil {
		logger.Error("backtest failed", "error", err)
		os.Exit(1)
	}

	for _, res := range results {
		logger.Info("season result",
			"year", res.Year,
			"bets", res.Bets,
			"win_correctness", res.Summary.WinCorrectness(),
			"final_bankroll", res.Summary.FinalBankroll,
			"report", res.ReportPath,
		)
	}

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		metricsServer.Shutdown(shutdownCtx)
	}

	logger.Info("backtest finished")
}
