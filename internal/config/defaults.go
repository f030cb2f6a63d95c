package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultDBPort           = 5432
	DefaultDBSSLMode        = "prefer"
	DefaultMaxConns         = 10
	DefaultMinConns         = 2
	DefaultCacheTTL         = 24 * time.Hour
	DefaultOutputDir        = "reports"
	DefaultLambda           = 1.0
	DefaultStartingBankroll = 1000.0
	DefaultWagerFraction    = 0.05
	DefaultMinimumWager     = 5.0
	DefaultPayoutMultiplier = 1.90
	DefaultMetricsPort      = 9090
	DefaultMetricsPath      = "/metrics"
)

func (c *BacktestConfig) applyDefaults() {
	// Database defaults
	applyDBDefaults(&c.Database.Postgres)

	// Cache defaults
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}

	// Backtest defaults
	if c.Backtest.OutputDir == "" {
		c.Backtest.OutputDir = DefaultOutputDir
	}

	// Estimator defaults
	if c.Estimator.Lambda == 0 {
		c.Estimator.Lambda = DefaultLambda
	}

	// Bankroll defaults
	if c.Bankroll.StartingBankroll == 0 {
		c.Bankroll.StartingBankroll = DefaultStartingBankroll
	}
	if c.Bankroll.WagerFraction == 0 {
		c.Bankroll.WagerFraction = DefaultWagerFraction
	}
	if c.Bankroll.MinimumWager == 0 {
		c.Bankroll.MinimumWager = DefaultMinimumWager
	}
	if c.Bankroll.PayoutMultiplier == 0 {
		c.Bankroll.PayoutMultiplier = DefaultPayoutMultiplier
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
