package config

import "time"

// BacktestConfig is the root configuration for a backtest run.
type BacktestConfig struct {
	Database  DatabaseConfig  `yaml:"database"`
	Cache     CacheConfig     `yaml:"cache"`
	Training  TrainingConfig  `yaml:"training"`
	Backtest  BacktestSpec    `yaml:"backtest"`
	Estimator EstimatorConfig `yaml:"estimator"`
	Bankroll  BankrollConfig  `yaml:"bankroll"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// DatabaseConfig holds the Postgres connection for historical game data.
type DatabaseConfig struct {
	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// CacheConfig holds the optional Redis spread cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	DB      int           `yaml:"db"`
	TTL     time.Duration `yaml:"ttl"`
}

// TrainingConfig selects the seasons the estimator fits on and how the
// training pipeline behaves.
type TrainingConfig struct {
	Seasons    []int `yaml:"seasons"`
	IncludeBPM bool  `yaml:"include_bpm"`
	Strict     bool  `yaml:"strict"`
	Parallel   bool  `yaml:"parallel"`
}

// BacktestSpec selects the held-out seasons and where reports land.
type BacktestSpec struct {
	Seasons   []int  `yaml:"seasons"`
	OutputDir string `yaml:"output_dir"`
}

// EstimatorConfig holds ridge regression settings.
type EstimatorConfig struct {
	Lambda float64 `yaml:"lambda"`
}

// BankrollConfig holds the staking plan for the bankroll simulation.
type BankrollConfig struct {
	StartingBankroll float64 `yaml:"starting_bankroll"`
	WagerFraction    float64 `yaml:"wager_fraction"`
	MinimumWager     float64 `yaml:"minimum_wager"`
	PayoutMultiplier float64 `yaml:"payout_multiplier"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}
