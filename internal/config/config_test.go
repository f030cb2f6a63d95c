package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
database:
  postgres:
    host: localhost
    port: 5432
    name: nba
    user: testuser
    password: testpass
training:
  seasons: [2017, 2018]
  include_bpm: true
backtest:
  seasons: [2019]
  output_dir: /tmp/reports
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Postgres.Host != "localhost" {
		t.Errorf("Database.Postgres.Host = %q, want %q", cfg.Database.Postgres.Host, "localhost")
	}
	if len(cfg.Training.Seasons) != 2 || cfg.Training.Seasons[0] != 2017 {
		t.Errorf("Training.Seasons = %v, want [2017 2018]", cfg.Training.Seasons)
	}
	if !cfg.Training.IncludeBPM {
		t.Error("Training.IncludeBPM = false, want true")
	}
	if cfg.Backtest.OutputDir != "/tmp/reports" {
		t.Errorf("Backtest.OutputDir = %q, want %q", cfg.Backtest.OutputDir, "/tmp/reports")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "secret123")

	yaml := `
database:
  postgres:
    host: localhost
    name: nba
    user: testuser
    password: ${TEST_DB_PASSWORD}
training:
  seasons: [2018]
backtest:
  seasons: [2019]
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Postgres.Password != "secret123" {
		t.Errorf("Database.Postgres.Password = %q, want %q", cfg.Database.Postgres.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
database:
  postgres:
    host: localhost
    name: nba
    user: testuser
    password: testpass
training:
  seasons: [2018]
backtest:
  seasons: [2019]
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.Database.Postgres.Port != DefaultDBPort {
		t.Errorf("Database.Postgres.Port = %d, want default %d", cfg.Database.Postgres.Port, DefaultDBPort)
	}
	if cfg.Database.Postgres.MaxConns != DefaultMaxConns {
		t.Errorf("Database.Postgres.MaxConns = %d, want default %d", cfg.Database.Postgres.MaxConns, DefaultMaxConns)
	}
	if cfg.Cache.TTL != DefaultCacheTTL {
		t.Errorf("Cache.TTL = %v, want default %v", cfg.Cache.TTL, DefaultCacheTTL)
	}
	if cfg.Estimator.Lambda != DefaultLambda {
		t.Errorf("Estimator.Lambda = %v, want default %v", cfg.Estimator.Lambda, DefaultLambda)
	}
	if cfg.Bankroll.StartingBankroll != DefaultStartingBankroll {
		t.Errorf("Bankroll.StartingBankroll = %v, want default %v", cfg.Bankroll.StartingBankroll, DefaultStartingBankroll)
	}
	if cfg.Bankroll.PayoutMultiplier != DefaultPayoutMultiplier {
		t.Errorf("Bankroll.PayoutMultiplier = %v, want default %v", cfg.Bankroll.PayoutMultiplier, DefaultPayoutMultiplier)
	}
	if cfg.Metrics.Port != DefaultMetricsPort {
		t.Errorf("Metrics.Port = %d, want default %d", cfg.Metrics.Port, DefaultMetricsPort)
	}
}

func validBase() BacktestConfig {
	return BacktestConfig{
		Database: DatabaseConfig{
			Postgres: DBConfig{Host: "localhost", Name: "nba", User: "user", Password: "pass", MaxConns: 10, MinConns: 2},
		},
		Cache:    CacheConfig{TTL: 24 * time.Hour},
		Training: TrainingConfig{Seasons: []int{2017, 2018}},
		Backtest: BacktestSpec{Seasons: []int{2019}, OutputDir: "reports"},
		Estimator: EstimatorConfig{
			Lambda: 1.0,
		},
		Bankroll: BankrollConfig{
			StartingBankroll: 1000,
			WagerFraction:    0.05,
			MinimumWager:     5,
			PayoutMultiplier: 1.90,
		},
		Metrics: MetricsConfig{Port: 9090, Path: "/metrics"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BacktestConfig)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(c *BacktestConfig) {},
			wantErr: "",
		},
		{
			name:    "missing postgres host",
			mutate:  func(c *BacktestConfig) { c.Database.Postgres.Host = "" },
			wantErr: "database.postgres.host is required",
		},
		{
			name:    "missing postgres password",
			mutate:  func(c *BacktestConfig) { c.Database.Postgres.Password = "" },
			wantErr: "database.postgres.password is required",
		},
		{
			name: "min_conns exceeds max_conns",
			mutate: func(c *BacktestConfig) {
				c.Database.Postgres.MaxConns = 5
				c.Database.Postgres.MinConns = 10
			},
			wantErr: "database.postgres.min_conns (10) cannot exceed max_conns (5)",
		},
		{
			name: "cache enabled without addr",
			mutate: func(c *BacktestConfig) {
				c.Cache.Enabled = true
			},
			wantErr: "cache.addr is required when cache.enabled is true",
		},
		{
			name:    "no training seasons",
			mutate:  func(c *BacktestConfig) { c.Training.Seasons = nil },
			wantErr: "training.seasons must name at least one season",
		},
		{
			name:    "no backtest seasons",
			mutate:  func(c *BacktestConfig) { c.Backtest.Seasons = nil },
			wantErr: "backtest.seasons must name at least one season",
		},
		{
			name:    "season in both training and backtest",
			mutate:  func(c *BacktestConfig) { c.Backtest.Seasons = []int{2018} },
			wantErr: "season 2018 appears in both training and backtest",
		},
		{
			name:    "negative lambda",
			mutate:  func(c *BacktestConfig) { c.Estimator.Lambda = -0.5 },
			wantErr: "estimator.lambda must not be negative",
		},
		{
			name:    "payout multiplier too low",
			mutate:  func(c *BacktestConfig) { c.Bankroll.PayoutMultiplier = 1.0 },
			wantErr: "bankroll.payout_multiplier must exceed 1",
		},
		{
			name:    "bad metrics port",
			mutate:  func(c *BacktestConfig) { c.Metrics.Port = 700000 },
			wantErr: "metrics.port must be between 1 and 65535, got 700000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
