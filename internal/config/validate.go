package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *BacktestConfig) Validate() error {
	if err := c.Database.Postgres.validate("database.postgres"); err != nil {
		return err
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		return errors.New("cache.addr is required when cache.enabled is true")
	}

	if len(c.Training.Seasons) == 0 {
		return errors.New("training.seasons must name at least one season")
	}
	if len(c.Backtest.Seasons) == 0 {
		return errors.New("backtest.seasons must name at least one season")
	}
	for _, year := range c.Backtest.Seasons {
		for _, trained := range c.Training.Seasons {
			if year == trained {
				return fmt.Errorf("season %d appears in both training and backtest", year)
			}
		}
	}

	if c.Estimator.Lambda < 0 {
		return errors.New("estimator.lambda must not be negative")
	}

	if c.Bankroll.StartingBankroll <= 0 {
		return errors.New("bankroll.starting_bankroll must be positive")
	}
	if c.Bankroll.WagerFraction <= 0 || c.Bankroll.WagerFraction > 1 {
		return errors.New("bankroll.wager_fraction must be in (0, 1]")
	}
	if c.Bankroll.MinimumWager < 0 {
		return errors.New("bankroll.minimum_wager must not be negative")
	}
	if c.Bankroll.PayoutMultiplier <= 1 {
		return errors.New("bankroll.payout_multiplier must exceed 1")
	}

	if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port must be between 1 and 65535, got %d", c.Metrics.Port)
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
