// Package backtest orchestrates a full run: fit the estimator on training
// seasons, replay held-out seasons game by game, grade each prediction against
// the closing market line, and feed the graded bets through the bankroll
// simulator. One CSV report is written per backtested season.
package backtest
