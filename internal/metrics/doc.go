// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - Pipeline throughput: games processed, examples emitted and skipped
//   - Cache effectiveness: spread lookup hits and misses
//   - Backtest results: graded bet counts by outcome and the running bankroll
package metrics
