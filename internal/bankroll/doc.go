// Package bankroll replays a season of graded bets against a flat-fraction
// staking plan and produces the per-bet equity curve plus summary statistics.
// All money math runs on decimals so day boundaries and report rows never
// carry float rounding noise.
package bankroll
