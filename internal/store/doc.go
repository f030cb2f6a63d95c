// Package store provides read access to the scraped NBA dataset.
//
// The predictor core never writes: schedules, team logs, and player logs are
// produced by the scraping pipeline and consumed here via a narrow Store
// interface. The Postgres implementation queries the scraper's schema
// directly; an optional Redis decorator caches market-spread lookups, which
// are the one query repeated across training and backtest passes.
package store
