// Package database provides connection pool management for PostgreSQL.
//
// The predictor reads the historical dataset produced by the scraping
// pipeline: seasons, games, team box scores and player box scores all live
// in one Postgres database.
package database
