package store

import (
	"context"
	"fmt"

	"github.com/jchow97/BasketballPredictor/internal/model"
)

// Store is the persistence surface the predictor core consumes. All reads
// block on the underlying database; cancellation comes from the caller's
// context. Implementations do not retry.
type Store interface {
	// SeasonByYear resolves a season by its ending year (2022 = 2021-22).
	SeasonByYear(ctx context.Context, year int) (model.Season, error)

	// GamesForSeason returns the season's schedule ordered by start time
	// ascending. Ordering is part of the contract: the training pipeline's
	// no-lookahead guarantee depends on it.
	GamesForSeason(ctx context.Context, seasonID int64) ([]model.GameRecord, error)

	// TeamLog returns one team's aggregated box score for one game. A NULL
	// expected stat yields a *MissingFieldError.
	TeamLog(ctx context.Context, gameID, teamID int64) (model.TeamGameLog, error)

	// PlayerLogs returns every player appearance row for one team in one game.
	PlayerLogs(ctx context.Context, gameID, teamID int64) ([]model.PlayerGameLog, error)

	// MarketSpread returns the closing line for a game, nil when no line was
	// ever recorded. A missing line is not an error.
	MarketSpread(ctx context.Context, gameCode string) (*float64, error)

	// PlayerIdentity resolves a player id to name and unique code.
	PlayerIdentity(ctx context.Context, playerID int64) (model.PlayerIdentity, error)
}

// MissingFieldError reports a NULL where the feature pipeline expects a stat.
// The pipeline skips the affected game rather than defaulting the value to
// zero, which would silently corrupt every later running average.
type MissingFieldError struct {
	GameID int64
	TeamID int64
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("game %d team %d: box score field %q is missing", e.GameID, e.TeamID, e.Field)
}
