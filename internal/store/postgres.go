package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jchow97/BasketballPredictor/internal/model"
)

// Postgres reads the scraper's schema via a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres wraps an existing pool. The caller owns the pool's lifecycle.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// SeasonByYear resolves a season row by its ending year.
func (s *Postgres) SeasonByYear(ctx context.Context, year int) (model.Season, error) {
	const q = `SELECT id, year FROM season WHERE year = $1`

	var season model.Season
	var yearStr string
	if err := s.pool.QueryRow(ctx, q, fmt.Sprintf("%d", year)).Scan(&season.ID, &yearStr); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Season{}, fmt.Errorf("season %d not found", year)
		}
		return model.Season{}, fmt.Errorf("query season %d: %w", year, err)
	}
	season.Year = year
	return season, nil
}

// GamesForSeason returns the season's schedule ordered by start time. The
// ordering happens in SQL; the pipeline re-verifies it before trusting it.
func (s *Postgres) GamesForSeason(ctx context.Context, seasonID int64) ([]model.GameRecord, error) {
	const q = `
		SELECT id, season_id, game_code, start_datetime, home_team_id, away_team_id, spread
		FROM game
		WHERE season_id = $1
		ORDER BY start_datetime ASC, id ASC`

	rows, err := s.pool.Query(ctx, q, seasonID)
	if err != nil {
		return nil, fmt.Errorf("query schedule for season %d: %w", seasonID, err)
	}
	defer rows.Close()

	var games []model.GameRecord
	for rows.Next() {
		var g model.GameRecord
		if err := rows.Scan(&g.ID, &g.SeasonID, &g.GameCode, &g.StartTime,
			&g.HomeTeamID, &g.AwayTeamID, &g.Spread); err != nil {
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule rows: %w", err)
	}
	return games, nil
}

// TeamLog returns one team's box score for one game. Any NULL among the stats
// the feature pipeline consumes yields a *MissingFieldError.
func (s *Postgres) TeamLog(ctx context.Context, gameID, teamID int64) (model.TeamGameLog, error) {
	const q = `
		SELECT total_points,
		       first_quarter_points, second_quarter_points,
		       third_quarter_points, fourth_quarter_points,
		       offensive_rating, defensive_rating, turnover_pct,
		       offensive_rebounds, defensive_rebounds,
		       true_shooting_pct, pace
		FROM game_team_log
		WHERE game_id = $1 AND team_id = $2`

	var (
		totalPoints, q1, q2, q3, q4 *float64
		offRtg, defRtg, tovPct      *float64
		offReb, defReb, tsPct, pace *float64
	)
	err := s.pool.QueryRow(ctx, q, gameID, teamID).Scan(
		&totalPoints, &q1, &q2, &q3, &q4,
		&offRtg, &defRtg, &tovPct,
		&offReb, &defReb, &tsPct, &pace,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TeamGameLog{}, fmt.Errorf("team log for game %d team %d not found", gameID, teamID)
		}
		return model.TeamGameLog{}, fmt.Errorf("query team log: %w", err)
	}

	log := model.TeamGameLog{GameID: gameID, TeamID: teamID}
	fields := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"total_points", totalPoints, &log.TotalPoints},
		{"first_quarter_points", q1, &log.FirstQuarterPoints},
		{"second_quarter_points", q2, &log.SecondQuarterPoints},
		{"third_quarter_points", q3, &log.ThirdQuarterPoints},
		{"fourth_quarter_points", q4, &log.FourthQuarterPoints},
		{"offensive_rating", offRtg, &log.OffensiveRating},
		{"defensive_rating", defRtg, &log.DefensiveRating},
		{"turnover_pct", tovPct, &log.TurnoverPct},
		{"offensive_rebounds", offReb, &log.OffensiveRebounds},
		{"defensive_rebounds", defReb, &log.DefensiveRebounds},
		{"true_shooting_pct", tsPct, &log.TrueShootingPct},
		{"pace", pace, &log.Pace},
	}
	for _, f := range fields {
		if f.src == nil {
			return model.TeamGameLog{}, &MissingFieldError{GameID: gameID, TeamID: teamID, Field: f.name}
		}
		*f.dst = *f.src
	}
	return log, nil
}

// PlayerLogs returns every appearance row for one team in one game, with the
// raw minutes sentinel normalized into the Appearance enum.
func (s *Postgres) PlayerLogs(ctx context.Context, gameID, teamID int64) ([]model.PlayerGameLog, error) {
	const q = `
		SELECT player_id, minutes_played, box_plus_minus
		FROM game_player_log
		WHERE game_id = $1 AND team_id = $2`

	rows, err := s.pool.Query(ctx, q, gameID, teamID)
	if err != nil {
		return nil, fmt.Errorf("query player logs for game %d team %d: %w", gameID, teamID, err)
	}
	defer rows.Close()

	var logs []model.PlayerGameLog
	for rows.Next() {
		var playerID int64
		var minutes *string
		var bpm *float64
		if err := rows.Scan(&playerID, &minutes, &bpm); err != nil {
			return nil, fmt.Errorf("scan player log row: %w", err)
		}
		logs = append(logs, model.PlayerGameLog{
			GameID:       gameID,
			TeamID:       teamID,
			PlayerID:     playerID,
			Appearance:   parseAppearance(minutes),
			BoxPlusMinus: bpm,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate player log rows: %w", err)
	}
	return logs, nil
}

// MarketSpread returns the closing line for a game, nil when the column is
// NULL. An unknown game code is an error; a recorded game without a line is
// not.
func (s *Postgres) MarketSpread(ctx context.Context, gameCode string) (*float64, error) {
	const q = `SELECT spread FROM game WHERE game_code = $1`

	var spread *float64
	if err := s.pool.QueryRow(ctx, q, gameCode).Scan(&spread); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("game %q not found", gameCode)
		}
		return nil, fmt.Errorf("query spread for %q: %w", gameCode, err)
	}
	return spread, nil
}

// PlayerIdentity resolves a player id to display data.
func (s *Postgres) PlayerIdentity(ctx context.Context, playerID int64) (model.PlayerIdentity, error) {
	const q = `SELECT friendly_name, unique_code FROM player WHERE id = $1`

	var id model.PlayerIdentity
	if err := s.pool.QueryRow(ctx, q, playerID).Scan(&id.Name, &id.UniqueCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PlayerIdentity{}, fmt.Errorf("player %d not found", playerID)
		}
		return model.PlayerIdentity{}, fmt.Errorf("query player %d: %w", playerID, err)
	}
	return id, nil
}

// parseAppearance unifies the source data's inconsistent did-not-play
// sentinels. The scraper stores NULL minutes for some absences and literal
// "Did Not Play" / "Did Not Dress" / "Not With Team" strings for others.
func parseAppearance(minutes *string) model.Appearance {
	if minutes == nil {
		return model.AppearanceDidNotPlay
	}
	switch {
	case strings.Contains(*minutes, "Did Not Dress"):
		return model.AppearanceDidNotDress
	case strings.Contains(*minutes, "Did Not"):
		return model.AppearanceDidNotPlay
	case strings.Contains(*minutes, "Not With"):
		return model.AppearanceNotWithTeam
	default:
		return model.AppearancePlayed
	}
}
