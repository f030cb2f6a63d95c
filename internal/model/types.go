package model

import "time"

// -----------------------------------------------------------------------------
// Persistence Types (read-only, produced by the scraping/persistence layer)
// -----------------------------------------------------------------------------

// Season identifies one NBA season. The 2021-22 season has Year 2022.
type Season struct {
	ID   int64
	Year int
}

// GameRecord is one scheduled game from a season's schedule.
type GameRecord struct {
	ID         int64     // Primary key
	SeasonID   int64     // Foreign key to Season
	GameCode   string    // basketball-reference code (e.g., "202210180BOS")
	StartTime  time.Time // Scheduled tip-off
	HomeTeamID int64     // Home team
	AwayTeamID int64     // Away team
	Spread     *float64  // Closing market line, home minus away; nil when no line recorded
}

// TeamGameLog is one team's aggregated box score for one game.
type TeamGameLog struct {
	GameID int64
	TeamID int64

	TotalPoints         float64
	FirstQuarterPoints  float64
	SecondQuarterPoints float64
	ThirdQuarterPoints  float64
	FourthQuarterPoints float64

	OffensiveRating   float64 // Points produced per 100 possessions
	DefensiveRating   float64 // Points allowed per 100 possessions
	TurnoverPct       float64
	OffensiveRebounds float64
	DefensiveRebounds float64
	TrueShootingPct   float64
	Pace              float64 // Possessions per 48 minutes
}

// Appearance is the unified did-a-player-play sentinel. The source data mixes
// NULL minutes with "Did Not Play" / "Did Not Dress" / "Not With Team" strings;
// the store normalizes all of them into this enum.
type Appearance int

const (
	AppearancePlayed Appearance = iota
	AppearanceDidNotPlay
	AppearanceDidNotDress
	AppearanceNotWithTeam
)

// String returns a human-readable appearance label.
func (a Appearance) String() string {
	switch a {
	case AppearancePlayed:
		return "Played"
	case AppearanceDidNotPlay:
		return "DidNotPlay"
	case AppearanceDidNotDress:
		return "DidNotDress"
	case AppearanceNotWithTeam:
		return "NotWithTeam"
	default:
		return "Unknown"
	}
}

// PlayerGameLog is one player's appearance record for one game.
type PlayerGameLog struct {
	GameID       int64
	TeamID       int64
	PlayerID     int64
	Appearance   Appearance
	BoxPlusMinus *float64 // nil when the player did not play or BPM was not recorded
}

// PlayerIdentity resolves a player id to display data.
type PlayerIdentity struct {
	Name       string
	UniqueCode string
}

// -----------------------------------------------------------------------------
// Core-Owned Types
// -----------------------------------------------------------------------------

// TrainingExample is one (feature vector, outcome) pair emitted by the
// training-set builder. Outcome is the game's actual home-minus-away point
// differential. StartTime is carried so backtests can replay bets in game
// order without re-querying the schedule.
type TrainingExample struct {
	Features  []float64
	Outcome   float64
	GameCode  string
	StartTime time.Time
}

// BetOutcome classifies a graded prediction against the market line.
type BetOutcome int

const (
	// NotGraded means no bet was placed: either no market line exists or the
	// model agreed with the line exactly and took no side.
	NotGraded BetOutcome = iota
	Correct
	Incorrect
	// Push means the actual result landed exactly on the line.
	Push
)

// String returns the outcome label used in reports. The labels are part of
// the CSV report contract.
func (o BetOutcome) String() string {
	switch o {
	case Correct:
		return "Correct"
	case Incorrect:
		return "Incorrect"
	case Push:
		return "Push"
	case NotGraded:
		return "NotGraded"
	default:
		return "Unknown"
	}
}

// BetRecord is one graded prediction, ready for bankroll simulation.
type BetRecord struct {
	GameCode  string
	GameDate  time.Time
	Predicted float64  // Model's home-minus-away estimate
	Actual    float64  // Actual home-minus-away differential
	Spread    *float64 // Market line; nil when missing
	Outcome   BetOutcome
}
