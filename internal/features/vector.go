package features

// Feature vector layout. The order and length are a stable contract consumed
// by the estimator; new features append, existing indices never move.
const (
	IdxWinLossPct = iota
	IdxMarginOfVictory
	IdxOffensiveRating
	IdxTurnoverPct
	IdxOffensiveRebounds
	IdxTrueShootingPct
	IdxDefensiveRating
	IdxDefensiveRebounds
	IdxOpponentTurnoverPct
	IdxPace
	IdxLast10Pct
	IdxAvgBPM
)

// Vector lengths with and without the optional roster-BPM term.
const (
	NumTeamFeatures    = 11
	NumFeaturesWithBPM = 12
)

// FeatureNames documents the vector layout, indexed by the Idx constants.
var FeatureNames = []string{
	"win_loss_pct",
	"margin_of_victory",
	"offensive_rating",
	"turnover_pct",
	"offensive_rebounds",
	"true_shooting_pct",
	"defensive_rating",
	"defensive_rebounds",
	"opponent_turnover_pct",
	"pace",
	"last10_pct",
	"avg_bpm",
}

// Diff builds the home-minus-away differential vector from two pre-game team
// snapshots. Both states must not yet include the game being predicted.
func Diff(home, away *TeamState) []float64 {
	h, a := home.Features(), away.Features()
	out := make([]float64, NumTeamFeatures)
	for i := range out {
		out[i] = h[i] - a[i]
	}
	return out
}

// DiffWithBPM appends the roster-average BPM differential to the team
// differential vector. The BPM inputs are the current game's rosters averaged
// over each player's pre-game running BPM, never a team-level cumulative stat.
func DiffWithBPM(home, away *TeamState, homeAvgBPM, awayAvgBPM float64) []float64 {
	out := append(Diff(home, away), homeAvgBPM-awayAvgBPM)
	return out
}

// RosterAvgBPM averages the pre-game BPM of the given players, skipping any
// player without a qualifying prior appearance. Returns 0.0 when no player
// has history yet (early season).
func RosterAvgBPM(players []*PlayerState) float64 {
	var sum float64
	var n int
	for _, p := range players {
		if p == nil || p.GamesPlayed == 0 {
			continue
		}
		sum += p.AvgBPM()
		n++
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}
