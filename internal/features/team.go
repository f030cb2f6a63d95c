package features

import "github.com/jchow97/BasketballPredictor/internal/model"

// TeamKey identifies a team's running state within one season. Team history
// never carries across seasons, so the season id is part of the key.
type TeamKey struct {
	TeamID   int64
	SeasonID int64
}

// last10Capacity bounds the recent-form window.
const last10Capacity = 10

// winRing is a fixed-capacity ring of win/loss outcomes. Once full, pushing
// evicts the oldest entry.
type winRing struct {
	buf  [last10Capacity]bool
	head int
	n    int
}

func (r *winRing) push(win bool) {
	if r.n == last10Capacity {
		r.buf[r.head] = win
		r.head = (r.head + 1) % last10Capacity
		return
	}
	r.buf[(r.head+r.n)%last10Capacity] = win
	r.n++
}

func (r *winRing) len() int { return r.n }

func (r *winRing) wins() int {
	wins := 0
	for i := 0; i < r.n; i++ {
		if r.buf[(r.head+i)%last10Capacity] {
			wins++
		}
	}
	return wins
}

// outcomes returns the window contents oldest first.
func (r *winRing) outcomes() []bool {
	out := make([]bool, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(r.head+i)%last10Capacity]
	}
	return out
}

// TeamState accumulates one team's running statistics over a season.
// Per-game averages are derived from cumulative sums divided by games played,
// which may differ slightly from basketball-reference's own season stats.
type TeamState struct {
	Key TeamKey

	Games  int
	Wins   int
	Losses int

	movSum       float64
	offRtgSum    float64
	tovPctSum    float64
	offRebSum    float64
	tsPctSum     float64
	defRtgSum    float64
	defRebSum    float64
	oppTovPctSum float64
	paceSum      float64

	last10 winRing
}

// NewTeamState creates an empty state. All averages read as zero until the
// first update.
func NewTeamState(key TeamKey) *TeamState {
	return &TeamState{Key: key}
}

// Update folds one completed game into the running state. own and opp are the
// team's and its opponent's logs for the same game. Must be called only after
// any feature snapshot for that game has been taken.
func (s *TeamState) Update(own, opp model.TeamGameLog) {
	s.Games++

	win := own.TotalPoints > opp.TotalPoints
	if win {
		s.Wins++
	} else {
		s.Losses++
	}
	s.last10.push(win)

	s.movSum += own.TotalPoints - opp.TotalPoints
	s.offRtgSum += own.OffensiveRating
	s.tovPctSum += own.TurnoverPct
	s.offRebSum += own.OffensiveRebounds
	s.tsPctSum += own.TrueShootingPct
	s.defRtgSum += own.DefensiveRating
	s.defRebSum += own.DefensiveRebounds
	s.oppTovPctSum += opp.TurnoverPct
	s.paceSum += own.Pace
}

// WinLossPct returns the season win percentage with the boundary rules:
// 0 wins is 0.0, 0 losses with at least one win is 1.0.
func (s *TeamState) WinLossPct() float64 {
	switch {
	case s.Wins == 0:
		return 0.0
	case s.Losses == 0:
		return 1.0
	default:
		return float64(s.Wins) / float64(s.Wins+s.Losses)
	}
}

// Last10Pct returns the win percentage over the bounded recent-form window,
// 0.0 when the window is empty or winless.
func (s *TeamState) Last10Pct() float64 {
	wins := s.last10.wins()
	if wins == 0 {
		return 0.0
	}
	return float64(wins) / float64(s.last10.len())
}

func (s *TeamState) avg(sum float64) float64 {
	if s.Games == 0 {
		return 0.0
	}
	return sum / float64(s.Games)
}

// MarginOfVictory returns the per-game average point differential.
func (s *TeamState) MarginOfVictory() float64 { return s.avg(s.movSum) }

// OffensiveRating returns the per-game average offensive rating.
func (s *TeamState) OffensiveRating() float64 { return s.avg(s.offRtgSum) }

// TurnoverPct returns the per-game average turnover percentage.
func (s *TeamState) TurnoverPct() float64 { return s.avg(s.tovPctSum) }

// OffensiveRebounds returns the per-game average offensive rebounds.
func (s *TeamState) OffensiveRebounds() float64 { return s.avg(s.offRebSum) }

// TrueShootingPct returns the per-game average true shooting percentage.
func (s *TeamState) TrueShootingPct() float64 { return s.avg(s.tsPctSum) }

// DefensiveRating returns the per-game average defensive rating.
func (s *TeamState) DefensiveRating() float64 { return s.avg(s.defRtgSum) }

// DefensiveRebounds returns the per-game average defensive rebounds.
func (s *TeamState) DefensiveRebounds() float64 { return s.avg(s.defRebSum) }

// OpponentTurnoverPct returns the per-game average of opposing turnover
// percentages, a proxy for forced turnovers.
func (s *TeamState) OpponentTurnoverPct() float64 { return s.avg(s.oppTovPctSum) }

// Pace returns the per-game average pace.
func (s *TeamState) Pace() float64 { return s.avg(s.paceSum) }

// Features returns the team's statistics snapshot in the fixed vector order.
// The result is a fresh slice; later updates do not mutate it.
func (s *TeamState) Features() []float64 {
	return []float64{
		s.WinLossPct(),
		s.MarginOfVictory(),
		s.OffensiveRating(),
		s.TurnoverPct(),
		s.OffensiveRebounds(),
		s.TrueShootingPct(),
		s.DefensiveRating(),
		s.DefensiveRebounds(),
		s.OpponentTurnoverPct(),
		s.Pace(),
		s.Last10Pct(),
	}
}
