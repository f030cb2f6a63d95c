package features

import "github.com/jchow97/BasketballPredictor/internal/model"

// PlayerState accumulates a player's running box plus/minus average. It is
// scoped to a single generation run and not persisted.
type PlayerState struct {
	PlayerID    int64
	GamesPlayed int
	bpmSum      float64
}

// NewPlayerState creates an empty state for a player.
func NewPlayerState(playerID int64) *PlayerState {
	return &PlayerState{PlayerID: playerID}
}

// Update folds one appearance into the running average. Anything other than
// an actual appearance with a recorded BPM (did not play, did not dress, not
// with team, or a played game missing BPM) is a no-op.
func (p *PlayerState) Update(log model.PlayerGameLog) {
	if log.Appearance != model.AppearancePlayed || log.BoxPlusMinus == nil {
		return
	}
	p.GamesPlayed++
	p.bpmSum += *log.BoxPlusMinus
}

// AvgBPM returns the running box plus/minus average, 0.0 before any
// qualifying appearance.
func (p *PlayerState) AvgBPM() float64 {
	if p.GamesPlayed == 0 {
		return 0.0
	}
	return p.bpmSum / float64(p.GamesPlayed)
}
