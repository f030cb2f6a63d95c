package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jchow97/BasketballPredictor/internal/features"
	"github.com/jchow97/BasketballPredictor/internal/metrics"
	"github.com/jchow97/BasketballPredictor/internal/model"
	"github.com/jchow97/BasketballPredictor/internal/store"
)

// TrainingSet is the ordered output of a pipeline run. Examples appear in
// game-time order across all requested seasons.
type TrainingSet struct {
	Examples []model.TrainingExample
}

// Len returns the number of examples.
func (t *TrainingSet) Len() int { return len(t.Examples) }

// X returns the feature matrix, one row per example.
func (t *TrainingSet) X() [][]float64 {
	rows := make([][]float64, len(t.Examples))
	for i, ex := range t.Examples {
		rows[i] = ex.Features
	}
	return rows
}

// Y returns the outcome vector.
func (t *TrainingSet) Y() []float64 {
	y := make([]float64, len(t.Examples))
	for i, ex := range t.Examples {
		y[i] = ex.Outcome
	}
	return y
}

// GameCodes returns the game code of each example, in order.
func (t *TrainingSet) GameCodes() []string {
	codes := make([]string, len(t.Examples))
	for i, ex := range t.Examples {
		codes[i] = ex.GameCode
	}
	return codes
}

// Builder generates training sets from stored seasons.
type Builder struct {
	store   store.Store
	logger  *slog.Logger
	metrics *metrics.Metrics

	rosterBPM bool
	strict    bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// NewBuilder creates a training-set builder over a store.
func NewBuilder(s store.Store, opts ...BuilderOption) *Builder {
	b := &Builder{
		store:  s,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithRosterBPM appends the roster-average box plus/minus differential as a
// twelfth feature.
func WithRosterBPM() BuilderOption {
	return func(b *Builder) {
		b.rosterBPM = true
	}
}

// WithStrict makes incomplete box scores fatal instead of skipping the game.
func WithStrict() BuilderOption {
	return func(b *Builder) {
		b.strict = true
	}
}

// WithMetrics attaches a metrics collector.
func WithMetrics(m *metrics.Metrics) BuilderOption {
	return func(b *Builder) {
		b.metrics = m
	}
}

// Generate builds one training set covering the given seasons, in the order
// given. Feature state resets between seasons.
func (b *Builder) Generate(ctx context.Context, years []int) (*TrainingSet, error) {
	set := &TrainingSet{}
	for _, year := range years {
		examples, err := b.generateSeason(ctx, year)
		if err != nil {
			return nil, err
		}
		set.Examples = append(set.Examples, examples...)
	}
	return set, nil
}

// GenerateParallel builds seasons concurrently and concatenates the results
// in the order of years. Safe because seasons share no feature state.
func (b *Builder) GenerateParallel(ctx context.Context, years []int) (*TrainingSet, error) {
	results := make([][]model.TrainingExample, len(years))

	g, gctx := errgroup.WithContext(ctx)
	for i, year := range years {
		i, year := i, year
		g.Go(func() error {
			examples, err := b.generateSeason(gctx, year)
			if err != nil {
				return err
			}
			results[i] = examples
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := &TrainingSet{}
	for _, examples := range results {
		set.Examples = append(set.Examples, examples...)
	}
	return set, nil
}

func (b *Builder) generateSeason(ctx context.Context, year int) ([]model.TrainingExample, error) {
	season, err := b.store.SeasonByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("resolve season %d: %w", year, err)
	}
	games, err := b.store.GamesForSeason(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("load schedule for season %d: %w", year, err)
	}

	b.logger.Info("generating season", "year", year, "games", len(games))

	teams := make(map[features.TeamKey]*features.TeamState)
	players := make(map[int64]*features.PlayerState)
	examples := make([]model.TrainingExample, 0, len(games))
	seasonLabel := strconv.Itoa(year)

	var prevStart time.Time
	for i, game := range games {
		if i > 0 && game.StartTime.Before(prevStart) {
			return nil, &DataOrderingError{Year: year, GameCode: game.GameCode}
		}
		prevStart = game.StartTime

		if b.metrics != nil {
			b.metrics.GamesProcessed.WithLabelValues(seasonLabel).Inc()
		}

		home := b.teamState(teams, game.HomeTeamID, season.ID)
		away := b.teamState(teams, game.AwayTeamID, season.ID)

		homeLog, err := b.store.TeamLog(ctx, game.ID, game.HomeTeamID)
		var awayLog model.TeamGameLog
		if err == nil {
			awayLog, err = b.store.TeamLog(ctx, game.ID, game.AwayTeamID)
		}
		if err != nil {
			var missing *store.MissingFieldError
			if errors.As(err, &missing) && !b.strict {
				b.logger.Warn("skipping game with incomplete box score",
					"game", game.GameCode, "field", missing.Field)
				if b.metrics != nil {
					b.metrics.ExamplesSkipped.WithLabelValues(seasonLabel).Inc()
				}
				continue
			}
			return nil, fmt.Errorf("load box score for %s: %w", game.GameCode, err)
		}

		var homeRoster, awayRoster []model.PlayerGameLog
		if b.rosterBPM {
			if homeRoster, err = b.store.PlayerLogs(ctx, game.ID, game.HomeTeamID); err != nil {
				return nil, fmt.Errorf("load player logs for %s: %w", game.GameCode, err)
			}
			if awayRoster, err = b.store.PlayerLogs(ctx, game.ID, game.AwayTeamID); err != nil {
				return nil, fmt.Errorf("load player logs for %s: %w", game.GameCode, err)
			}
		}

		var vector []float64
		if b.rosterBPM {
			homeBPM := features.RosterAvgBPM(b.playerStates(ctx, players, homeRoster))
			awayBPM := features.RosterAvgBPM(b.playerStates(ctx, players, awayRoster))
			vector = features.DiffWithBPM(home, away, homeBPM, awayBPM)
		} else {
			vector = features.Diff(home, away)
		}

		examples = append(examples, model.TrainingExample{
			Features:  vector,
			Outcome:   homeLog.TotalPoints - awayLog.TotalPoints,
			GameCode:  game.GameCode,
			StartTime: game.StartTime,
		})
		if b.metrics != nil {
			b.metrics.ExamplesEmitted.WithLabelValues(seasonLabel).Inc()
		}

		home.Update(homeLog, awayLog)
		away.Update(awayLog, homeLog)
		for _, log := range homeRoster {
			players[log.PlayerID].Update(log)
		}
		for _, log := range awayRoster {
			players[log.PlayerID].Update(log)
		}
	}

	b.logger.Info("season generated", "year", year,
		"examples", len(examples), "skipped", len(games)-len(examples))
	return examples, nil
}

func (b *Builder) teamState(teams map[features.TeamKey]*features.TeamState, teamID, seasonID int64) *features.TeamState {
	key := features.TeamKey{TeamID: teamID, SeasonID: seasonID}
	state, ok := teams[key]
	if !ok {
		state = features.NewTeamState(key)
		teams[key] = state
	}
	return state
}

// playerStates resolves the states for one game roster, creating entries for
// players seen for the first time. The returned snapshot reflects only games
// before this one.
func (b *Builder) playerStates(ctx context.Context, players map[int64]*features.PlayerState, roster []model.PlayerGameLog) []*features.PlayerState {
	states := make([]*features.PlayerState, 0, len(roster))
	for _, log := range roster {
		state, ok := players[log.PlayerID]
		if !ok {
			state = features.NewPlayerState(log.PlayerID)
			players[log.PlayerID] = state
			if b.logger.Enabled(ctx, slog.LevelDebug) {
				if identity, err := b.store.PlayerIdentity(ctx, log.PlayerID); err == nil {
					b.logger.Debug("tracking player", "player", identity.Name, "code", identity.UniqueCode)
				}
			}
		}
		states = append(states, state)
	}
	return states
}
