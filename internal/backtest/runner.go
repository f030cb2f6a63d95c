package backtest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jchow97/BasketballPredictor/internal/bankroll"
	"github.com/jchow97/BasketballPredictor/internal/estimator"
	"github.com/jchow97/BasketballPredictor/internal/grader"
	"github.com/jchow97/BasketballPredictor/internal/metrics"
	"github.com/jchow97/BasketballPredictor/internal/model"
	"github.com/jchow97/BasketballPredictor/internal/pipeline"
	"github.com/jchow97/BasketballPredictor/internal/store"
)

// Result summarizes one backtested season.
type Result struct {
	Year       int
	Bets       int
	Summary    bankroll.Summary
	ReportPath string
}

// Runner wires the pipeline, estimator, grader and bankroll simulator into
// one train-then-replay flow.
type Runner struct {
	store     store.Store
	builder   *pipeline.Builder
	estimator estimator.Estimator
	simulator *bankroll.Simulator
	outputDir string
	logger    *slog.Logger
	metrics   *metrics.Metrics
	parallel  bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// NewRunner creates a backtest runner. Reports are written under outputDir.
func NewRunner(s store.Store, b *pipeline.Builder, est estimator.Estimator, sim *bankroll.Simulator, outputDir string, opts ...RunnerOption) *Runner {
	r := &Runner{
		store:     s,
		builder:   b,
		estimator: est,
		simulator: sim,
		outputDir: outputDir,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithRunnerLogger sets the logger.
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithRunnerMetrics attaches a metrics collector.
func WithRunnerMetrics(m *metrics.Metrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithParallelGeneration builds training seasons concurrently.
func WithParallelGeneration() RunnerOption {
	return func(r *Runner) {
		r.parallel = true
	}
}

// Run fits the estimator on trainYears and backtests each of testYears in
// turn. Every season gets its own report file; results come back in the
// order of testYears.
func (r *Runner) Run(ctx context.Context, trainYears, testYears []int) ([]Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)
	logger.Info("backtest starting", "train_seasons", trainYears, "test_seasons", testYears)

	if err := r.fit(ctx, trainYears); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(testYears))
	for _, year := range testYears {
		result, err := r.backtestSeason(ctx, logger, year)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	logger.Info("backtest complete", "seasons", len(results))
	return results, nil
}

func (r *Runner) fit(ctx context.Context, trainYears []int) error {
	generate := r.builder.Generate
	if r.parallel {
		generate = r.builder.GenerateParallel
	}
	training, err := generate(ctx, trainYears)
	if err != nil {
		return fmt.Errorf("build training set: %w", err)
	}
	if training.Len() == 0 {
		return fmt.Errorf("training seasons %v produced no examples", trainYears)
	}
	if err := r.estimator.Fit(training.X(), training.Y()); err != nil {
		return fmt.Errorf("fit estimator: %w", err)
	}
	r.logger.Info("estimator fitted", "examples", training.Len())
	return nil
}

func (r *Runner) backtestSeason(ctx context.Context, logger *slog.Logger, year int) (Result, error) {
	set, err := r.builder.Generate(ctx, []int{year})
	if err != nil {
		return Result{}, fmt.Errorf("build season %d: %w", year, err)
	}
	predictions, err := r.estimator.Predict(set.X())
	if err != nil {
		return Result{}, fmt.Errorf("predict season %d: %w", year, err)
	}

	bets := make([]model.BetRecord, 0, set.Len())
	for i, ex := range set.Examples {
		spread, err := r.store.MarketSpread(ctx, ex.GameCode)
		if err != nil {
			return Result{}, fmt.Errorf("load spread for %s: %w", ex.GameCode, err)
		}
		outcome := grader.Grade(predictions[i], ex.Outcome, spread)
		if r.metrics != nil {
			r.metrics.BetsGraded.WithLabelValues(outcome.String()).Inc()
		}
		bets = append(bets, model.BetRecord{
			GameCode:  ex.GameCode,
			GameDate:  ex.StartTime,
			Predicted: predictions[i],
			Actual:    ex.Outcome,
			Spread:    spread,
			Outcome:   outcome,
		})
	}

	rows, summary := r.simulator.Run(bets)
	if r.metrics != nil {
		r.metrics.SetBankroll(summary.FinalBankroll)
	}

	path, err := bankroll.WriteReportFile(r.outputDir, year, rows)
	if err != nil {
		return Result{}, fmt.Errorf("write report for %d: %w", year, err)
	}

	logger.Info("season backtested",
		"year", year,
		"bets", len(bets),
		"correct", summary.Correct,
		"incorrect", summary.Incorrect,
		"push", summary.Push,
		"not_graded", summary.NotGraded,
		"win_correctness", summary.WinCorrectness(),
		"final_bankroll", summary.FinalBankroll,
		"max_loss_streak", summary.MaxLossStreak,
		"report", path)

	return Result{Year: year, Bets: len(bets), Summary: summary, ReportPath: path}, nil
}
