package bankroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jchow97/BasketballPredictor/internal/model"
)

// Config holds the staking parameters for one simulation run.
type Config struct {
	StartingBankroll decimal.Decimal
	WagerFraction    decimal.Decimal
	MinimumWager     decimal.Decimal
	PayoutMultiplier decimal.Decimal
}

// DefaultConfig returns the baseline plan: 1000 unit bankroll, 5% of the
// day-opening balance per bet with a 5 unit floor, paid at 1.90.
func DefaultConfig() Config {
	return Config{
		StartingBankroll: decimal.NewFromInt(1000),
		WagerFraction:    decimal.NewFromFloat(0.05),
		MinimumWager:     decimal.NewFromInt(5),
		PayoutMultiplier: decimal.NewFromFloat(1.90),
	}
}

// Validate rejects parameter sets that would make the simulation degenerate.
func (c Config) Validate() error {
	if c.StartingBankroll.Sign() <= 0 {
		return fmt.Errorf("starting bankroll must be positive, got %s", c.StartingBankroll)
	}
	if c.WagerFraction.Sign() <= 0 || c.WagerFraction.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("wager fraction must be in (0, 1], got %s", c.WagerFraction)
	}
	if c.MinimumWager.Sign() < 0 {
		return fmt.Errorf("minimum wager must not be negative, got %s", c.MinimumWager)
	}
	if c.PayoutMultiplier.LessThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("payout multiplier must exceed 1, got %s", c.PayoutMultiplier)
	}
	return nil
}

// EquityRow is one settled bet on the equity curve. DayBoundaryPL is set only
// on the first row of each new calendar date after the first, holding the
// previous day's profit or loss; it stays nil on every other row.
type EquityRow struct {
	Prediction         float64
	ActualDiff         float64
	Spread             *float64
	GameCode           string
	Outcome            model.BetOutcome
	DayOpeningBankroll decimal.Decimal
	DayBoundaryPL      *decimal.Decimal
}

// Summary aggregates one simulation run.
type Summary struct {
	StartingBankroll decimal.Decimal
	FinalBankroll    decimal.Decimal
	MaxBankroll      decimal.Decimal
	MinBankroll      decimal.Decimal
	Correct          int
	Incorrect        int
	Push             int
	NotGraded        int
	MaxLossStreak    int
}

// WinCorrectness is wins over all bets that reached the book, pushes
// included in the denominator.
func (s Summary) WinCorrectness() float64 {
	n := s.Correct + s.Incorrect + s.Push
	if n == 0 {
		return 0
	}
	return float64(s.Correct) / float64(n)
}

// WinLossPct is wins over decided bets only.
func (s Summary) WinLossPct() float64 {
	n := s.Correct + s.Incorrect
	if n == 0 {
		return 0
	}
	return float64(s.Correct) / float64(n)
}

// Simulator replays graded bets in order against a staking plan.
type Simulator struct {
	cfg Config
}

// NewSimulator builds a simulator. The configuration is validated once here
// so Run never has to fail on parameters.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bankroll config: %w", err)
	}
	return &Simulator{cfg: cfg}, nil
}

// Run settles bets in the order given. Bets must already be sorted
// chronologically; the day-opening bankroll refreshes whenever the calendar
// date of a bet differs from the previous one. Wagers are a fixed fraction
// of the day-opening balance, floored at the minimum stake. Pushes and
// ungraded bets leave the bankroll untouched. The loss streak counts
// consecutive Incorrect outcomes; a Push neither breaks nor extends it.
func (s *Simulator) Run(bets []model.BetRecord) ([]EquityRow, Summary) {
	bankroll := s.cfg.StartingBankroll
	dayOpening := bankroll
	winShare := s.cfg.PayoutMultiplier.Sub(decimal.NewFromInt(1))

	sum := Summary{
		StartingBankroll: bankroll,
		FinalBankroll:    bankroll,
		MaxBankroll:      bankroll,
		MinBankroll:      bankroll,
	}

	rows := make([]EquityRow, 0, len(bets))
	var curDay string
	lossStreak := 0

	for i, bet := range bets {
		day := bet.GameDate.Format("2006-01-02")
		var boundary *decimal.Decimal
		if i == 0 {
			curDay = day
		} else if day != curDay {
			pl := bankroll.Sub(dayOpening)
			boundary = &pl
			dayOpening = bankroll
			curDay = day
		}

		wager := dayOpening.Mul(s.cfg.WagerFraction)
		if wager.LessThan(s.cfg.MinimumWager) {
			wager = s.cfg.MinimumWager
		}

		switch bet.Outcome {
		case model.Correct:
			bankroll = bankroll.Add(wager.Mul(winShare))
			sum.Correct++
			lossStreak = 0
		case model.Incorrect:
			bankroll = bankroll.Sub(wager)
			sum.Incorrect++
			lossStreak++
			if lossStreak > sum.MaxLossStreak {
				sum.MaxLossStreak = lossStreak
			}
		case model.Push:
			sum.Push++
		default:
			sum.NotGraded++
		}

		if bankroll.GreaterThan(sum.MaxBankroll) {
			sum.MaxBankroll = bankroll
		}
		if bankroll.LessThan(sum.MinBankroll) {
			sum.MinBankroll = bankroll
		}

		rows = append(rows, EquityRow{
			Prediction:         bet.Predicted,
			ActualDiff:         bet.Actual,
			Spread:             bet.Spread,
			GameCode:           bet.GameCode,
			Outcome:            bet.Outcome,
			DayOpeningBankroll: dayOpening,
			DayBoundaryPL:      boundary,
		})
	}

	sum.FinalBankroll = bankroll
	return rows, sum
}
