package bankroll

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

var reportHeader = []string{
	"prediction",
	"actual_diff",
	"market_spread",
	"game_code",
	"outcome",
	"daily_opening_bankroll",
	"day_boundary_plus_minus",
}

// WriteReport writes the equity curve as CSV. Spread and day-boundary cells
// are left empty when absent rather than written as zero.
func WriteReport(w io.Writer, rows []EquityRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, row := range rows {
		spread := ""
		if row.Spread != nil {
			spread = strconv.FormatFloat(*row.Spread, 'f', -1, 64)
		}
		boundary := ""
		if row.DayBoundaryPL != nil {
			boundary = row.DayBoundaryPL.StringFixed(2)
		}
		rec := []string{
			strconv.FormatFloat(row.Prediction, 'f', -1, 64),
			strconv.FormatFloat(row.ActualDiff, 'f', -1, 64),
			spread,
			row.GameCode,
			row.Outcome.String(),
			row.DayOpeningBankroll.StringFixed(2),
			boundary,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write report row for %s: %w", row.GameCode, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportFile writes the report for one season into dir, creating the
// directory if needed. The file is named <year>_prediction.csv.
func WriteReportFile(dir string, year int, rows []EquityRow) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%d_prediction.csv", year))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := WriteReport(f, rows); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}
	return path, nil
}
