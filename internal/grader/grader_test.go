package grader

import (
	"testing"

	"github.com/jchow97/BasketballPredictor/internal/model"
)

func ptr(f float64) *float64 { return &f }

func TestGradeNoSpread(t *testing.T) {
	if got := Grade(-3.0, -5.0, nil); got != model.NotGraded {
		t.Fatalf("expected NotGraded without a line, got %s", got)
	}
}

func TestGradePredictionOnLine(t *testing.T) {
	if got := Grade(-2.0, -5.0, ptr(-2.0)); got != model.NotGraded {
		t.Fatalf("expected NotGraded when prediction sits on the line, got %s", got)
	}
}

func TestGradePush(t *testing.T) {
	if got := Grade(-3.0, -2.0, ptr(-2.0)); got != model.Push {
		t.Fatalf("expected Push when actual lands on the line, got %s", got)
	}
	if got := Grade(4.0, 1.5, ptr(1.5)); got != model.Push {
		t.Fatalf("expected Push regardless of predicted side, got %s", got)
	}
}

// Model says home loses by 3, market line is home by -2, game ends home
// losing by 5. The under side of the line was right.
func TestGradeUnderSideCorrect(t *testing.T) {
	if got := Grade(-3.0, -5.0, ptr(-2.0)); got != model.Correct {
		t.Fatalf("expected Correct, got %s", got)
	}
}

func TestGradeUnderSideIncorrect(t *testing.T) {
	if got := Grade(-3.0, 1.0, ptr(-2.0)); got != model.Incorrect {
		t.Fatalf("expected Incorrect when actual crosses the line, got %s", got)
	}
}

func TestGradeOverSide(t *testing.T) {
	if got := Grade(8.0, 10.0, ptr(5.5)); got != model.Correct {
		t.Fatalf("expected Correct on the over side, got %s", got)
	}
	if got := Grade(8.0, 3.0, ptr(5.5)); got != model.Incorrect {
		t.Fatalf("expected Incorrect on the over side, got %s", got)
	}
}

// Both teams favored cases keep the same direction: the comparison is
// against the line, not against zero.
func TestGradeSignConvention(t *testing.T) {
	cases := []struct {
		name      string
		predicted float64
		actual    float64
		spread    float64
		want      model.BetOutcome
	}{
		{"home favored, home covers", 9.0, 12.0, 6.5, model.Correct},
		{"home favored, home fails to cover", 4.0, 3.0, 6.5, model.Correct},
		{"away favored, away covers", -10.0, -11.0, -7.5, model.Correct},
		{"away favored, home keeps it close", -5.0, -2.0, -7.5, model.Correct},
		{"wrong side entirely", -5.0, -11.0, -7.5, model.Incorrect},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Grade(tc.predicted, tc.actual, &tc.spread); got != tc.want {
				t.Fatalf("Grade(%v, %v, %v) = %s, want %s",
					tc.predicted, tc.actual, tc.spread, got, tc.want)
			}
		})
	}
}
