// Package grader classifies model predictions against the market line.
//
// The strategy is to bet the side the model disagrees with the market about:
// a prediction below the line is a bet that the actual differential lands
// below it, and vice versa. All three inputs share the home-minus-away sign
// convention; grading direction inverts silently if any one of them differs.
package grader

import "github.com/jchow97/BasketballPredictor/internal/model"

// Grade classifies one prediction. A nil spread means no line exists and no
// bet is placed; a prediction exactly on the line takes no side. Otherwise
// the bet wins when the actual differential falls on the predicted side of
// the line, loses on the other side, and pushes when it lands exactly on it.
func Grade(predicted, actual float64, spread *float64) model.BetOutcome {
	if spread == nil {
		return model.NotGraded
	}
	line := *spread

	if predicted == line {
		return model.NotGraded
	}
	if actual == line {
		return model.Push
	}

	if predicted < line {
		if actual < line {
			return model.Correct
		}
		return model.Incorrect
	}
	if actual > line {
		return model.Correct
	}
	return model.Incorrect
}
