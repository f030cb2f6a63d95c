package estimator

import (
	"errors"
	"math"
	"testing"
)

func TestPredictBeforeFit(t *testing.T) {
	r := NewRidge(1.0)
	_, err := r.Predict([][]float64{{1, 2}})
	if !errors.Is(err, ErrNotFitted) {
		t.Errorf("Predict before Fit: err = %v, want ErrNotFitted", err)
	}
}

func TestFitRecoversLinearRelationship(t *testing.T) {
	// y = 3*x0 - 2*x1 + 5 with no noise; a lightly regularized fit should get
	// close on in-sample predictions.
	X := [][]float64{
		{1, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 0},
		{-1, 2}, {0, -1}, {2, 3}, {4, 1}, {-2, -2},
	}
	y := make([]float64, len(X))
	for i, row := range X {
		y[i] = 3*row[0] - 2*row[1] + 5
	}

	r := NewRidge(1e-6)
	if err := r.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	preds, err := r.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	for i := range preds {
		if math.Abs(preds[i]-y[i]) > 1e-6 {
			t.Errorf("pred[%d] = %v, want %v", i, preds[i], y[i])
		}
	}
}

func TestFitHandlesConstantColumn(t *testing.T) {
	X := [][]float64{{1, 7}, {2, 7}, {3, 7}, {4, 7}}
	y := []float64{2, 4, 6, 8}

	r := NewRidge(1e-6)
	if err := r.Fit(X, y); err != nil {
		t.Fatalf("Fit with constant column failed: %v", err)
	}

	preds, err := r.Predict([][]float64{{2.5, 7}})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if math.Abs(preds[0]-5.0) > 1e-4 {
		t.Errorf("pred = %v, want ~5.0", preds[0])
	}
}

func TestFitValidatesShapes(t *testing.T) {
	r := NewRidge(1.0)

	if err := r.Fit(nil, nil); err == nil {
		t.Error("Fit(empty) err = nil, want error")
	}
	if err := r.Fit([][]float64{{1}}, []float64{1, 2}); err == nil {
		t.Error("Fit(mismatched lengths) err = nil, want error")
	}
	if err := r.Fit([][]float64{{1, 2}, {1}}, []float64{1, 2}); err == nil {
		t.Error("Fit(ragged rows) err = nil, want error")
	}
}

func TestPredictValidatesWidth(t *testing.T) {
	r := NewRidge(1.0)
	if err := r.Fit([][]float64{{1, 2}, {3, 4}, {5, 6}}, []float64{1, 2, 3}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if _, err := r.Predict([][]float64{{1}}); err == nil {
		t.Error("Predict(wrong width) err = nil, want error")
	}
}

func TestSolveLinearSystem(t *testing.T) {
	// 2x + y = 5, x + 3y = 10 -> x = 1, y = 3
	a := [][]float64{{2, 1}, {1, 3}}
	b := []float64{5, 10}

	x, err := solveLinearSystem(a, b)
	if err != nil {
		t.Fatalf("solveLinearSystem failed: %v", err)
	}
	if math.Abs(x[0]-1) > 1e-12 || math.Abs(x[1]-3) > 1e-12 {
		t.Errorf("solution = %v, want [1 3]", x)
	}
}

func TestSolveLinearSystemSingular(t *testing.T) {
	a := [][]float64{{1, 2}, {2, 4}}
	b := []float64{3, 6}
	if _, err := solveLinearSystem(a, b); err == nil {
		t.Error("singular system err = nil, want error")
	}
}
