package estimator

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFitted is returned by Predict before a successful Fit.
var ErrNotFitted = errors.New("estimator is not fitted")

// Estimator is an opaque trainable regressor predicting a continuous point
// differential from a feature vector.
type Estimator interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) ([]float64, error)
}

// DefaultLambda is the default L2 regularization strength.
const DefaultLambda = 1.0

// Ridge is an L2-regularized linear regressor solved in closed form via the
// normal equations. Features are standardized internally; the intercept is
// the target mean and is not penalized.
type Ridge struct {
	Lambda float64

	mean      []float64
	scale     []float64
	weights   []float64
	intercept float64
	fitted    bool
}

// NewRidge creates a ridge regressor. A non-positive lambda falls back to
// DefaultLambda.
func NewRidge(lambda float64) *Ridge {
	if lambda <= 0 {
		lambda = DefaultLambda
	}
	return &Ridge{Lambda: lambda}
}

// Fit solves (ZᵀZ + λI)w = Zᵀ(y − ȳ) over the standardized design matrix Z.
func (r *Ridge) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return errors.New("fit: empty training set")
	}
	if n != len(y) {
		return fmt.Errorf("fit: %d feature vectors but %d targets", n, len(y))
	}
	p := len(X[0])
	if p == 0 {
		return errors.New("fit: zero-width feature vectors")
	}
	for i, row := range X {
		if len(row) != p {
			return fmt.Errorf("fit: row %d has width %d, want %d", i, len(row), p)
		}
	}

	r.mean = make([]float64, p)
	r.scale = make([]float64, p)
	for j := 0; j < p; j++ {
		var sum float64
		for i := 0; i < n; i++ {
			sum += X[i][j]
		}
		mean := sum / float64(n)

		var variance float64
		for i := 0; i < n; i++ {
			d := X[i][j] - mean
			variance += d * d
		}
		std := math.Sqrt(variance / float64(n))
		if std == 0 {
			// Constant column: center it, leave the scale neutral.
			std = 1.0
		}
		r.mean[j] = mean
		r.scale[j] = std
	}

	var ySum float64
	for _, v := range y {
		ySum += v
	}
	r.intercept = ySum / float64(n)

	// Gram matrix of the standardized design plus the ridge penalty.
	gram := make([][]float64, p)
	for j := range gram {
		gram[j] = make([]float64, p)
	}
	rhs := make([]float64, p)
	z := make([]float64, p)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			z[j] = (X[i][j] - r.mean[j]) / r.scale[j]
		}
		for j := 0; j < p; j++ {
			for k := j; k < p; k++ {
				gram[j][k] += z[j] * z[k]
			}
			rhs[j] += z[j] * (y[i] - r.intercept)
		}
	}
	for j := 0; j < p; j++ {
		for k := 0; k < j; k++ {
			gram[j][k] = gram[k][j]
		}
		gram[j][j] += r.Lambda
	}

	weights, err := solveLinearSystem(gram, rhs)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	r.weights = weights
	r.fitted = true
	return nil
}

// Predict returns point-differential estimates for each feature vector.
func (r *Ridge) Predict(X [][]float64) ([]float64, error) {
	if !r.fitted {
		return nil, ErrNotFitted
	}

	p := len(r.weights)
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != p {
			return nil, fmt.Errorf("predict: row %d has width %d, want %d", i, len(row), p)
		}
		pred := r.intercept
		for j := 0; j < p; j++ {
			pred += r.weights[j] * (row[j] - r.mean[j]) / r.scale[j]
		}
		out[i] = pred
	}
	return out, nil
}

// solveLinearSystem solves a·x = b by Gaussian elimination with partial
// pivoting. a and b are modified in place.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	for col := 0; col < n; col++ {
		// Pivot on the largest magnitude in the column.
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, errors.New("singular system")
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}
			b[row] -= factor * b[col]
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := b[row]
		for k := row + 1; k < n; k++ {
			sum -= a[row][k] * x[k]
		}
		x[row] = sum / a[row][row]
	}
	return x, nil
}
