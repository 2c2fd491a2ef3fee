package derive

import (
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/dualnum/internal/dual"
)

// ErrNoConvergence is returned when Newton iteration exhausts its budget or
// reaches a point where the derivative vanishes or is not finite.
var ErrNoConvergence = errors.New("derive: newton iteration did not converge")

// NewtonSettings controls Newton iteration.
type NewtonSettings struct {
	Tolerance     float64 // Stop when |f(x)| <= Tolerance.
	MaxIterations int
}

// DefaultNewtonSettings returns Tolerance 1e-12 and 50 iterations.
func DefaultNewtonSettings() NewtonSettings {
	return NewtonSettings{Tolerance: 1e-12, MaxIterations: 50}
}

// Newton finds a root of f starting from x0, using the exact derivative from
// one dual-number evaluation per step. It returns the root and the number of
// iterations performed.
func Newton(f func(dual.Dual64) dual.Dual64, x0 float64, settings NewtonSettings) (float64, int, error) {
	x := x0
	for i := 0; i < settings.MaxIterations; i++ {
		y := f(dual.Variable(x))
		if math.Abs(y.Value()) <= settings.Tolerance {
			return x, i, nil
		}

		d := y.Derivative()
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return x, i, fmt.Errorf("%w: derivative %v at x = %v", ErrNoConvergence, d, x)
		}
		x -= y.Value() / d
	}

	if y := f(dual.FromValue(x)); math.Abs(y.Value()) <= settings.Tolerance {
		return x, settings.MaxIterations, nil
	}
	return x, settings.MaxIterations, fmt.Errorf("%w after %d iterations", ErrNoConvergence, settings.MaxIterations)
}
