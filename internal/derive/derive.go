// Package derive computes derivatives of plain functions by evaluating them on
// dual numbers.
//
// Cost model (forward mode):
//   - Derivative, SecondDerivative: 1 evaluation.
//   - Directional: 1 evaluation.
//   - Gradient, Jacobian: n evaluations for n inputs, one per seed direction.
//   - Hessian: n(n+1)/2 hyper-dual evaluations (upper triangle).
//
// Forward mode is cheap when there are few inputs. For many inputs and a
// scalar output the evaluation count grows with n; reverse mode would not,
// but is not provided here.
//
// Independent directions can be evaluated concurrently with WithParallel.
// The function under differentiation must then be safe for concurrent use,
// which holds for any pure function of its arguments.
package derive

import (
	"errors"
	"fmt"

	"github.com/born-ml/dualnum/internal/dual"
	"github.com/born-ml/dualnum/internal/parallel"
	"gonum.org/v1/gonum/mat"
)

// ErrDimension is returned when inputs have an unusable shape.
var ErrDimension = errors.New("derive: dimension mismatch")

// Option configures a multi-direction driver.
type Option func(*options)

type options struct {
	parallel parallel.Config
}

// WithParallel evaluates independent seed directions according to cfg.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}

func buildOptions(opts []Option) options {
	o := options{parallel: parallel.Sequential()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Derivative returns f(x) and f'(x).
func Derivative(f func(dual.Dual64) dual.Dual64, x float64) (value, d float64) {
	y := f(dual.Variable(x))
	return y.Value(), y.Derivative()
}

// SecondDerivative returns f(x), f'(x) and f''(x).
func SecondDerivative(f func(dual.HyperDual64) dual.HyperDual64, x float64) (value, d1, d2 float64) {
	y := f(dual.HyperFromValue(x).Derivative())
	return y.Value(), y.Eps1(), y.Eps1Eps2()
}

// Directional returns f(x) and the derivative of f at x along dir.
func Directional(f func([]dual.Dual64) dual.Dual64, x, dir []float64) (value, d float64, err error) {
	if len(x) == 0 || len(x) != len(dir) {
		return 0, 0, fmt.Errorf("%w: %d inputs, %d direction components", ErrDimension, len(x), len(dir))
	}

	in := make([]dual.Dual64, len(x))
	for i := range x {
		in[i] = dual.New(x[i], dir[i])
	}
	y := f(in)
	return y.Value(), y.Derivative(), nil
}

// Gradient returns f(x) and ∇f(x) using one evaluation per input.
func Gradient(f func([]dual.Dual64) dual.Dual64, x []float64, opts ...Option) (float64, []float64, error) {
	if len(x) == 0 {
		return 0, nil, fmt.Errorf("%w: empty input", ErrDimension)
	}
	o := buildOptions(opts)

	n := len(x)
	values := make([]float64, n)
	grad := make([]float64, n)

	parallel.For(n, func(i int) {
		y := f(seed(x, i))
		values[i] = y.Value()
		grad[i] = y.Derivative()
	}, o.parallel)

	return values[0], grad, nil
}

// Jacobian returns f(x) and the m×n Jacobian of f at x, where m is the
// number of outputs. Column j is the directional derivative along e_j.
func Jacobian(f func([]dual.Dual64) []dual.Dual64, x []float64, opts ...Option) ([]float64, *mat.Dense, error) {
	if len(x) == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrDimension)
	}
	o := buildOptions(opts)

	n := len(x)
	columns := make([][]dual.Dual64, n)
	parallel.For(n, func(j int) {
		columns[j] = f(seed(x, j))
	}, o.parallel)

	m := len(columns[0])
	if m == 0 {
		return nil, nil, fmt.Errorf("%w: function has no outputs", ErrDimension)
	}

	jac := mat.NewDense(m, n, nil)
	for j, col := range columns {
		if len(col) != m {
			return nil, nil, fmt.Errorf("%w: direction %d produced %d outputs, want %d", ErrDimension, j, len(col), m)
		}
		for i, y := range col {
			jac.Set(i, j, y.Derivative())
		}
	}

	return dual.Reals(columns[0]), jac, nil
}

// Partial2 returns ∂²f/∂x_i∂x_j at x from a single hyper-dual evaluation.
func Partial2(f func([]dual.HyperDual64) dual.HyperDual64, x []float64, i, j int) (float64, error) {
	if i < 0 || j < 0 || i >= len(x) || j >= len(x) {
		return 0, fmt.Errorf("%w: index (%d, %d) out of range for %d inputs", ErrDimension, i, j, len(x))
	}
	return f(seedPair(x, i, j)).Eps1Eps2(), nil
}

// Hessian returns f(x), ∇f(x) and the symmetric Hessian of f at x.
func Hessian(f func([]dual.HyperDual64) dual.HyperDual64, x []float64, opts ...Option) (float64, []float64, *mat.SymDense, error) {
	if len(x) == 0 {
		return 0, nil, nil, fmt.Errorf("%w: empty input", ErrDimension)
	}
	o := buildOptions(opts)

	n := len(x)
	grad := make([]float64, n)
	hess := mat.NewSymDense(n, nil)
	var value float64

	// Every pair owns one cell of hess, and each diagonal pair one entry of
	// grad, so concurrent writes never overlap.
	parallel.ForPairs(n, func(i, j int) {
		r := f(seedPair(x, i, j))
		if i == j {
			grad[i] = r.Eps1()
			if i == 0 {
				value = r.Value()
			}
		}
		hess.SetSym(i, j, r.Eps1Eps2())
	}, o.parallel)

	return value, grad, hess, nil
}

// seed lifts x to constants and marks x[i] as the variable.
func seed(x []float64, i int) []dual.Dual64 {
	in := make([]dual.Dual64, len(x))
	for k, v := range x {
		in[k] = dual.FromValue(v)
	}
	in[i] = dual.Variable(x[i])
	return in
}

// seedPair seeds ε1 along x[i] and ε2 along x[j]. For i == j both channels
// land on the same input.
func seedPair(x []float64, i, j int) []dual.HyperDual64 {
	in := make([]dual.HyperDual64, len(x))
	for k, v := range x {
		in[k] = dual.HyperFromValue(v)
	}
	in[i] = in[i].Derivative1()
	in[j] = in[j].Derivative2()
	return in
}
