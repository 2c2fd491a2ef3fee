// Package fdcheck cross-checks dual-number derivatives against finite
// differences.
package fdcheck

import (
	"math"

	"github.com/born-ml/dualnum/internal/dual"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// DefaultTolerance is the absolute-or-relative tolerance used by Passed.
const DefaultTolerance = 1e-6

// Result compares one derivative obtained with dual numbers to a finite
// difference estimate.
type Result struct {
	Name       string
	X          []float64
	Value      float64 // f(x)
	Derivative float64 // From dual numbers.
	Numeric    float64 // From finite differences.
}

// AbsErr returns |Derivative - Numeric|.
func (r Result) AbsErr() float64 {
	return math.Abs(r.Derivative - r.Numeric)
}

// Within reports whether the two estimates agree to tol, absolute or relative.
func (r Result) Within(tol float64) bool {
	return floats.EqualWithinAbsOrRel(r.Derivative, r.Numeric, tol, tol)
}

// Passed reports whether the estimates agree to DefaultTolerance.
func (r Result) Passed() bool {
	return r.Within(DefaultTolerance)
}

// Func is a named single-variable function available in both forms.
type Func struct {
	Name string
	Dual func(dual.Dual64) dual.Dual64
	Real func(float64) float64
}

// Elementary returns the supported elementary functions.
func Elementary() []Func {
	return []Func{
		{"exp", dual.Dual64.Exp, math.Exp},
		{"ln", dual.Dual64.Ln, math.Log},
		{"ln_1p", dual.Dual64.Ln1p, math.Log1p},
		{"sin", dual.Dual64.Sin, math.Sin},
		{"cos", dual.Dual64.Cos, math.Cos},
		{"sqrt", dual.Dual64.Sqrt, math.Sqrt},
		{"recip", dual.Dual64.Recip, func(x float64) float64 { return 1 / x }},
		{"powi(3)", func(x dual.Dual64) dual.Dual64 { return x.Powi(3) }, func(x float64) float64 { return x * x * x }},
		{"powi(-2)", func(x dual.Dual64) dual.Dual64 { return x.Powi(-2) }, func(x float64) float64 { return 1 / (x * x) }},
		{"tan", dual.Dual64.Tan, math.Tan},
		{"sinh", dual.Dual64.Sinh, math.Sinh},
		{"cosh", dual.Dual64.Cosh, math.Cosh},
		{"tanh", dual.Dual64.Tanh, math.Tanh},
		{"expm1", dual.Dual64.Expm1, math.Expm1},
		{"cbrt", dual.Dual64.Cbrt, math.Cbrt},
		{"powf(1.5)", func(x dual.Dual64) dual.Dual64 { return x.Powf(1.5) }, func(x float64) float64 { return math.Pow(x, 1.5) }},
	}
}

// Derivative checks f'(x) from a seeded dual number against a central
// difference.
func Derivative(f Func, x float64) Result {
	y := f.Dual(dual.Variable(x))
	return Result{
		Name:       f.Name,
		X:          []float64{x},
		Value:      y.Value(),
		Derivative: y.Derivative(),
		Numeric:    fd.Derivative(f.Real, x, &fd.Settings{Formula: fd.Central}),
	}
}

// All checks every elementary function at x.
func All(x float64) []Result {
	funcs := Elementary()
	results := make([]Result, len(funcs))
	for i, f := range funcs {
		results[i] = Derivative(f, x)
	}
	return results
}

// Gradient checks ∂f/∂x_i from a seeded dual number against a central
// difference of plain, for every i.
func Gradient(name string, f func([]dual.Dual64) dual.Dual64, plain func([]float64) float64, x []float64) []Result {
	numeric := fd.Gradient(nil, plain, x, &fd.Settings{Formula: fd.Central})

	results := make([]Result, len(x))
	for i := range x {
		in := dual.Constants[dual.Dual64](x)
		in[i] = dual.Variable(x[i])
		y := f(in)
		results[i] = Result{
			Name:       name,
			X:          append([]float64(nil), x...),
			Value:      y.Value(),
			Derivative: y.Derivative(),
			Numeric:    numeric[i],
		}
	}
	return results
}

// mixedStep is the step of the nested central differences in Mixed.
const mixedStep = 1e-4

// Mixed checks the ε1ε2 term of a hyper-dual evaluation seeded along x_i and
// x_j against nested central differences of plain.
func Mixed(name string, f func([]dual.HyperDual64) dual.HyperDual64, plain func([]float64) float64, x []float64, i, j int) Result {
	in := dual.Constants[dual.HyperDual64](x)
	in[i] = in[i].Derivative1()
	in[j] = in[j].Derivative2()
	y := f(in)

	settings := &fd.Settings{Formula: fd.Central, Step: mixedStep}
	shifted := make([]float64, len(x))
	partialI := func(xj float64) float64 {
		copy(shifted, x)
		shifted[j] = xj
		return fd.Derivative(func(xi float64) float64 {
			shifted[i] = xi
			return plain(shifted)
		}, shifted[i], settings)
	}

	return Result{
		Name:       name,
		X:          append([]float64(nil), x...),
		Value:      y.Value(),
		Derivative: y.Eps1Eps2(),
		Numeric:    fd.Derivative(partialI, x[j], settings),
	}
}
