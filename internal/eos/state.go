package eos

import (
	"fmt"

	"github.com/born-ml/dualnum/internal/derive"
	"github.com/born-ml/dualnum/internal/dual"
	"gonum.org/v1/gonum/mat"
)

// State is a thermodynamic state point.
type State struct {
	Temperature float64
	Volume      float64
	Moles       []float64
}

// ReferenceState returns T = 250, V = 1000, n = [1].
func ReferenceState() State {
	return State{Temperature: 250, Volume: 1000, Moles: []float64{1}}
}

// Validate checks s against the component count of p.
func (s State) Validate(p Parameters) error {
	if len(s.Moles) != p.Components() {
		return &ValidationError{
			Field:   "moles",
			Details: fmt.Sprintf("got %d values, want %d", len(s.Moles), p.Components()),
			Err:     ErrMolesMismatch,
		}
	}
	if s.Temperature <= 0 {
		return &ValidationError{Field: "temperature", Details: fmt.Sprint(s.Temperature), Err: ErrNonPositiveState}
	}
	if s.Volume <= 0 {
		return &ValidationError{Field: "volume", Details: fmt.Sprint(s.Volume), Err: ErrNonPositiveState}
	}
	return nil
}

// vector packs s as [T, V, n_0, ..., n_k].
func (s State) vector() []float64 {
	x := make([]float64, 0, 2+len(s.Moles))
	x = append(x, s.Temperature, s.Volume)
	return append(x, s.Moles...)
}

// Properties are the Helmholtz energy and its first derivatives at a state.
type Properties struct {
	Helmholtz float64   // a
	DaDT      float64   // ∂a/∂T
	DaDV      float64   // ∂a/∂V
	DaDN      []float64 // ∂a/∂n_i
}

// Pressure returns the residual pressure contribution -∂a/∂V.
func (pr Properties) Pressure() float64 {
	return -pr.DaDV
}

// ChemicalPotential returns the residual chemical potential ∂a/∂n_i.
func (pr Properties) ChemicalPotential(i int) float64 {
	return pr.DaDN[i]
}

// Entropy returns the residual entropy contribution -∂a/∂T.
func (pr Properties) Entropy() float64 {
	return -pr.DaDT
}

// packed adapts Helmholtz to a function of [T, V, n...].
func packed[N dual.Number[N]](p Parameters) func([]N) N {
	return func(x []N) N {
		return Helmholtz(p, x[0], x[1], x[2:])
	}
}

// Value evaluates a at s with plain reals.
func Value(p Parameters, s State) (float64, error) {
	if err := s.Validate(p); err != nil {
		return 0, err
	}
	in := dual.Constants[dual.Real](s.vector())
	return float64(packed[dual.Real](p)(in)), nil
}

// Derivatives evaluates a and its first derivatives at s. It costs
// 2 + len(s.Moles) dual-number evaluations.
func Derivatives(p Parameters, s State, opts ...derive.Option) (Properties, error) {
	if err := s.Validate(p); err != nil {
		return Properties{}, err
	}

	a, grad, err := derive.Gradient(packed[dual.Dual64](p), s.vector(), opts...)
	if err != nil {
		return Properties{}, fmt.Errorf("helmholtz gradient: %w", err)
	}

	return Properties{
		Helmholtz: a,
		DaDT:      grad[0],
		DaDV:      grad[1],
		DaDN:      grad[2:],
	}, nil
}

// SecondDerivatives returns the Hessian of a with respect to [T, V, n...].
func SecondDerivatives(p Parameters, s State, opts ...derive.Option) (*mat.SymDense, error) {
	if err := s.Validate(p); err != nil {
		return nil, err
	}

	_, _, hess, err := derive.Hessian(packed[dual.HyperDual64](p), s.vector(), opts...)
	if err != nil {
		return nil, fmt.Errorf("helmholtz hessian: %w", err)
	}
	return hess, nil
}
