// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package eos provides a Helmholtz-energy-like expression written once
// against dual.Number and evaluated with reals, dual numbers and hyper-dual
// numbers from the same source.
//
// Example:
//
//	p := eos.ReferenceParameters()
//	props, err := eos.Derivatives(p, eos.ReferenceState())
//	// props.Helmholtz ≈ 0.4106, props.DaDT ≈ -1.306e-4
package eos

import (
	"io"

	"github.com/born-ml/dualnum/derive"
	"github.com/born-ml/dualnum/dual"
	"github.com/born-ml/dualnum/internal/eos"
	"gonum.org/v1/gonum/mat"
)

// Parameters holds per-component model parameters.
type Parameters = eos.Parameters

// State is a thermodynamic state point.
type State = eos.State

// Properties are the Helmholtz energy and its first derivatives.
type Properties = eos.Properties

// ValidationError describes a parameter or state validation failure.
type ValidationError = eos.ValidationError

// Validation errors.
var (
	ErrNoComponents     = eos.ErrNoComponents
	ErrLengthMismatch   = eos.ErrLengthMismatch
	ErrMolesMismatch    = eos.ErrMolesMismatch
	ErrNonPositiveState = eos.ErrNonPositiveState
)

// NewParameters validates and returns a parameter set.
func NewParameters(m, sigma, epsilonK []float64) (Parameters, error) {
	return eos.NewParameters(m, sigma, epsilonK)
}

// ReferenceParameters returns the single-component reference set.
func ReferenceParameters() Parameters {
	return eos.ReferenceParameters()
}

// ReferenceState returns T = 250, V = 1000, n = [1].
func ReferenceState() State {
	return eos.ReferenceState()
}

// LoadParameters decodes YAML parameters from r.
func LoadParameters(r io.Reader) (Parameters, error) {
	return eos.LoadParameters(r)
}

// LoadParametersFile reads YAML parameters from path.
func LoadParametersFile(path string) (Parameters, error) {
	return eos.LoadParametersFile(path)
}

// Helmholtz evaluates the expression for any Number type.
func Helmholtz[N dual.Number[N]](p Parameters, temperature, volume N, moles []N) N {
	return eos.Helmholtz(p, temperature, volume, moles)
}

// Probe is exp(x) / sqrt(sin(x)³ + cos(x)³).
func Probe[N dual.Number[N]](x N) N {
	return eos.Probe(x)
}

// Value evaluates the expression at s with plain reals.
func Value(p Parameters, s State) (float64, error) {
	return eos.Value(p, s)
}

// Derivatives evaluates the expression and its first derivatives at s.
func Derivatives(p Parameters, s State, opts ...derive.Option) (Properties, error) {
	return eos.Derivatives(p, s, opts...)
}

// SecondDerivatives returns the Hessian with respect to [T, V, n...].
func SecondDerivatives(p Parameters, s State, opts ...derive.Option) (*mat.SymDense, error) {
	return eos.SecondDerivatives(p, s, opts...)
}
