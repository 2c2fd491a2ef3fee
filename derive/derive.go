// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package derive computes derivatives, gradients, Jacobians and Hessians of
// plain functions by evaluating them on dual numbers.
//
// Forward mode needs one evaluation per seed direction: a gradient over n
// inputs costs n evaluations, a Hessian n(n+1)/2. Independent directions can
// run concurrently with WithParallel.
//
// Example:
//
//	f := func(x []dual.Dual64) dual.Dual64 {
//	    return x[0].Mul(x[1]).Sin()
//	}
//	value, grad, err := derive.Gradient(f, []float64{1, 2})
package derive

import (
	"github.com/born-ml/dualnum/dual"
	"github.com/born-ml/dualnum/internal/derive"
	"github.com/born-ml/dualnum/internal/parallel"
	"gonum.org/v1/gonum/mat"
)

// ErrDimension is returned when inputs have an unusable shape.
var ErrDimension = derive.ErrDimension

// Option configures a multi-direction driver.
type Option = derive.Option

// ParallelConfig controls concurrent evaluation of seed directions.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// WithParallel evaluates independent seed directions according to cfg.
func WithParallel(cfg ParallelConfig) Option {
	return derive.WithParallel(cfg)
}

// Derivative returns f(x) and f'(x).
func Derivative(f func(dual.Dual64) dual.Dual64, x float64) (value, d float64) {
	return derive.Derivative(f, x)
}

// SecondDerivative returns f(x), f'(x) and f''(x).
func SecondDerivative(f func(dual.HyperDual64) dual.HyperDual64, x float64) (value, d1, d2 float64) {
	return derive.SecondDerivative(f, x)
}

// Directional returns f(x) and the derivative of f at x along dir.
func Directional(f func([]dual.Dual64) dual.Dual64, x, dir []float64) (value, d float64, err error) {
	return derive.Directional(f, x, dir)
}

// Gradient returns f(x) and ∇f(x).
func Gradient(f func([]dual.Dual64) dual.Dual64, x []float64, opts ...Option) (float64, []float64, error) {
	return derive.Gradient(f, x, opts...)
}

// Jacobian returns f(x) and the Jacobian of f at x.
func Jacobian(f func([]dual.Dual64) []dual.Dual64, x []float64, opts ...Option) ([]float64, *mat.Dense, error) {
	return derive.Jacobian(f, x, opts...)
}

// Partial2 returns ∂²f/∂x_i∂x_j at x.
func Partial2(f func([]dual.HyperDual64) dual.HyperDual64, x []float64, i, j int) (float64, error) {
	return derive.Partial2(f, x, i, j)
}

// Hessian returns f(x), ∇f(x) and the Hessian of f at x.
func Hessian(f func([]dual.HyperDual64) dual.HyperDual64, x []float64, opts ...Option) (float64, []float64, *mat.SymDense, error) {
	return derive.Hessian(f, x, opts...)
}

// ErrNoConvergence is returned when Newton iteration fails.
var ErrNoConvergence = derive.ErrNoConvergence

// NewtonSettings controls Newton iteration.
type NewtonSettings = derive.NewtonSettings

// DefaultNewtonSettings returns Tolerance 1e-12 and 50 iterations.
func DefaultNewtonSettings() NewtonSettings {
	return derive.DefaultNewtonSettings()
}

// Newton finds a root of f starting from x0 using exact derivatives.
func Newton(f func(dual.Dual64) dual.Dual64, x0 float64, settings NewtonSettings) (float64, int, error) {
	return derive.Newton(f, x0, settings)
}
