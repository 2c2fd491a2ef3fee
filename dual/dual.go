// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides dual numbers for forward-mode automatic differentiation.
//
// A function written once against the Number capability runs unchanged on
// plain reals (value only) and on dual numbers (value and exact derivative).
//
// Example:
//
//	import "github.com/born-ml/dualnum/dual"
//
//	func f[N dual.Number[N]](x N) N {
//	    return x.Exp().Div(x.Sin().Powi(3).Add(x.Cos().Powi(3)).Sqrt())
//	}
//
//	func main() {
//	    y := f(dual.Real(1.5))        // f(1.5)
//	    dy := f(dual.Variable(1.5))   // f(1.5) and f'(1.5)
//	    fmt.Println(y, dy.Derivative())
//
//	    h := f(dual.HyperFromValue(1.5).Derivative())
//	    fmt.Println(h.Eps1Eps2())     // f''(1.5)
//	}
//
// Domain violations propagate as Inf/NaN; nothing returns an error.
package dual

import (
	"github.com/born-ml/dualnum/internal/dual"
)

// Float is the constraint for the base type of dual numbers.
type Float = dual.Float

// Number is the capability a differentiable generic formula codes against.
type Number[N any] = dual.Number[N]

// Real is a plain float64 implementing Number.
type Real = dual.Real

// Dual is a first-order dual number.
type Dual[T Float] = dual.Dual[T]

// Dual64 is a first-order dual number over float64.
type Dual64 = dual.Dual64

// Dual32 is a first-order dual number over float32.
type Dual32 = dual.Dual32

// Dual2 is a second-order dual number in a single direction.
type Dual2[T Float] = dual.Dual2[T]

// HyperDual carries two first-order tangents and their mixed second-order term.
type HyperDual[T Float] = dual.HyperDual[T]

// HyperDual64 is a hyper-dual number over float64.
type HyperDual64 = dual.HyperDual64

// New creates a dual number with value v and derivative d.
func New[T Float](v, d T) Dual[T] {
	return dual.New(v, d)
}

// FromValue creates a constant dual number.
func FromValue[T Float](v T) Dual[T] {
	return dual.FromValue(v)
}

// Variable creates the variable being differentiated (derivative 1).
func Variable[T Float](v T) Dual[T] {
	return dual.Variable(v)
}

// NewDual2 creates a second-order dual number from its components.
func NewDual2[T Float](v, d1, d2 T) Dual2[T] {
	return dual.NewDual2(v, d1, d2)
}

// Dual2FromValue creates a constant second-order dual number.
func Dual2FromValue[T Float](v T) Dual2[T] {
	return dual.Dual2FromValue(v)
}

// NewHyper creates a hyper-dual number from its components.
func NewHyper[T Float](v, e1, e2, e12 T) HyperDual[T] {
	return dual.NewHyper(v, e1, e2, e12)
}

// HyperFromValue creates a constant hyper-dual number.
func HyperFromValue[T Float](v T) HyperDual[T] {
	return dual.HyperFromValue(v)
}

// Zero returns the additive zero of N.
func Zero[N Number[N]]() N {
	return dual.Zero[N]()
}

// Lift converts c into a constant of type N.
func Lift[N Number[N]](c float64) N {
	return dual.Lift[N](c)
}

// Constants lifts every element of xs into a constant of type N.
func Constants[N Number[N]](xs []float64) []N {
	return dual.Constants[N](xs)
}

// Sum adds all elements of xs.
func Sum[N Number[N]](xs []N) N {
	return dual.Sum(xs)
}

// Reals extracts the real parts of xs.
func Reals[N Number[N]](xs []N) []float64 {
	return dual.Reals(xs)
}
