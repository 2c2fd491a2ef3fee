// Package dual implements forward-mode automatic differentiation with dual numbers.
//
// A dual number carries a real part together with one or more tangent parts.
// Arithmetic on dual numbers propagates tangents with the chain rule, so a
// function evaluated on a seeded dual number returns its value and its exact
// derivative at the same time.
//
// Types:
//   - Real: plain float64 implementing the Number capability (value only)
//   - Dual[T]: first-order dual number (value + one tangent)
//   - Dual2[T]: second-order dual number in a single direction (value, first, second)
//   - HyperDual[T]: two independent tangents plus the mixed second-order term
//
// Generic formulas are written once against Number[N] and instantiated with
// any of the types above:
//
//	func f[N dual.Number[N]](x N) N {
//	    return x.Exp().Div(x.Sin().Powi(3).Add(x.Cos().Powi(3)).Sqrt())
//	}
//
//	y := f(dual.Real(1.5))             // value
//	dy := f(dual.Variable(1.5))        // value + df/dx
//	d2y := f(dual.Dual2FromValue(1.5).Derivative()) // value, df/dx and d²f/dx²
//
// Cost model: one evaluation with a first-order dual number yields one
// directional derivative. A full gradient over n inputs needs n evaluations
// (see package derive). Reverse mode is not provided.
//
// Domain violations (division by zero, log of a non-positive number, sqrt of
// a negative number) propagate as IEEE-754 Inf/NaN through every channel,
// exactly like plain float arithmetic. No operation returns an error or panics.
package dual

// Float is the constraint for the base type of dual numbers.
type Float interface {
	~float32 | ~float64
}

// Number is the capability a generic formula codes against to stay
// differentiable by substitution.
//
// The type parameter N is the implementing type itself. The Go zero value of
// every implementation is the additive zero.
type Number[N any] interface {
	// Field operations.
	Add(N) N
	Sub(N) N
	Mul(N) N
	Div(N) N
	Neg() N

	// Mixed operations with a plain real treated as a constant.
	AddF(float64) N
	SubF(float64) N
	MulF(float64) N
	DivF(float64) N

	// Elementary functions.
	Exp() N
	Ln() N
	Ln1p() N
	Sin() N
	Cos() N
	Sqrt() N
	Powi(int) N
	Recip() N

	// Lift converts a plain real into the domain of N as a constant.
	// The receiver is ignored.
	Lift(float64) N

	// Re returns the real part as float64.
	Re() float64
}

// Zero returns the additive zero of N.
func Zero[N Number[N]]() N {
	var z N
	return z
}

// Lift converts c into a constant of type N.
func Lift[N Number[N]](c float64) N {
	var z N
	return z.Lift(c)
}

// Constants lifts every element of xs into a constant of type N.
func Constants[N Number[N]](xs []float64) []N {
	out := make([]N, len(xs))
	for i, x := range xs {
		out[i] = Lift[N](x)
	}
	return out
}

// Sum adds all elements of xs, starting from zero.
func Sum[N Number[N]](xs []N) N {
	var s N
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// Reals extracts the real parts of xs.
func Reals[N Number[N]](xs []N) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Re()
	}
	return out
}
