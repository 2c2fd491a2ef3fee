package dual

import (
	"fmt"
	"math"
)

// HyperDual is a hyper-dual number v + e1·ε1 + e2·ε2 + e12·ε1ε2 with
// ε1² = ε2² = 0. Seeding both channels along the same input yields the pure
// second derivative; seeding them along different inputs yields the mixed
// partial derivative. The two first-order channels never mix unless both
// are seeded.
type HyperDual[T Float] struct {
	re  T
	e1  T
	e2  T
	e12 T
}

// HyperDual64 is a hyper-dual number over float64.
type HyperDual64 = HyperDual[float64]

var _ Number[HyperDual64] = HyperDual64{}

// NewHyper creates a hyper-dual number from its components.
func NewHyper[T Float](v, e1, e2, e12 T) HyperDual[T] {
	return HyperDual[T]{re: v, e1: e1, e2: e2, e12: e12}
}

// HyperFromValue creates a constant: all tangents zero.
func HyperFromValue[T Float](v T) HyperDual[T] {
	return HyperDual[T]{re: v}
}

// Derivative1 returns a copy with ε1 seeded to 1.
func (a HyperDual[T]) Derivative1() HyperDual[T] {
	a.e1 = 1
	return a
}

// Derivative2 returns a copy with ε2 seeded to 1.
func (a HyperDual[T]) Derivative2() HyperDual[T] {
	a.e2 = 1
	return a
}

// Derivative returns a copy with both channels seeded to 1. For a function
// of one variable, Eps1 of the result holds f' and Eps1Eps2 holds f''.
func (a HyperDual[T]) Derivative() HyperDual[T] {
	a.e1, a.e2 = 1, 1
	return a
}

// Value returns the real part.
func (a HyperDual[T]) Value() T { return a.re }

// Eps1 returns the ε1 tangent.
func (a HyperDual[T]) Eps1() T { return a.e1 }

// Eps2 returns the ε2 tangent.
func (a HyperDual[T]) Eps2() T { return a.e2 }

// Eps1Eps2 returns the second-order ε1ε2 term.
func (a HyperDual[T]) Eps1Eps2() T { return a.e12 }

// Re returns the real part as float64.
func (a HyperDual[T]) Re() float64 { return float64(a.re) }

// Lift returns c as a constant. The receiver is ignored.
func (a HyperDual[T]) Lift(c float64) HyperDual[T] { return HyperDual[T]{re: T(c)} }

// String formats the number as "v + e1ε1 + e2ε2 + e12ε1ε2".
func (a HyperDual[T]) String() string {
	return fmt.Sprintf("%v + %vε1 + %vε2 + %vε1ε2", a.re, a.e1, a.e2, a.e12)
}

// Add returns a + b.
func (a HyperDual[T]) Add(b HyperDual[T]) HyperDual[T] {
	return HyperDual[T]{re: a.re + b.re, e1: a.e1 + b.e1, e2: a.e2 + b.e2, e12: a.e12 + b.e12}
}

// Sub returns a - b.
func (a HyperDual[T]) Sub(b HyperDual[T]) HyperDual[T] {
	return HyperDual[T]{re: a.re - b.re, e1: a.e1 - b.e1, e2: a.e2 - b.e2, e12: a.e12 - b.e12}
}

// Mul returns a·b by the product rule.
func (a HyperDual[T]) Mul(b HyperDual[T]) HyperDual[T] {
	return HyperDual[T]{
		re:  a.re * b.re,
		e1:  a.e1*b.re + a.re*b.e1,
		e2:  a.e2*b.re + a.re*b.e2,
		e12: a.e12*b.re + a.e1*b.e2 + a.e2*b.e1 + a.re*b.e12,
	}
}

// Div returns a/b. The value channel is computed as a plain quotient, the
// tangents as a * (1/b).
func (a HyperDual[T]) Div(b HyperDual[T]) HyperDual[T] {
	q := a.Mul(b.Recip())
	q.re = a.re / b.re
	return q
}

// Neg returns -a.
func (a HyperDual[T]) Neg() HyperDual[T] {
	return HyperDual[T]{re: -a.re, e1: -a.e1, e2: -a.e2, e12: -a.e12}
}

// AddF returns a + c with c treated as a constant.
func (a HyperDual[T]) AddF(c float64) HyperDual[T] {
	a.re += T(c)
	return a
}

// SubF returns a - c with c treated as a constant.
func (a HyperDual[T]) SubF(c float64) HyperDual[T] {
	a.re -= T(c)
	return a
}

// MulF scales every component by c.
func (a HyperDual[T]) MulF(c float64) HyperDual[T] {
	k := T(c)
	return HyperDual[T]{re: a.re * k, e1: a.e1 * k, e2: a.e2 * k, e12: a.e12 * k}
}

// DivF divides every component by c.
func (a HyperDual[T]) DivF(c float64) HyperDual[T] {
	k := T(c)
	return HyperDual[T]{re: a.re / k, e1: a.e1 / k, e2: a.e2 / k, e12: a.e12 / k}
}

// Exp returns e^a.
func (a HyperDual[T]) Exp() HyperDual[T] { return a.chain(expT(a.Re())) }

// Ln returns the natural logarithm of a.
func (a HyperDual[T]) Ln() HyperDual[T] { return a.chain(lnT(a.Re())) }

// Ln1p returns ln(1 + a), accurate for small a.
func (a HyperDual[T]) Ln1p() HyperDual[T] { return a.chain(ln1pT(a.Re())) }

// Sin returns the sine of a.
func (a HyperDual[T]) Sin() HyperDual[T] { return a.chain(sinT(a.Re())) }

// Cos returns the cosine of a.
func (a HyperDual[T]) Cos() HyperDual[T] { return a.chain(cosT(a.Re())) }

// Sqrt returns the square root of a.
func (a HyperDual[T]) Sqrt() HyperDual[T] { return a.chain(sqrtT(a.Re())) }

// Recip returns 1/a.
func (a HyperDual[T]) Recip() HyperDual[T] { return a.chain(recipT(a.Re())) }

// Tan returns the tangent of a.
func (a HyperDual[T]) Tan() HyperDual[T] { return a.chain(tanT(a.Re())) }

// Sinh returns the hyperbolic sine of a.
func (a HyperDual[T]) Sinh() HyperDual[T] { return a.chain(sinhT(a.Re())) }

// Cosh returns the hyperbolic cosine of a.
func (a HyperDual[T]) Cosh() HyperDual[T] { return a.chain(coshT(a.Re())) }

// Tanh returns the hyperbolic tangent of a.
func (a HyperDual[T]) Tanh() HyperDual[T] { return a.chain(tanhT(a.Re())) }

// Expm1 returns e^a - 1, accurate for small a.
func (a HyperDual[T]) Expm1() HyperDual[T] { return a.chain(expm1T(a.Re())) }

// Cbrt returns the cube root of a.
func (a HyperDual[T]) Cbrt() HyperDual[T] { return a.chain(cbrtT(a.Re())) }

// Powi returns a^k. Powi(0) is the constant 1.
func (a HyperDual[T]) Powi(k int) HyperDual[T] {
	switch k {
	case 0:
		return HyperDual[T]{re: 1}
	case 1:
		return a
	}
	return a.chain(powiT(a.Re(), k))
}

// Powf returns a^n for a real exponent. Powf(0) is the constant 1 and
// Powf(1) returns a unchanged.
func (a HyperDual[T]) Powf(n float64) HyperDual[T] {
	switch n {
	case 0:
		return HyperDual[T]{re: 1}
	case 1:
		return a
	}
	return a.chain(powfT(a.Re(), n))
}

// Abs returns |a| using the sign bit of the real part.
func (a HyperDual[T]) Abs() HyperDual[T] {
	if math.Signbit(a.Re()) {
		return a.Neg()
	}
	return a
}

// chain applies f given f(re), f'(re) and f''(re):
//
//	ε1   -> f'·e1
//	ε2   -> f'·e2
//	ε1ε2 -> f'·e12 + f''·e1·e2
func (a HyperDual[T]) chain(f0, f1, f2 float64) HyperDual[T] {
	d1, d2 := T(f1), T(f2)
	return HyperDual[T]{
		re:  T(f0),
		e1:  d1 * a.e1,
		e2:  d1 * a.e2,
		e12: d1*a.e12 + d2*a.e1*a.e2,
	}
}
