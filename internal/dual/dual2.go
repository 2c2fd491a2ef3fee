package dual

import (
	"fmt"
	"math"
)

// Dual2 is a second-order dual number in a single direction. It carries the
// value, the first derivative and the second derivative of a function of one
// variable.
type Dual2[T Float] struct {
	re T
	v1 T
	v2 T
}

var _ Number[Dual2[float64]] = Dual2[float64]{}

// NewDual2 creates a second-order dual number from its components.
func NewDual2[T Float](v, d1, d2 T) Dual2[T] {
	return Dual2[T]{re: v, v1: d1, v2: d2}
}

// Dual2FromValue creates a constant.
func Dual2FromValue[T Float](v T) Dual2[T] {
	return Dual2[T]{re: v}
}

// Derivative returns a copy with the first derivative seeded to 1, so that
// f(Dual2FromValue(x).Derivative()) yields f(x), f'(x) and f''(x).
func (a Dual2[T]) Derivative() Dual2[T] {
	a.v1 = 1
	return a
}

// Value returns the real part.
func (a Dual2[T]) Value() T { return a.re }

// First returns the first derivative.
func (a Dual2[T]) First() T { return a.v1 }

// Second returns the second derivative.
func (a Dual2[T]) Second() T { return a.v2 }

// Re returns the real part as float64.
func (a Dual2[T]) Re() float64 { return float64(a.re) }

// Lift returns c as a constant. The receiver is ignored.
func (a Dual2[T]) Lift(c float64) Dual2[T] { return Dual2[T]{re: T(c)} }

// String formats the number as "(value, first, second)".
func (a Dual2[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", a.re, a.v1, a.v2)
}

// Add returns a + b.
func (a Dual2[T]) Add(b Dual2[T]) Dual2[T] {
	return Dual2[T]{re: a.re + b.re, v1: a.v1 + b.v1, v2: a.v2 + b.v2}
}

// Sub returns a - b.
func (a Dual2[T]) Sub(b Dual2[T]) Dual2[T] {
	return Dual2[T]{re: a.re - b.re, v1: a.v1 - b.v1, v2: a.v2 - b.v2}
}

// Mul returns a·b by the product rule.
func (a Dual2[T]) Mul(b Dual2[T]) Dual2[T] {
	return Dual2[T]{
		re: a.re * b.re,
		v1: a.v1*b.re + a.re*b.v1,
		v2: a.v2*b.re + 2*a.v1*b.v1 + a.re*b.v2,
	}
}

// Div returns a/b. The value channel is computed as a plain quotient, the
// tangents as a * (1/b).
func (a Dual2[T]) Div(b Dual2[T]) Dual2[T] {
	q := a.Mul(b.Recip())
	q.re = a.re / b.re
	return q
}

// Neg returns -a.
func (a Dual2[T]) Neg() Dual2[T] { return Dual2[T]{re: -a.re, v1: -a.v1, v2: -a.v2} }

// AddF returns a + c with c treated as a constant.
func (a Dual2[T]) AddF(c float64) Dual2[T] {
	a.re += T(c)
	return a
}

// SubF returns a - c with c treated as a constant.
func (a Dual2[T]) SubF(c float64) Dual2[T] {
	a.re -= T(c)
	return a
}

// MulF scales every component by c.
func (a Dual2[T]) MulF(c float64) Dual2[T] {
	k := T(c)
	return Dual2[T]{re: a.re * k, v1: a.v1 * k, v2: a.v2 * k}
}

// DivF divides every component by c.
func (a Dual2[T]) DivF(c float64) Dual2[T] {
	k := T(c)
	return Dual2[T]{re: a.re / k, v1: a.v1 / k, v2: a.v2 / k}
}

// Exp returns e^a.
func (a Dual2[T]) Exp() Dual2[T] { return a.chain(expT(a.Re())) }

// Ln returns the natural logarithm of a.
func (a Dual2[T]) Ln() Dual2[T] { return a.chain(lnT(a.Re())) }

// Ln1p returns ln(1 + a), accurate for small a.
func (a Dual2[T]) Ln1p() Dual2[T] { return a.chain(ln1pT(a.Re())) }

// Sin returns the sine of a.
func (a Dual2[T]) Sin() Dual2[T] { return a.chain(sinT(a.Re())) }

// Cos returns the cosine of a.
func (a Dual2[T]) Cos() Dual2[T] { return a.chain(cosT(a.Re())) }

// Sqrt returns the square root of a.
func (a Dual2[T]) Sqrt() Dual2[T] { return a.chain(sqrtT(a.Re())) }

// Recip returns 1/a.
func (a Dual2[T]) Recip() Dual2[T] { return a.chain(recipT(a.Re())) }

// Tan returns the tangent of a.
func (a Dual2[T]) Tan() Dual2[T] { return a.chain(tanT(a.Re())) }

// Sinh returns the hyperbolic sine of a.
func (a Dual2[T]) Sinh() Dual2[T] { return a.chain(sinhT(a.Re())) }

// Cosh returns the hyperbolic cosine of a.
func (a Dual2[T]) Cosh() Dual2[T] { return a.chain(coshT(a.Re())) }

// Tanh returns the hyperbolic tangent of a.
func (a Dual2[T]) Tanh() Dual2[T] { return a.chain(tanhT(a.Re())) }

// Expm1 returns e^a - 1, accurate for small a.
func (a Dual2[T]) Expm1() Dual2[T] { return a.chain(expm1T(a.Re())) }

// Cbrt returns the cube root of a.
func (a Dual2[T]) Cbrt() Dual2[T] { return a.chain(cbrtT(a.Re())) }

// Powi returns a^k. Powi(0) is the constant 1.
func (a Dual2[T]) Powi(k int) Dual2[T] {
	switch k {
	case 0:
		return Dual2[T]{re: 1}
	case 1:
		return a
	}
	return a.chain(powiT(a.Re(), k))
}

// Powf returns a^n for a real exponent. Powf(0) is the constant 1 and
// Powf(1) returns a unchanged.
func (a Dual2[T]) Powf(n float64) Dual2[T] {
	switch n {
	case 0:
		return Dual2[T]{re: 1}
	case 1:
		return a
	}
	return a.chain(powfT(a.Re(), n))
}

// Abs returns |a| using the sign bit of the real part.
func (a Dual2[T]) Abs() Dual2[T] {
	if math.Signbit(a.Re()) {
		return a.Neg()
	}
	return a
}

// chain applies f given f(re), f'(re) and f''(re).
func (a Dual2[T]) chain(f0, f1, f2 float64) Dual2[T] {
	d1, d2 := T(f1), T(f2)
	return Dual2[T]{re: T(f0), v1: d1 * a.v1, v2: d1*a.v2 + d2*a.v1*a.v1}
}
