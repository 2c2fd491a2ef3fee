package dual

import (
	"fmt"
	"math"
)

// Dual is a first-order dual number v + dε with ε² = 0.
//
// Dual values are immutable: every operation returns a new value. Two Dual
// values compare equal with == when both parts are equal.
type Dual[T Float] struct {
	re  T
	eps T
}

// Dual64 is a dual number over float64.
type Dual64 = Dual[float64]

// Dual32 is a dual number over float32.
type Dual32 = Dual[float32]

var (
	_ Number[Dual64] = Dual64{}
	_ Number[Dual32] = Dual32{}
)

// New creates a dual number with value v and derivative d.
func New[T Float](v, d T) Dual[T] {
	return Dual[T]{re: v, eps: d}
}

// FromValue creates a constant: derivative 0.
func FromValue[T Float](v T) Dual[T] {
	return Dual[T]{re: v}
}

// Variable creates the variable being differentiated: derivative 1.
func Variable[T Float](v T) Dual[T] {
	return Dual[T]{re: v, eps: 1}
}

// Value returns the real part.
func (a Dual[T]) Value() T { return a.re }

// Derivative returns the tangent part.
func (a Dual[T]) Derivative() T { return a.eps }

// Re returns the real part as float64.
func (a Dual[T]) Re() float64 { return float64(a.re) }

// Lift returns c as a constant. The receiver is ignored.
func (a Dual[T]) Lift(c float64) Dual[T] { return Dual[T]{re: T(c)} }

// String formats the number as "v + dε".
func (a Dual[T]) String() string {
	return fmt.Sprintf("%v + %vε", a.re, a.eps)
}

// Add returns a + b.
func (a Dual[T]) Add(b Dual[T]) Dual[T] {
	return Dual[T]{re: a.re + b.re, eps: a.eps + b.eps}
}

// Sub returns a - b.
func (a Dual[T]) Sub(b Dual[T]) Dual[T] {
	return Dual[T]{re: a.re - b.re, eps: a.eps - b.eps}
}

// Mul returns a·b by the product rule.
func (a Dual[T]) Mul(b Dual[T]) Dual[T] {
	return Dual[T]{re: a.re * b.re, eps: a.eps*b.re + a.re*b.eps}
}

// Div returns a/b by the quotient rule.
func (a Dual[T]) Div(b Dual[T]) Dual[T] {
	return Dual[T]{re: a.re / b.re, eps: (a.eps*b.re - a.re*b.eps) / (b.re * b.re)}
}

// Neg returns -a.
func (a Dual[T]) Neg() Dual[T] {
	return Dual[T]{re: -a.re, eps: -a.eps}
}

// AddF returns a + c with c treated as a constant.
func (a Dual[T]) AddF(c float64) Dual[T] { return Dual[T]{re: a.re + T(c), eps: a.eps} }

// SubF returns a - c with c treated as a constant.
func (a Dual[T]) SubF(c float64) Dual[T] { return Dual[T]{re: a.re - T(c), eps: a.eps} }

// MulF scales every component by c.
func (a Dual[T]) MulF(c float64) Dual[T] { return Dual[T]{re: a.re * T(c), eps: a.eps * T(c)} }

// DivF divides every component by c.
func (a Dual[T]) DivF(c float64) Dual[T] { return Dual[T]{re: a.re / T(c), eps: a.eps / T(c)} }

// Exp returns e^a.
func (a Dual[T]) Exp() Dual[T] {
	e := T(math.Exp(float64(a.re)))
	return Dual[T]{re: e, eps: e * a.eps}
}

// Ln returns the natural logarithm of a.
func (a Dual[T]) Ln() Dual[T] {
	return Dual[T]{re: T(math.Log(float64(a.re))), eps: a.eps / a.re}
}

// Ln1p returns ln(1 + a), accurate for small a.
func (a Dual[T]) Ln1p() Dual[T] {
	return Dual[T]{re: T(math.Log1p(float64(a.re))), eps: a.eps / (1 + a.re)}
}

// Sin returns the sine of a.
func (a Dual[T]) Sin() Dual[T] {
	x := float64(a.re)
	return Dual[T]{re: T(math.Sin(x)), eps: T(math.Cos(x)) * a.eps}
}

// Cos returns the cosine of a.
func (a Dual[T]) Cos() Dual[T] {
	x := float64(a.re)
	return Dual[T]{re: T(math.Cos(x)), eps: -T(math.Sin(x)) * a.eps}
}

// Sqrt returns the square root of a.
func (a Dual[T]) Sqrt() Dual[T] {
	s := T(math.Sqrt(float64(a.re)))
	return Dual[T]{re: s, eps: a.eps / (2 * s)}
}

// Powi returns a^k. Powi(0) is the constant 1.
func (a Dual[T]) Powi(k int) Dual[T] {
	switch k {
	case 0:
		return Dual[T]{re: 1}
	case 1:
		return a
	}
	x := float64(a.re)
	return a.chain(powi(x, k), float64(k)*powiSub(x, k, 1))
}

// Recip returns 1/a.
func (a Dual[T]) Recip() Dual[T] {
	return Dual[T]{re: 1 / a.re, eps: -a.eps / (a.re * a.re)}
}

// Tan returns the tangent of a.
func (a Dual[T]) Tan() Dual[T] {
	t := math.Tan(float64(a.re))
	return a.chain(t, 1+t*t)
}

// Sinh returns the hyperbolic sine of a.
func (a Dual[T]) Sinh() Dual[T] {
	x := float64(a.re)
	return a.chain(math.Sinh(x), math.Cosh(x))
}

// Cosh returns the hyperbolic cosine of a.
func (a Dual[T]) Cosh() Dual[T] {
	x := float64(a.re)
	return a.chain(math.Cosh(x), math.Sinh(x))
}

// Tanh returns the hyperbolic tangent of a.
func (a Dual[T]) Tanh() Dual[T] {
	t := math.Tanh(float64(a.re))
	return a.chain(t, 1-t*t)
}

// Expm1 returns e^a - 1, accurate for small a.
func (a Dual[T]) Expm1() Dual[T] {
	x := float64(a.re)
	return a.chain(math.Expm1(x), math.Exp(x))
}

// Cbrt returns the cube root of a.
func (a Dual[T]) Cbrt() Dual[T] {
	x := float64(a.re)
	c := math.Cbrt(x)
	return a.chain(c, c/(3*x))
}

// Abs returns |a|. The sign is taken from the sign bit, so Abs(+0) keeps the
// tangent and Abs(-0) negates it.
func (a Dual[T]) Abs() Dual[T] {
	if math.Signbit(float64(a.re)) {
		return a.Neg()
	}
	return a
}

// Powf returns a^n for a real exponent. Powf(0) is the constant 1 and
// Powf(1) returns a unchanged.
func (a Dual[T]) Powf(n float64) Dual[T] {
	switch n {
	case 0:
		return Dual[T]{re: 1}
	case 1:
		return a
	}
	x := float64(a.re)
	return a.chain(math.Pow(x, n), n*math.Pow(x, n-1))
}

// chain applies f with f(re) = f0 and f'(re) = f1.
func (a Dual[T]) chain(f0, f1 float64) Dual[T] {
	return Dual[T]{re: T(f0), eps: T(f1) * a.eps}
}
