package dual

import "math"

// Real is a plain float64 implementing Number. Evaluating a generic formula
// with Real computes only the value.
type Real float64

var _ Number[Real] = Real(0)

func (x Real) Add(y Real) Real     { return x + y }
func (x Real) Sub(y Real) Real     { return x - y }
func (x Real) Mul(y Real) Real     { return x * y }
func (x Real) Div(y Real) Real     { return x / y }
func (x Real) Neg() Real           { return -x }
func (x Real) AddF(c float64) Real { return x + Real(c) }
func (x Real) SubF(c float64) Real { return x - Real(c) }
func (x Real) MulF(c float64) Real { return x * Real(c) }
func (x Real) DivF(c float64) Real { return x / Real(c) }

func (x Real) Exp() Real   { return Real(math.Exp(float64(x))) }
func (x Real) Ln() Real    { return Real(math.Log(float64(x))) }
func (x Real) Ln1p() Real  { return Real(math.Log1p(float64(x))) }
func (x Real) Sin() Real   { return Real(math.Sin(float64(x))) }
func (x Real) Cos() Real   { return Real(math.Cos(float64(x))) }
func (x Real) Sqrt() Real  { return Real(math.Sqrt(float64(x))) }
func (x Real) Recip() Real { return 1 / x }

// Powi returns x^k. Powi(0) is 1 for every x, including NaN.
func (x Real) Powi(k int) Real { return Real(powi(float64(x), k)) }

func (x Real) Tan() Real           { return Real(math.Tan(float64(x))) }
func (x Real) Sinh() Real          { return Real(math.Sinh(float64(x))) }
func (x Real) Cosh() Real          { return Real(math.Cosh(float64(x))) }
func (x Real) Tanh() Real          { return Real(math.Tanh(float64(x))) }
func (x Real) Expm1() Real         { return Real(math.Expm1(float64(x))) }
func (x Real) Cbrt() Real          { return Real(math.Cbrt(float64(x))) }
func (x Real) Abs() Real           { return Real(math.Abs(float64(x))) }
func (x Real) Powf(n float64) Real { return Real(math.Pow(float64(x), n)) }

func (x Real) Lift(c float64) Real { return Real(c) }
func (x Real) Re() float64         { return float64(x) }

// powi computes x^k by binary exponentiation, with 1/x^|k| for negative k.
func powi(x float64, k int) float64 {
	return powiSub(x, k, 0)
}

// powiSub computes x^(k-s) for s >= 0 without forming k-s as an int, so
// k = math.MinInt does not overflow. For k < s the magnitude s-k is taken in
// uint arithmetic, where it always fits.
func powiSub(x float64, k, s int) float64 {
	if k >= s {
		return powu(x, uint(k)-uint(s))
	}
	return 1 / powu(x, uint(s)-uint(k))
}

func powu(x float64, u uint) float64 {
	r := 1.0
	for u > 0 {
		if u&1 == 1 {
			r *= x
		}
		x *= x
		u >>= 1
	}
	return r
}
