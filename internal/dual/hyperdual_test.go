package dual_test

import (
	"math"
	"testing"

	"github.com/born-ml/dualnum/internal/dual"
	"github.com/stretchr/testify/assert"
)

// mixed is f(x, y) = exp(x·y) · sin(x) / y + ln(x) · sqrt(y).
func mixed[N dual.Number[N]](x, y N) N {
	return x.Mul(y).Exp().Mul(x.Sin()).Div(y).Add(x.Ln().Mul(y.Sqrt()))
}

// centralMixed estimates ∂²f/∂x∂y with central differences.
func centralMixed(f func(x, y float64) float64, x, y, h float64) float64 {
	return (f(x+h, y+h) - f(x+h, y-h) - f(x-h, y+h) + f(x-h, y-h)) / (4 * h * h)
}

// centralSecond estimates f'' with central differences.
func centralSecond(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - 2*f(x) + f(x-h)) / (h * h)
}

func TestHyperDual_Constructors(t *testing.T) {
	c := dual.HyperFromValue(2.0)
	assert.Equal(t, dual.NewHyper(2.0, 0, 0, 0), c)

	d := c.Derivative()
	assert.Equal(t, 1.0, d.Eps1())
	assert.Equal(t, 1.0, d.Eps2())
	assert.Equal(t, 0.0, d.Eps1Eps2())

	assert.Equal(t, dual.NewHyper(2.0, 1, 0, 0), c.Derivative1())
	assert.Equal(t, dual.NewHyper(2.0, 0, 1, 0), c.Derivative2())

	// Seeding returns a copy.
	assert.Equal(t, 0.0, c.Eps1())
}

func TestHyperDual_MixedPartial(t *testing.T) {
	f := func(x, y float64) float64 {
		return float64(mixed(dual.Real(x), dual.Real(y)))
	}

	points := [][2]float64{{0.5, 1.2}, {1.1, 0.4}, {2.0, 2.0}}
	for _, p := range points {
		x := dual.HyperFromValue(p[0]).Derivative1()
		y := dual.HyperFromValue(p[1]).Derivative2()
		z := mixed(x, y)

		assert.Equal(t, f(p[0], p[1]), z.Value())

		numeric := centralMixed(f, p[0], p[1], 1e-4)
		assert.InDelta(t, numeric, z.Eps1Eps2(), 1e-6*math.Max(1, math.Abs(numeric)), "mixed partial at %v", p)

		// ε1 holds ∂f/∂x, ε2 holds ∂f/∂y; both agree with first-order duals.
		dx := mixed(dual.Variable(p[0]), dual.FromValue(p[1]))
		dy := mixed(dual.FromValue(p[0]), dual.Variable(p[1]))
		assert.InDelta(t, dx.Derivative(), z.Eps1(), 1e-12*math.Max(1, math.Abs(dx.Derivative())))
		assert.InDelta(t, dy.Derivative(), z.Eps2(), 1e-12*math.Max(1, math.Abs(dy.Derivative())))
	}
}

func TestHyperDual_PureSecond(t *testing.T) {
	points := []float64{0.4, 1.0, 1.5}

	for _, x0 := range points {
		z := probe(dual.HyperFromValue(x0).Derivative())
		d2 := probe(dual.Dual2FromValue(x0).Derivative())

		f := func(x float64) float64 { return float64(probe(dual.Real(x))) }
		numeric := centralSecond(f, x0, 1e-4)

		assert.InDelta(t, numeric, z.Eps1Eps2(), 1e-5*math.Max(1, math.Abs(numeric)), "f''(%v)", x0)
		assert.InDelta(t, z.Eps1Eps2(), d2.Second(), 1e-12*math.Max(1, math.Abs(d2.Second())))
		assert.InDelta(t, z.Eps1(), d2.First(), 1e-12*math.Max(1, math.Abs(d2.First())))
		assert.Equal(t, z.Eps1(), z.Eps2())
	}
}

func TestHyperDual_ChannelIsolation(t *testing.T) {
	x := dual.HyperFromValue(0.8).Derivative1()
	y := dual.HyperFromValue(1.3)

	z := mixed(x, y)
	assert.NotZero(t, z.Eps1())
	assert.Equal(t, 0.0, z.Eps2())
	assert.Equal(t, 0.0, z.Eps1Eps2())

	c := mixed(dual.HyperFromValue(0.8), y)
	assert.Equal(t, dual.HyperFromValue(c.Value()), c)
}

func TestHyperDual_ElementarySecondDerivatives(t *testing.T) {
	cases := []struct {
		name string
		f    func(dual.HyperDual64) dual.HyperDual64
		d1   func(float64) float64
		d2   func(float64) float64
	}{
		{"exp", dual.HyperDual64.Exp, math.Exp, math.Exp},
		{"ln", dual.HyperDual64.Ln, func(x float64) float64 { return 1 / x }, func(x float64) float64 { return -1 / (x * x) }},
		{"ln_1p", dual.HyperDual64.Ln1p, func(x float64) float64 { return 1 / (1 + x) }, func(x float64) float64 { return -1 / ((1 + x) * (1 + x)) }},
		{"sin", dual.HyperDual64.Sin, math.Cos, func(x float64) float64 { return -math.Sin(x) }},
		{"cos", dual.HyperDual64.Cos, func(x float64) float64 { return -math.Sin(x) }, func(x float64) float64 { return -math.Cos(x) }},
		{"sqrt", dual.HyperDual64.Sqrt, func(x float64) float64 { return 0.5 / math.Sqrt(x) }, func(x float64) float64 { return -0.25 / (x * math.Sqrt(x)) }},
		{"recip", dual.HyperDual64.Recip, func(x float64) float64 { return -1 / (x * x) }, func(x float64) float64 { return 2 / (x * x * x) }},
		{"powi4", func(x dual.HyperDual64) dual.HyperDual64 { return x.Powi(4) },
			func(x float64) float64 { return 4 * x * x * x }, func(x float64) float64 { return 12 * x * x }},
		{"tanh", dual.HyperDual64.Tanh, func(x float64) float64 { return 1 - math.Tanh(x)*math.Tanh(x) },
			func(x float64) float64 { t := math.Tanh(x); return -2 * t * (1 - t*t) }},
		{"cbrt", dual.HyperDual64.Cbrt, func(x float64) float64 { return math.Cbrt(x) / (3 * x) },
			func(x float64) float64 { return -2 * math.Cbrt(x) / (9 * x * x) }},
	}

	for _, tc := range cases {
		x := 0.7
		z := tc.f(dual.HyperFromValue(x).Derivative())
		assert.InDelta(t, tc.d1(x), z.Eps1(), 1e-12, tc.name)
		assert.InDelta(t, tc.d2(x), z.Eps1Eps2(), 1e-12, tc.name)
	}
}

func TestHyperDual_PowfIdentityAtZero(t *testing.T) {
	x := dual.HyperFromValue(0.0).Derivative()
	assert.Equal(t, x, x.Powf(1))
	assert.Equal(t, dual.NewHyper(1.0, 0, 0, 0), x.Powf(0))

	y := dual.Dual2FromValue(0.0).Derivative()
	assert.Equal(t, dual.NewDual2(0.0, 1, 0), y.Powf(1))
}

func TestHyperDual_DivisionByZero(t *testing.T) {
	z := dual.HyperFromValue(1.0).Div(dual.HyperFromValue(0.0).Derivative())
	assert.True(t, math.IsInf(z.Value(), 1))
	assert.False(t, isFinite(z.Eps1()))
	assert.False(t, isFinite(z.Eps1Eps2()))
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func TestHyperDual_String(t *testing.T) {
	assert.Equal(t, "1 + 1ε1 + 0ε2 + 0ε1ε2", dual.HyperFromValue(1.0).Derivative1().String())
	assert.Equal(t, "(2, 1, 0)", dual.Dual2FromValue(2.0).Derivative().String())
}
