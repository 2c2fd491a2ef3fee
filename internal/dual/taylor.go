package dual

import "math"

// Second-order Taylor coefficients (f, f', f'') of the elementary functions,
// shared by Dual2 and HyperDual.

func expT(x float64) (float64, float64, float64) {
	e := math.Exp(x)
	return e, e, e
}

func lnT(x float64) (float64, float64, float64) {
	r := 1 / x
	return math.Log(x), r, -r * r
}

func ln1pT(x float64) (float64, float64, float64) {
	r := 1 / (1 + x)
	return math.Log1p(x), r, -r * r
}

func sinT(x float64) (float64, float64, float64) {
	s, c := math.Sin(x), math.Cos(x)
	return s, c, -s
}

func cosT(x float64) (float64, float64, float64) {
	s, c := math.Sin(x), math.Cos(x)
	return c, -s, -c
}

func sqrtT(x float64) (float64, float64, float64) {
	s := math.Sqrt(x)
	d := 0.5 / s
	return s, d, -0.5 * d / x
}

func recipT(x float64) (float64, float64, float64) {
	r := 1 / x
	return r, -r * r, 2 * r * r * r
}

// powiT assumes k >= 2 or k < 0; callers special-case 0 and 1.
func powiT(x float64, k int) (float64, float64, float64) {
	fk := float64(k)
	return powi(x, k), fk * powiSub(x, k, 1), fk * (fk - 1) * powiSub(x, k, 2)
}

// powfT assumes n != 0 and n != 1; at x = 0 the n = 1 case would give 0·Inf.
func powfT(x, n float64) (float64, float64, float64) {
	return math.Pow(x, n), n * math.Pow(x, n-1), n * (n - 1) * math.Pow(x, n-2)
}

func tanT(x float64) (float64, float64, float64) {
	t := math.Tan(x)
	sec2 := 1 + t*t
	return t, sec2, 2 * t * sec2
}

func sinhT(x float64) (float64, float64, float64) {
	s, c := math.Sinh(x), math.Cosh(x)
	return s, c, s
}

func coshT(x float64) (float64, float64, float64) {
	s, c := math.Sinh(x), math.Cosh(x)
	return c, s, c
}

func tanhT(x float64) (float64, float64, float64) {
	t := math.Tanh(x)
	sech2 := 1 - t*t
	return t, sech2, -2 * t * sech2
}

func expm1T(x float64) (float64, float64, float64) {
	e := math.Exp(x)
	return math.Expm1(x), e, e
}

func cbrtT(x float64) (float64, float64, float64) {
	c := math.Cbrt(x)
	d := c / (3 * x)
	return c, d, -2 * d / (3 * x)
}
