// Package eos provides a Helmholtz-energy-like reference expression written
// once against dual.Number, so that the same source evaluates plain values,
// first derivatives and second derivatives.
//
// The expression is a hard-sphere term with temperature-dependent segment
// diameters. It serves as a differentiation test vector; its physical
// correctness is not a goal.
package eos

import (
	"math"

	"github.com/born-ml/dualnum/internal/dual"
)

const fracPi6 = math.Pi / 6

// Helmholtz evaluates the reduced residual Helmholtz energy at the given
// temperature, volume and mole numbers. len(moles) must equal
// p.Components().
func Helmholtz[N dual.Number[N]](p Parameters, temperature, volume N, moles []N) N {
	n := len(moles)
	tInv := temperature.Recip()

	diameter := make([]N, n)
	for i := range diameter {
		diameter[i] = tInv.MulF(-3).MulF(p.EpsilonK[i]).Exp().MulF(0.12).SubF(1).Neg().MulF(p.Sigma[i])
	}

	partialDensity := make([]N, n)
	for i, ni := range moles {
		partialDensity[i] = ni.Div(volume)
	}
	density := dual.Sum(partialDensity)
	totalMoles := dual.Sum(moles)

	x := make([]N, n)
	for i, ni := range moles {
		x[i] = ni.Div(totalMoles)
	}

	var zeta [4]N
	for i := range diameter {
		for k := range zeta {
			zeta[k] = zeta[k].Add(x[i].Mul(diameter[i].Powi(k)).MulF(p.M[i] * fracPi6))
		}
	}
	zeta23 := zeta[2].Div(zeta[3])

	for k := range zeta {
		zeta[k] = zeta[k].Mul(density)
	}
	frac1mz3 := zeta[3].SubF(1).Recip().Neg()

	t1 := zeta[1].Mul(zeta[2]).Mul(frac1mz3).MulF(3)
	t2 := zeta[2].Powi(2).Mul(frac1mz3.Powi(2)).Mul(zeta23)
	t3 := zeta[2].Mul(zeta23.Powi(2)).Sub(zeta[0]).Mul(zeta[3].MulF(-1).Ln1p())

	return volume.DivF(fracPi6).Mul(t1.Add(t2).Add(t3))
}

// Probe is exp(x) / sqrt(sin(x)³ + cos(x)³), a single-variable test vector.
func Probe[N dual.Number[N]](x N) N {
	return x.Exp().Div(x.Sin().Powi(3).Add(x.Cos().Powi(3)).Sqrt())
}
