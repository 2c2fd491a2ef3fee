package eos

import (
	"strings"
	"testing"

	"github.com/born-ml/dualnum/internal/derive"
	"github.com/born-ml/dualnum/internal/dual"
	"github.com/born-ml/dualnum/internal/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

const (
	refA    = 0.4106104925988083
	refDaDT = -1.3057308352981093e-4
	refDaDV = -4.3679624456275116e-4
	refDaDN = 0.8474067371615595
)

func TestHelmholtz_ReferenceValues(t *testing.T) {
	p := ReferenceParameters()
	temp, vol, n := 250.0, 1000.0, 1.0

	a := Helmholtz(p, dual.Real(temp), dual.Real(vol), []dual.Real{dual.Real(n)})
	assert.InEpsilon(t, refA, float64(a), 1e-12)

	daDT := Helmholtz(p, dual.Variable(temp), dual.FromValue(vol), []dual.Dual64{dual.FromValue(n)})
	daDV := Helmholtz(p, dual.FromValue(temp), dual.Variable(vol), []dual.Dual64{dual.FromValue(n)})
	daDN := Helmholtz(p, dual.FromValue(temp), dual.FromValue(vol), []dual.Dual64{dual.Variable(n)})

	// Same source text, same value channel.
	for _, d := range []dual.Dual64{daDT, daDV, daDN} {
		assert.Equal(t, float64(a), d.Value())
	}

	assert.InEpsilon(t, refDaDT, daDT.Derivative(), 1e-10)
	assert.InEpsilon(t, refDaDV, daDV.Derivative(), 1e-10)
	assert.InEpsilon(t, refDaDN, daDN.Derivative(), 1e-10)
}

func TestHelmholtz_ConstantsHaveNoTangent(t *testing.T) {
	p := ReferenceParameters()
	a := Helmholtz(p, dual.FromValue(250.0), dual.FromValue(1000.0), []dual.Dual64{dual.FromValue(1.0)})
	assert.Equal(t, 0.0, a.Derivative())
}

func TestHelmholtz_FiniteDifference(t *testing.T) {
	p := ReferenceParameters()
	s := ReferenceState()

	props, err := Derivatives(p, s)
	require.NoError(t, err)

	f := func(x []float64) float64 {
		return float64(packed[dual.Real](p)(dual.Constants[dual.Real](x)))
	}
	numeric := fd.Gradient(nil, f, s.vector(), &fd.Settings{Formula: fd.Central})

	assert.InDelta(t, numeric[0], props.DaDT, 1e-6)
	assert.InDelta(t, numeric[1], props.DaDV, 1e-6)
	assert.InDelta(t, numeric[2], props.DaDN[0], 1e-6)
}

func TestDerivatives(t *testing.T) {
	p := ReferenceParameters()

	props, err := Derivatives(p, ReferenceState())
	require.NoError(t, err)

	assert.InEpsilon(t, refA, props.Helmholtz, 1e-12)
	assert.InEpsilon(t, refDaDT, props.DaDT, 1e-10)
	assert.InEpsilon(t, refDaDV, props.DaDV, 1e-10)
	require.Len(t, props.DaDN, 1)
	assert.InEpsilon(t, refDaDN, props.DaDN[0], 1e-10)

	assert.Equal(t, -props.DaDV, props.Pressure())
	assert.Equal(t, -props.DaDT, props.Entropy())
	assert.Equal(t, props.DaDN[0], props.ChemicalPotential(0))

	v, err := Value(p, ReferenceState())
	require.NoError(t, err)
	assert.Equal(t, props.Helmholtz, v)
}

func TestDerivatives_Mixture(t *testing.T) {
	p, err := LoadParametersFile("testdata/binary.yaml")
	require.NoError(t, err)
	require.Equal(t, 2, p.Components())

	s := State{Temperature: 300, Volume: 800, Moles: []float64{0.4, 0.6}}

	seq, err := Derivatives(p, s)
	require.NoError(t, err)

	cfg := parallel.Config{Enabled: true, Workers: 4, MinTasks: 2}
	par, err := Derivatives(p, s, derive.WithParallel(cfg))
	require.NoError(t, err)
	assert.Equal(t, seq, par)

	// Helmholtz energy is extensive: a(T, λV, λn) = λ a(T, V, n), so
	// a = V ∂a/∂V + Σ n_i ∂a/∂n_i.
	euler := s.Volume*seq.DaDV + s.Moles[0]*seq.DaDN[0] + s.Moles[1]*seq.DaDN[1]
	assert.InEpsilon(t, seq.Helmholtz, euler, 1e-10)
}

func TestSecondDerivatives(t *testing.T) {
	p := ReferenceParameters()
	s := ReferenceState()

	hess, err := SecondDerivatives(p, s)
	require.NoError(t, err)

	r, c := hess.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)

	// Each Hessian row is the gradient of the corresponding first derivative.
	for i := 0; i < 3; i++ {
		row := func(x []float64) float64 {
			_, g, err := derive.Gradient(packed[dual.Dual64](p), x)
			require.NoError(t, err)
			return g[i]
		}
		numeric := fd.Gradient(nil, row, s.vector(), &fd.Settings{Formula: fd.Central})
		for j := 0; j < 3; j++ {
			assert.InDelta(t, numeric[j], hess.At(i, j), 1e-6, "H[%d][%d]", i, j)
		}
	}

	// Extensivity: ∂²a/∂V² V + ∂²a/∂V∂n n = 0.
	assert.InDelta(t, 0.0, hess.At(1, 1)*s.Volume+hess.At(1, 2)*s.Moles[0], 1e-12)
}

func TestState_Validate(t *testing.T) {
	p := ReferenceParameters()

	_, err := Derivatives(p, State{Temperature: 250, Volume: 1000, Moles: []float64{1, 2}})
	assert.ErrorIs(t, err, ErrMolesMismatch)

	_, err = Value(p, State{Temperature: -1, Volume: 1000, Moles: []float64{1}})
	assert.ErrorIs(t, err, ErrNonPositiveState)

	_, err = SecondDerivatives(p, State{Temperature: 250, Volume: 0, Moles: []float64{1}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "volume", verr.Field)
}

func TestNewParameters(t *testing.T) {
	m := []float64{1, 2}
	p, err := NewParameters(m, []float64{3, 4}, []float64{100, 200})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Components())

	// Inputs are copied.
	m[0] = 99
	assert.Equal(t, 1.0, p.M[0])

	_, err = NewParameters(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoComponents)

	_, err = NewParameters([]float64{1}, []float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "sigma")
}

func TestLoadParameters(t *testing.T) {
	p, err := LoadParametersFile("testdata/reference.yaml")
	require.NoError(t, err)
	assert.Equal(t, ReferenceParameters(), p)

	_, err = LoadParameters(strings.NewReader("m: [1]\nsigma: [1]\n"))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = LoadParameters(strings.NewReader("m: [1]\nsigma: [1]\nepsilon_k: [1]\nkappa: [2]\n"))
	assert.Error(t, err)

	_, err = LoadParametersFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestProbe(t *testing.T) {
	v, d := derive.Derivative(Probe[dual.Dual64], 1.5)
	assert.Equal(t, float64(Probe(dual.Real(1.5))), v)

	numeric := fd.Derivative(func(x float64) float64 { return float64(Probe(dual.Real(x))) }, 1.5, &fd.Settings{Formula: fd.Central})
	assert.InDelta(t, numeric, d, 1e-6)

	_, d1, d2 := derive.SecondDerivative(Probe[dual.HyperDual64], 1.5)
	assert.InDelta(t, d, d1, 1e-12)
	second := fd.Derivative(func(x float64) float64 { return float64(Probe(dual.Real(x))) }, 1.5, &fd.Settings{Formula: fd.Central2nd})
	assert.InDelta(t, second, d2, 1e-4*max(1, abs(second)))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func BenchmarkHelmholtz(b *testing.B) {
	p := ReferenceParameters()

	b.Run("Real", func(b *testing.B) {
		moles := []dual.Real{1}
		for i := 0; i < b.N; i++ {
			_ = Helmholtz(p, dual.Real(250), dual.Real(1000), moles)
		}
	})

	b.Run("Dual64", func(b *testing.B) {
		moles := []dual.Dual64{dual.FromValue(1.0)}
		for i := 0; i < b.N; i++ {
			_ = Helmholtz(p, dual.Variable(250.0), dual.FromValue(1000.0), moles)
		}
	})

	b.Run("HyperDual64", func(b *testing.B) {
		moles := []dual.HyperDual64{dual.HyperFromValue(1.0)}
		for i := 0; i < b.N; i++ {
			_ = Helmholtz(p, dual.HyperFromValue(250.0).Derivative(), dual.HyperFromValue(1000.0), moles)
		}
	})

	b.Run("Hessian", func(b *testing.B) {
		s := ReferenceState()
		for i := 0; i < b.N; i++ {
			_, _ = SecondDerivatives(p, s)
		}
	})
}
