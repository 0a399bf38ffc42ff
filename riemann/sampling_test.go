package riemann

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePoints(t *testing.T) {
	sp := newSod(t)
	{
		X, err := sp.SamplePoints(0, 1, 11, 0.1)
		require.NoError(t, err)
		// 11 uniform points and a bracketing pair for each of 4 waves
		assert.Len(t, X, 19)
		assert.True(t, sort.Float64sAreSorted(X))
		assert.Equal(t, 0., X[0])
		assert.Equal(t, 1., X[len(X)-1])
		f, err := sp.Evaluate(X, 0.1)
		require.NoError(t, err)
		sst := sp.Star()
		// Both sides of the contact are resolved
		var haveL, haveR bool
		for _, rho := range f.Density {
			haveL = haveL || rho == sst.RhoL
			haveR = haveR || rho == sst.RhoR
		}
		assert.True(t, haveL && haveR)
	}
	{ // At t = 0 every wave sits on x0
		X, err := sp.SamplePoints(0, 1, 11, 0)
		require.NoError(t, err)
		assert.Len(t, X, 13)
	}
	{ // Waves outside the domain are dropped
		X, err := sp.SamplePoints(0, 1, 5, 10)
		require.NoError(t, err)
		assert.Len(t, X, 5)
	}
	{
		_, err := sp.SamplePoints(0, 1, 1, 0.1)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = sp.SamplePoints(1, 0, 10, 0.1)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

func TestConservation(t *testing.T) {
	var (
		sp = newSod(t)
		tm = 0.2
	)
	// No wave has reached either end of [0, 1] at t = 0.2, so mass and total
	// energy are unchanged and momentum grows by (p_L - p_R) t
	X, err := sp.SamplePoints(0, 1, 4001, tm)
	require.NoError(t, err)
	f, err := sp.Evaluate(X, tm)
	require.NoError(t, err)
	Rho, RhoU, Ener := f.Conserved(1.4)
	mass, err := Integrate(X, Rho)
	require.NoError(t, err)
	momentum, err := Integrate(X, RhoU)
	require.NoError(t, err)
	energy, err := Integrate(X, Ener)
	require.NoError(t, err)
	assert.InDelta(t, 0.5625, mass, 0.0001)
	assert.InDelta(t, 0.9*tm, momentum, 0.0001)
	assert.InDelta(t, 1.375, energy, 0.0001)
}

func TestIntegrate(t *testing.T) {
	res, err := Integrate([]float64{0, 1, 2}, []float64{0, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2., res, 1.e-15)
	res, err = Integrate([]float64{0}, []float64{3})
	require.NoError(t, err)
	assert.Equal(t, 0., res)
	_, err = Integrate([]float64{0, 1}, []float64{3})
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = Integrate([]float64{1, 0}, []float64{3, 3})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestErrorNorms(t *testing.T) {
	var (
		sp = newSod(t)
		tm = 0.15
	)
	X, err := sp.SamplePoints(0, 1, 101, tm)
	require.NoError(t, err)
	exact, err := sp.Evaluate(X, tm)
	require.NoError(t, err)
	{
		fn, err := sp.ErrorNorms(X, tm, exact)
		require.NoError(t, err)
		assert.Equal(t, FieldNorms{}, fn)
	}
	{ // Constant offset in density only
		num := NewFields(len(X))
		copy(num.Velocity, exact.Velocity)
		copy(num.Pressure, exact.Pressure)
		copy(num.Energy, exact.Energy)
		for i := range X {
			num.Density[i] = exact.Density[i] + 0.01
		}
		fn, err := sp.ErrorNorms(X, tm, num)
		require.NoError(t, err)
		assert.InDelta(t, 0.01, fn.Density.L1, 1.e-12)
		assert.InDelta(t, 0.01, fn.Density.L2, 1.e-12)
		assert.InDelta(t, 0.01, fn.Density.LInf, 1.e-12)
		assert.Equal(t, Norms{}, fn.Pressure)
		assert.Contains(t, fn.Print(), "Density")
	}
	{
		_, err := sp.ErrorNorms(X[:10], tm, exact)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}
