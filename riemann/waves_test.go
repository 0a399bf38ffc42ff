package riemann

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveSpeedsSod(t *testing.T) {
	rs, err := NewRiemannSolver(1.4)
	require.NoError(t, err)
	sp, err := rs.Solve(sodLeft, sodRight, 0.5)
	require.NoError(t, err)
	ws := sp.Waves()
	assert.InDelta(t, -math.Sqrt(1.4), ws.Head, 1.e-12)
	assert.InDelta(t, -0.07027, ws.Tail, 0.0001)
	assert.InDelta(t, 0.92745, ws.Contact, 0.00001)
	assert.InDelta(t, 1.75216, ws.Shock, 0.0001)
	assert.True(t, ws.Ordered())

	// Shock locations at t = 0.1 and 0.2
	x := sp.WavePositions(0.1)
	assert.InDelta(t, 0.6752, x[3], 0.0001)
	x = sp.WavePositions(0.2)
	assert.InDelta(t, 0.8504, x[3], 0.0001)
	assert.Equal(t, [4]float64{0.5, 0.5, 0.5, 0.5}, sp.WavePositions(0))
}

func TestClassifyHalfOpen(t *testing.T) {
	ws := WaveSpeeds{Head: -1, Tail: 0, Contact: 1, Shock: 2}
	type testCase struct {
		xi     float64
		region Region
	}
	cases := []testCase{
		{-1.5, LeftState},
		{-1, RarefactionFan},
		{-0.5, RarefactionFan},
		{0, StarLeft},
		{0.5, StarLeft},
		{1, StarRight},
		{1.5, StarRight},
		{2, RightState},
		{math.Inf(1), RightState},
		{math.Inf(-1), LeftState},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.region, ws.Classify(tc.xi), "xi = %v", tc.xi)
	}
	// An empty fan maps its edge to the star region
	ws = WaveSpeeds{Head: 0, Tail: 0, Contact: 1, Shock: 2}
	assert.Equal(t, StarLeft, ws.Classify(0))
	assert.Equal(t, "Rarefaction Fan", RarefactionFan.String())
	assert.Equal(t, "Unknown Region", Region(9).String())
}

func TestWaveOrderingViolation(t *testing.T) {
	rs, err := NewRiemannSolver(1.4)
	require.NoError(t, err)
	// Two shocks (Toro, Test 5): the left wave is not a rarefaction
	left := GasState{Rho: 5.99924, P: 460.894, U: 19.5975}
	right := GasState{Rho: 5.99242, P: 46.0950, U: -6.19633}
	_, err = rs.Solve(left, right, 0.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRegionClassification))
	var rce *RegionClassificationError
	require.True(t, errors.As(err, &rce))
	assert.False(t, rce.Speeds.Ordered())
	assert.Greater(t, rce.Speeds.Head, rce.Speeds.Tail)
}

func TestRightRarefactionRejected(t *testing.T) {
	rs, err := NewRiemannSolver(1.4)
	require.NoError(t, err)
	// The 123 problem has ordered speeds but two rarefactions
	left := GasState{Rho: 1, P: 0.4, U: -2}
	right := GasState{Rho: 1, P: 0.4, U: 2}
	sst, err := rs.SolveStarState(left, right)
	require.NoError(t, err)
	assert.Less(t, sst.P, right.P)
	_, err = rs.Solve(left, right, 0.5)
	var rce *RegionClassificationError
	require.True(t, errors.As(err, &rce))
	assert.True(t, rce.Speeds.Ordered())
}
