package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/riemann1d/InputParameters"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunExact(t *testing.T) {
	cp := InputParameters.NewCaseParameters()
	require.NoError(t, cp.Parse([]byte(`
Title: Sod
NPts: 11
Times: [0, 0.1, 0.2]
`)))
	var buf bytes.Buffer
	require.NoError(t, RunExact(cp, &buf, quietLogger()))

	rs, err := cp.Solver()
	require.NoError(t, err)
	sp, err := rs.Solve(cp.Left.GasState(), cp.Right.GasState(), cp.X0)
	require.NoError(t, err)
	var nRows int
	for _, tm := range cp.Times {
		X, err := sp.SamplePoints(cp.XMin, cp.XMax, cp.NPts, tm)
		require.NoError(t, err)
		nRows += len(X)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, nRows+1)
	assert.Equal(t, "t,x,rho,u,p,e", lines[0])
	// First row is the left boundary at t = 0
	assert.True(t, strings.HasPrefix(lines[1], "0,0,1,0,1,"), lines[1])
}

func TestRunExactVacuum(t *testing.T) {
	cp := InputParameters.NewCaseParameters()
	require.NoError(t, cp.Parse([]byte(`
Left: {Rho: 1, P: 0.4, U: -20}
Right: {Rho: 1, P: 0.4, U: 20}
`)))
	var buf bytes.Buffer
	assert.Error(t, RunExact(cp, &buf, quietLogger()))
	assert.Zero(t, buf.Len())
}

func TestRunWaves(t *testing.T) {
	cp := InputParameters.NewCaseParameters()
	cp.Times = []float64{0.1, 0.2}
	var buf bytes.Buffer
	require.NoError(t, RunWaves(cp, &buf))
	out := buf.String()
	assert.Contains(t, out, cp.Title)
	assert.Contains(t, out, "head")
	assert.Contains(t, out, "0.85043")
}

func TestRunBench(t *testing.T) {
	cp := InputParameters.NewCaseParameters()
	var buf bytes.Buffer
	require.NoError(t, RunBench(cp, 10, &buf, quietLogger()))
	assert.Contains(t, buf.String(), "Frames = 10")
	assert.Error(t, RunBench(cp, 0, &buf, quietLogger()))
}
