package riemann

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// BracketTol is the offset, relative to the domain length, of the samples
// placed on either side of each wave
const BracketTol = 1.e-8

// SamplePoints returns n evenly spaced points on [xmin, xmax] merged with a
// pair of points straddling every wave that lies inside the domain at time t,
// so that plots of the exact solution resolve each jump and fan edge.
func (sp *SolvedProblem) SamplePoints(xmin, xmax float64, n int, t float64) (X []float64, err error) {
	if n < 2 || !(xmin < xmax) {
		err = invalidf("need n >= 2 and xmin < xmax, have n = %d, [%g, %g]", n, xmin, xmax)
		return
	}
	var (
		tol = BracketTol * (xmax - xmin)
	)
	X = floats.Span(make([]float64, n), xmin, xmax)
	waves := sp.WavePositions(t)
	if t <= 0 {
		waves = [4]float64{sp.x0, sp.x0, sp.x0, sp.x0}
	}
	for _, xw := range waves {
		for _, x := range []float64{xw - tol, xw + tol} {
			if x > xmin && x < xmax {
				X = append(X, x)
			}
		}
	}
	sort.Float64s(X)
	// Coincident waves produce duplicates
	j := 0
	for i := 1; i < len(X); i++ {
		if X[i] != X[j] {
			j++
			X[j] = X[i]
		}
	}
	X = X[:j+1]
	return
}

// Integrate is the trapezoid rule integral of f over sorted positions x
func Integrate(x, f []float64) (result float64, err error) {
	switch {
	case len(x) != len(f):
		err = invalidf("length mismatch, x = %d, f = %d", len(x), len(f))
		return
	case len(x) < 2:
		return
	case !sort.Float64sAreSorted(x):
		err = invalidf("positions must be sorted")
		return
	}
	result = integrate.Trapezoidal(x, f)
	return
}
