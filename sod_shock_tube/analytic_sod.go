// Package sod_shock_tube provides the exact solution of Sod's shock tube on
// [0,1] with the diaphragm at x = 0.5, sampled so every wave edge is resolved.
package sod_shock_tube

import (
	"github.com/notargets/riemann1d/riemann"
)

var (
	XMin, XMax = 0., 1.
	X0         = 0.5 * (XMax + XMin)
	Gamma      = 1.4
	Left       = riemann.GasState{Rho: 1, P: 1, U: 0}
	Right      = riemann.GasState{Rho: 0.125, P: 0.1, U: 0}
	NPts       = 201 // Uniform samples, before the wave brackets are added
)

type SOD struct {
	T       float64
	Problem *riemann.SolvedProblem
	X       []float64
	Fields  riemann.Fields
}

func NewSOD(t float64) (sod *SOD, err error) {
	var (
		rs *riemann.RiemannSolver
	)
	sod = &SOD{T: t}
	if rs, err = riemann.NewRiemannSolver(Gamma); err != nil {
		return nil, err
	}
	if sod.Problem, err = rs.Solve(Left, Right, X0); err != nil {
		return nil, err
	}
	if sod.X, err = sod.Problem.SamplePoints(XMin, XMax, NPts, t); err != nil {
		return nil, err
	}
	if sod.Fields, err = sod.Problem.Evaluate(sod.X, t); err != nil {
		return nil, err
	}
	return
}

// Get returns the sample positions with density, pressure, momentum and total
// energy per unit volume
func (sod *SOD) Get() (X, Rho, P, RhoU, E []float64) {
	X = sod.X
	P = sod.Fields.Pressure
	Rho, RhoU, E = sod.Fields.Conserved(Gamma)
	return
}

// KeyPositions are the rarefaction head and tail, the contact and the shock
func (sod *SOD) KeyPositions() (x1, x2, x3, x4 float64) {
	x := sod.Problem.WavePositions(sod.T)
	return x[0], x[1], x[2], x[3]
}
