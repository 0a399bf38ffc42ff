// Package riemann computes the exact self-similar solution of the one
// dimensional Riemann problem for an ideal gas, in the left rarefaction,
// contact, right shock configuration of Sod's shock tube.
//
// A RiemannSolver is fixed to one adiabatic index. Solve performs the
// nonlinear star state solve once and returns a SolvedProblem, whose Evaluate
// method can then be called any number of times, concurrently, for different
// sample positions and times.
package riemann

import (
	"fmt"
	"math"

	"github.com/notargets/riemann1d/utils"
)

// GasState is a primitive ideal gas state
type GasState struct {
	Rho, P, U float64
}

func NewGasState(rho, p, u float64) GasState {
	return GasState{Rho: rho, P: p, U: u}
}

func (gs GasState) Validate() (err error) {
	switch {
	case !utils.IsFinite(gs.Rho, gs.P, gs.U):
		err = invalidf("non finite state %s", gs)
	case gs.Rho <= 0:
		err = invalidf("density must be positive, have %g", gs.Rho)
	case gs.P <= 0:
		err = invalidf("pressure must be positive, have %g", gs.P)
	}
	return
}

func (gs GasState) SoundSpeed(gamma float64) float64 {
	return math.Sqrt(gamma * gs.P / gs.Rho)
}

// Conserved returns density, momentum and total energy per unit volume
func (gs GasState) Conserved(gamma float64) (rho, rhoU, ener float64) {
	rho = gs.Rho
	rhoU = gs.Rho * gs.U
	ener = gs.P/(gamma-1.) + 0.5*rho*utils.POW(gs.U, 2)
	return
}

// InternalEnergy is the specific internal energy p/((gamma-1)*rho)
func (gs GasState) InternalEnergy(gamma float64) float64 {
	return gs.P / ((gamma - 1.) * gs.Rho)
}

func (gs GasState) String() string {
	return fmt.Sprintf("[Rho = %g, P = %g, U = %g]", gs.Rho, gs.P, gs.U)
}

func validateGamma(gamma float64) error {
	if !utils.IsFinite(gamma) || gamma <= 1 {
		return invalidf("gamma must be finite and > 1, have %g", gamma)
	}
	return nil
}
