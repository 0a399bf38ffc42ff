package riemann

import (
	"log/slog"
	"math"
)

const (
	DefaultMaxIterations = 100
	DefaultTolerance     = 1.e-12 // Relative change in the pressure iterate
)

// StarState is the solution between the two nonlinear waves
type StarState struct {
	P, U       float64
	RhoL, RhoR float64 // Density left and right of the contact
	Iterations int     // Secant iterations used to find P
}

// WaveFunction is f_K(p), the velocity jump across the wave separating the
// star region from state K. It is the Rankine-Hugoniot shock relation for
// p > p_K and the isentropic rarefaction relation otherwise.
func WaveFunction(p float64, side GasState, gamma float64) (f float64) {
	var (
		gm1 = gamma - 1.
		gp1 = gamma + 1.
	)
	if p > side.P {
		A := 2. / (gp1 * side.Rho)
		B := (gm1 / gp1) * side.P
		f = (p - side.P) * math.Sqrt(A/(p+B))
		return
	}
	c := side.SoundSpeed(gamma)
	f = (2. * c / gm1) * (math.Pow(p/side.P, gm1/(2.*gamma)) - 1.)
	return
}

// PressureFunction is F(p) = f_L(p) + f_R(p) + (u_R - u_L), zero at p*
func PressureFunction(p float64, left, right GasState, gamma float64) float64 {
	return WaveFunction(p, left, gamma) + WaveFunction(p, right, gamma) + (right.U - left.U)
}

// SolveStarPressure finds p* with the default iteration cap and tolerance
func SolveStarPressure(left, right GasState, gamma float64) (pStar float64, err error) {
	var (
		ss  = newStarSolver(gamma, DefaultMaxIterations, DefaultTolerance, nil)
		sst StarState
	)
	if err = validateProblem(left, right, gamma); err != nil {
		return
	}
	if sst, err = ss.solve(left, right); err != nil {
		return
	}
	pStar = sst.P
	return
}

type starSolver struct {
	gamma   float64
	maxIter int
	tol     float64
	logger  *slog.Logger
}

func newStarSolver(gamma float64, maxIter int, tol float64, logger *slog.Logger) *starSolver {
	return &starSolver{
		gamma:   gamma,
		maxIter: maxIter,
		tol:     tol,
		logger:  logger,
	}
}

func (ss *starSolver) solve(left, right GasState) (sst StarState, err error) {
	var (
		gamma = ss.gamma
		gm1   = gamma - 1.
		gp1   = gamma + 1.
		mu2   = gm1 / gp1
	)
	if sst.P, sst.Iterations, err = ss.pressure(left, right); err != nil {
		return
	}
	sst.U = left.U - WaveFunction(sst.P, left, gamma)
	pl := sst.P / left.P
	if sst.P > left.P {
		sst.RhoL = left.Rho * (pl + mu2) / (mu2*pl + 1.)
	} else {
		sst.RhoL = left.Rho * math.Pow(pl, 1./gamma)
	}
	pr := sst.P / right.P
	sst.RhoR = right.Rho * (pr + mu2) / (mu2*pr + 1.)
	if ss.logger != nil {
		ss.logger.Debug("star state solved",
			"p", sst.P, "u", sst.U, "rhoL", sst.RhoL, "rhoR", sst.RhoR,
			"iterations", sst.Iterations)
	}
	return
}

// pressure runs a secant iteration on F seeded at the mean of the two
// pressures. F increases monotonically in p, so every evaluation narrows a
// bracket [lo, hi] around the root, and a secant step leaving the bracket is
// replaced by bisection.
func (ss *starSolver) pressure(left, right GasState) (p float64, iter int, err error) {
	var (
		gamma  = ss.gamma
		F      = func(p float64) float64 { return PressureFunction(p, left, right, gamma) }
		cl     = left.SoundSpeed(gamma)
		cr     = right.SoundSpeed(gamma)
		lo, hi = 0., math.Inf(1)
	)
	// Pressure positivity: otherwise the waves separate into vacuum and F has
	// no positive root
	if 2./(gamma-1.)*(cl+cr) <= right.U-left.U {
		err = &ConvergenceError{Pressure: 0, Residual: F(0), Reason: "vacuum generated"}
		return
	}
	bracket := func(p, f float64) {
		if f < 0 {
			lo = math.Max(lo, p)
		} else {
			hi = math.Min(hi, p)
		}
	}
	p0 := 0.5 * (left.P + right.P)
	f0 := F(p0)
	if f0 == 0 {
		return p0, 0, nil
	}
	bracket(p0, f0)
	p1 := p0 * (1. + 1.e-3)
	f1 := F(p1)
	bracket(p1, f1)
	for iter = 1; iter <= ss.maxIter; iter++ {
		var p2 float64
		if f1 != f0 {
			p2 = p1 - f1*(p1-p0)/(f1-f0)
		}
		if !(p2 > lo && p2 < hi) {
			if math.IsInf(hi, 1) {
				p2 = 2. * p1
			} else {
				p2 = 0.5 * (lo + hi)
			}
		}
		change := math.Abs(p2-p1) / (0.5 * (p2 + p1))
		p0, f0 = p1, f1
		p1, f1 = p2, F(p2)
		bracket(p1, f1)
		if ss.logger != nil {
			ss.logger.Debug("star pressure iterate", "iter", iter, "p", p1, "F", f1)
		}
		if change < ss.tol || f1 == 0 {
			return p1, iter, nil
		}
	}
	iter = ss.maxIter
	err = &ConvergenceError{Iterations: iter, Pressure: p1, Residual: f1, Reason: "iteration limit reached"}
	return
}

func validateProblem(left, right GasState, gamma float64) (err error) {
	if err = validateGamma(gamma); err != nil {
		return
	}
	if err = left.Validate(); err != nil {
		return
	}
	return right.Validate()
}
