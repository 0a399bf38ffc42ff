package riemann

import (
	"fmt"
	"log/slog"

	"github.com/notargets/riemann1d/utils"
)

type RiemannSolver struct {
	Gamma   float64
	maxIter int
	tol     float64
	logger  *slog.Logger
}

type Option func(rs *RiemannSolver)

func WithMaxIterations(n int) Option {
	return func(rs *RiemannSolver) {
		rs.maxIter = n
	}
}

func WithTolerance(tol float64) Option {
	return func(rs *RiemannSolver) {
		rs.tol = tol
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(rs *RiemannSolver) {
		rs.logger = logger
	}
}

func NewRiemannSolver(gamma float64, opts ...Option) (rs *RiemannSolver, err error) {
	if err = validateGamma(gamma); err != nil {
		return
	}
	rs = &RiemannSolver{
		Gamma:   gamma,
		maxIter: DefaultMaxIterations,
		tol:     DefaultTolerance,
	}
	for _, opt := range opts {
		opt(rs)
	}
	if rs.maxIter < 1 {
		err = invalidf("max iterations must be >= 1, have %d", rs.maxIter)
		return nil, err
	}
	if !(rs.tol > 0) {
		err = invalidf("tolerance must be positive, have %g", rs.tol)
		return nil, err
	}
	return
}

// SolveStarState validates the two states and solves for the star region
func (rs *RiemannSolver) SolveStarState(left, right GasState) (sst StarState, err error) {
	if err = validateProblem(left, right, rs.Gamma); err != nil {
		return
	}
	return newStarSolver(rs.Gamma, rs.maxIter, rs.tol, rs.logger).solve(left, right)
}

// Solve computes the star state and wave structure once. The returned
// SolvedProblem is read only and may be evaluated concurrently.
func (rs *RiemannSolver) Solve(left, right GasState, x0 float64) (sp *SolvedProblem, err error) {
	var (
		sst StarState
		ws  WaveSpeeds
	)
	if !utils.IsFinite(x0) {
		err = invalidf("discontinuity position must be finite, have %g", x0)
		return
	}
	if sst, err = rs.SolveStarState(left, right); err != nil {
		return
	}
	if ws, err = NewWaveSpeeds(left, right, sst, rs.Gamma); err != nil {
		return
	}
	if rs.logger != nil {
		rs.logger.Debug("wave structure",
			"head", ws.Head, "tail", ws.Tail, "contact", ws.Contact, "shock", ws.Shock)
	}
	sp = &SolvedProblem{
		gamma: rs.Gamma,
		x0:    x0,
		left:  left,
		right: right,
		star:  sst,
		waves: ws,
		cl:    left.SoundSpeed(rs.Gamma),
	}
	return
}

type SolvedProblem struct {
	gamma       float64
	x0          float64
	left, right GasState
	star        StarState
	waves       WaveSpeeds
	cl          float64 // Left sound speed, reused by the rarefaction fan
}

func (sp *SolvedProblem) Gamma() float64    { return sp.gamma }
func (sp *SolvedProblem) X0() float64       { return sp.x0 }
func (sp *SolvedProblem) Left() GasState    { return sp.left }
func (sp *SolvedProblem) Right() GasState   { return sp.right }
func (sp *SolvedProblem) Star() StarState   { return sp.star }
func (sp *SolvedProblem) Waves() WaveSpeeds { return sp.waves }

// WavePositions are the head, tail, contact and shock locations at time t
func (sp *SolvedProblem) WavePositions(t float64) [4]float64 {
	return sp.waves.Positions(sp.x0, t)
}

func (sp *SolvedProblem) Print() (o string) {
	var (
		sst = sp.star
		ws  = sp.waves
	)
	o = fmt.Sprintf("Gamma = %8.5f, X0 = %8.5f\n", sp.gamma, sp.x0)
	o += fmt.Sprintf("Left  = %s\nRight = %s\n", sp.left, sp.right)
	o += fmt.Sprintf("P* = %10.6f, U* = %10.6f, Rho*L = %10.6f, Rho*R = %10.6f, Iterations = %d\n",
		sst.P, sst.U, sst.RhoL, sst.RhoR, sst.Iterations)
	o += fmt.Sprintf("Head = %10.6f, Tail = %10.6f, Contact = %10.6f, Shock = %10.6f\n",
		ws.Head, ws.Tail, ws.Contact, ws.Shock)
	return
}
