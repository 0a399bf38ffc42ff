package riemann

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/riemann1d/utils"
)

// Fields holds primitive variables and specific internal energy, one entry
// per sample position
type Fields struct {
	Density, Velocity, Pressure, Energy []float64
}

func NewFields(n int) Fields {
	return Fields{
		Density:  make([]float64, n),
		Velocity: make([]float64, n),
		Pressure: make([]float64, n),
		Energy:   make([]float64, n),
	}
}

func (f Fields) Len() int {
	return len(f.Density)
}

// FieldSample is one output row
type FieldSample struct {
	X   float64 `csv:"x"`
	Rho float64 `csv:"rho"`
	U   float64 `csv:"u"`
	P   float64 `csv:"p"`
	E   float64 `csv:"e"`
}

func (f Fields) Samples(positions []float64) (samples []FieldSample) {
	samples = make([]FieldSample, len(positions))
	for i, x := range positions {
		samples[i] = FieldSample{
			X:   x,
			Rho: f.Density[i],
			U:   f.Velocity[i],
			P:   f.Pressure[i],
			E:   f.Energy[i],
		}
	}
	return
}

// Conserved converts to density, momentum and total energy per unit volume
func (f Fields) Conserved(gamma float64) (Rho, RhoU, Ener []float64) {
	n := f.Len()
	Rho, RhoU, Ener = make([]float64, n), make([]float64, n), make([]float64, n)
	for i := range f.Density {
		gs := GasState{Rho: f.Density[i], P: f.Pressure[i], U: f.Velocity[i]}
		Rho[i], RhoU[i], Ener[i] = gs.Conserved(gamma)
	}
	return
}

// Matrix packs the fields as columns rho, u, p, e of an N x 4 matrix
func (f Fields) Matrix() *mat.Dense {
	n := f.Len()
	if n == 0 {
		return &mat.Dense{}
	}
	M := mat.NewDense(n, 4, nil)
	M.SetCol(0, f.Density)
	M.SetCol(1, f.Velocity)
	M.SetCol(2, f.Pressure)
	M.SetCol(3, f.Energy)
	return M
}

// Evaluate returns the exact solution at the given positions and time. For
// t <= 0 the initial discontinuity is returned unchanged.
func (sp *SolvedProblem) Evaluate(positions []float64, t float64) (f Fields, err error) {
	if err = checkQuery(positions, t); err != nil {
		return
	}
	f = NewFields(len(positions))
	sp.fill(positions, t, f)
	return
}

// EvaluateInto writes into caller owned buffers, each of len(positions). The
// buffers are untouched when an error is returned.
func (sp *SolvedProblem) EvaluateInto(positions []float64, t float64, dst *Fields) (err error) {
	var (
		n = len(positions)
	)
	if dst == nil {
		return invalidf("nil destination")
	}
	if len(dst.Density) != n || len(dst.Velocity) != n ||
		len(dst.Pressure) != n || len(dst.Energy) != n {
		return invalidf("destination length mismatch, want %d", n)
	}
	if err = checkQuery(positions, t); err != nil {
		return
	}
	sp.fill(positions, t, *dst)
	return
}

// EvaluateParallel splits the positions into nThreads contiguous buckets and
// fills each bucket on its own goroutine
func (sp *SolvedProblem) EvaluateParallel(positions []float64, t float64, nThreads int) (f Fields, err error) {
	var (
		g errgroup.Group
	)
	if err = checkQuery(positions, t); err != nil {
		return
	}
	f = NewFields(len(positions))
	pm := utils.NewPartitionMap(nThreads, len(positions))
	for bn := 0; bn < pm.ParallelDegree; bn++ {
		kMin, kMax := pm.GetBucketRange(bn)
		g.Go(func() error {
			sp.fill(positions[kMin:kMax], t, f.slice(kMin, kMax))
			return nil
		})
	}
	err = g.Wait()
	return
}

func (f Fields) slice(kMin, kMax int) Fields {
	return Fields{
		Density:  f.Density[kMin:kMax],
		Velocity: f.Velocity[kMin:kMax],
		Pressure: f.Pressure[kMin:kMax],
		Energy:   f.Energy[kMin:kMax],
	}
}

func (sp *SolvedProblem) fill(positions []float64, t float64, f Fields) {
	var (
		gamma = sp.gamma
		gs    GasState
	)
	for i, x := range positions {
		if t <= 0 {
			if x < sp.x0 {
				gs = sp.left
			} else {
				gs = sp.right
			}
		} else {
			gs = sp.Sample((x - sp.x0) / t)
		}
		f.Density[i] = gs.Rho
		f.Velocity[i] = gs.U
		f.Pressure[i] = gs.P
		f.Energy[i] = gs.InternalEnergy(gamma)
	}
}

// Sample returns the state at similarity coordinate xi = (x - x0)/t
func (sp *SolvedProblem) Sample(xi float64) (gs GasState) {
	var (
		sst = sp.star
	)
	switch sp.waves.Classify(xi) {
	case LeftState:
		gs = sp.left
	case RarefactionFan:
		gs = sp.fan(xi)
	case StarLeft:
		gs = GasState{Rho: sst.RhoL, P: sst.P, U: sst.U}
	case StarRight:
		gs = GasState{Rho: sst.RhoR, P: sst.P, U: sst.U}
	case RightState:
		gs = sp.right
	}
	return
}

// fan is the isentropic left rarefaction, continuous in xi
func (sp *SolvedProblem) fan(xi float64) (gs GasState) {
	var (
		gamma = sp.gamma
		gm1   = gamma - 1.
		gp1   = gamma + 1.
		cl    = sp.cl
		left  = sp.left
	)
	c := (2. / gp1) * (cl + 0.5*gm1*(left.U-xi))
	ratio := c / cl
	gs.Rho = left.Rho * math.Pow(ratio, 2./gm1)
	gs.U = (2. / gp1) * (0.5*gm1*left.U + cl + xi)
	gs.P = left.P * math.Pow(ratio, 2.*gamma/gm1)
	return
}

func checkQuery(positions []float64, t float64) error {
	if !utils.IsFinite(t) {
		return invalidf("time must be finite, have %g", t)
	}
	for i, x := range positions {
		if !utils.IsFinite(x) {
			return invalidf("position[%d] is not finite: %g", i, x)
		}
	}
	return nil
}
