package riemann

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norms of a pointwise difference. L1 is the mean absolute difference, L2 the
// root mean square and LInf the maximum.
type Norms struct {
	L1, L2, LInf float64
}

type FieldNorms struct {
	Density, Velocity, Pressure, Energy Norms
}

func newNorms(a, b []float64) (n Norms) {
	N := float64(len(a))
	if N == 0 {
		return
	}
	n.L1 = floats.Distance(a, b, 1) / N
	n.L2 = floats.Distance(a, b, 2) / math.Sqrt(N)
	n.LInf = floats.Distance(a, b, math.Inf(1))
	return
}

// ErrorNorms compares a numerical solution sampled at positions with the
// exact solution at time t
func (sp *SolvedProblem) ErrorNorms(positions []float64, t float64, numerical Fields) (fn FieldNorms, err error) {
	var (
		exact Fields
		n     = len(positions)
	)
	if len(numerical.Density) != n || len(numerical.Velocity) != n ||
		len(numerical.Pressure) != n || len(numerical.Energy) != n {
		err = invalidf("numerical fields must have %d entries", n)
		return
	}
	if exact, err = sp.Evaluate(positions, t); err != nil {
		return
	}
	fn = FieldNorms{
		Density:  newNorms(numerical.Density, exact.Density),
		Velocity: newNorms(numerical.Velocity, exact.Velocity),
		Pressure: newNorms(numerical.Pressure, exact.Pressure),
		Energy:   newNorms(numerical.Energy, exact.Energy),
	}
	return
}

func (fn FieldNorms) Print() (o string) {
	line := func(name string, n Norms) string {
		return fmt.Sprintf("%-9s L1 = %10.3e, L2 = %10.3e, LInf = %10.3e\n", name, n.L1, n.L2, n.LInf)
	}
	o = line("Density", fn.Density)
	o += line("Velocity", fn.Velocity)
	o += line("Pressure", fn.Pressure)
	o += line("Energy", fn.Energy)
	return
}
