package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/riemann1d/InputParameters"
	"github.com/notargets/riemann1d/riemann"
)

// WavesCmd prints the star state and where each wave is at the case times
var WavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Print the star state, wave speeds and wave positions",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			cp *InputParameters.CaseParameters
		)
		if cp, err = readCase(newLogger()); err != nil {
			return
		}
		return RunWaves(cp, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(WavesCmd)
}

func RunWaves(cp *InputParameters.CaseParameters, w io.Writer) (err error) {
	var (
		rs *riemann.RiemannSolver
		sp *riemann.SolvedProblem
	)
	if rs, err = cp.Solver(); err != nil {
		return
	}
	if sp, err = rs.Solve(cp.Left.GasState(), cp.Right.GasState(), cp.X0); err != nil {
		return
	}
	fmt.Fprintf(w, "%s\n%s", cp.Title, sp.Print())
	fmt.Fprintf(w, "%10s %10s %10s %10s %10s\n", "t", "head", "tail", "contact", "shock")
	for _, tm := range cp.Times {
		x := sp.WavePositions(tm)
		fmt.Fprintf(w, "%10.5f %10.5f %10.5f %10.5f %10.5f\n", tm, x[0], x[1], x[2], x[3])
	}
	return
}
