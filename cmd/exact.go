package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/riemann1d/InputParameters"
	"github.com/notargets/riemann1d/riemann"
)

// ExactCmd samples the exact solution at every time in the case file
var ExactCmd = &cobra.Command{
	Use:   "exact",
	Short: "Write the exact solution as CSV",
	Long: `
Solves the star state once and samples density, velocity, pressure and specific
internal energy at every time listed in the case file. Rows are t,x,rho,u,p,e.

riemann1d exact -I sod.yaml -o sod.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			logger = newLogger()
			cp     *InputParameters.CaseParameters
			w      io.Writer = os.Stdout
		)
		if cp, err = readCase(logger); err != nil {
			return
		}
		if out := viper.GetString("output"); len(out) != 0 && out != "-" {
			var f *os.File
			if f, err = os.Create(out); err != nil {
				return
			}
			defer f.Close()
			w = f
		}
		return RunExact(cp, w, logger)
	},
}

func init() {
	rootCmd.AddCommand(ExactCmd)
	ExactCmd.Flags().StringP("output", "o", "-", "CSV output file, - for stdout")
	_ = viper.BindPFlag("output", ExactCmd.Flags().Lookup("output"))
}

type ExactRow struct {
	T   float64 `csv:"t"`
	X   float64 `csv:"x"`
	Rho float64 `csv:"rho"`
	U   float64 `csv:"u"`
	P   float64 `csv:"p"`
	E   float64 `csv:"e"`
}

func RunExact(cp *InputParameters.CaseParameters, w io.Writer, logger *slog.Logger) (err error) {
	var (
		rs   *riemann.RiemannSolver
		sp   *riemann.SolvedProblem
		rows = make([][]ExactRow, len(cp.Times))
		g    errgroup.Group
	)
	if rs, err = cp.Solver(riemann.WithLogger(logger)); err != nil {
		return
	}
	if sp, err = rs.Solve(cp.Left.GasState(), cp.Right.GasState(), cp.X0); err != nil {
		return
	}
	sst := sp.Star()
	logger.Info("star state", "p", sst.P, "u", sst.U, "rhoL", sst.RhoL, "rhoR", sst.RhoR,
		"iterations", sst.Iterations)
	// One SolvedProblem is shared read only across all times
	for i, tm := range cp.Times {
		g.Go(func() (err error) {
			var (
				X    []float64
				f    riemann.Fields
				mass float64
			)
			if X, err = sp.SamplePoints(cp.XMin, cp.XMax, cp.NPts, tm); err != nil {
				return
			}
			if f, err = sp.Evaluate(X, tm); err != nil {
				return
			}
			if mass, err = riemann.Integrate(X, f.Density); err != nil {
				return
			}
			logger.Debug("sampled", "t", tm, "points", len(X), "mass", mass)
			rows[i] = make([]ExactRow, len(X))
			for j, s := range f.Samples(X) {
				rows[i][j] = ExactRow{T: tm, X: s.X, Rho: s.Rho, U: s.U, P: s.P, E: s.E}
			}
			return
		})
	}
	if err = g.Wait(); err != nil {
		return
	}
	var all []ExactRow
	for _, r := range rows {
		all = append(all, r...)
	}
	if err = gocsv.Marshal(&all, w); err != nil {
		return fmt.Errorf("unable to write csv: %w", err)
	}
	logger.Info("wrote exact solution", "times", len(cp.Times), "rows", len(all))
	return
}
