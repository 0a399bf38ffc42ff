package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/riemann1d/InputParameters"
	"github.com/notargets/riemann1d/riemann"
)

// BenchCmd times repeated evaluation of one solved problem, as an animation would
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time repeated evaluation of the exact solution",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			logger = newLogger()
			cp     *InputParameters.CaseParameters
		)
		if cp, err = readCase(logger); err != nil {
			return
		}
		return RunBench(cp, viper.GetInt("frames"), os.Stdout, logger)
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("frames", "n", 1000, "number of frames to evaluate")
	_ = viper.BindPFlag("frames", BenchCmd.Flags().Lookup("frames"))
}

func RunBench(cp *InputParameters.CaseParameters, frames int, w io.Writer, logger *slog.Logger) (err error) {
	var (
		rs    *riemann.RiemannSolver
		sp    *riemann.SolvedProblem
		X     []float64
		tEnd  = cp.Times[len(cp.Times)-1]
		start = time.Now()
	)
	if frames < 1 {
		return fmt.Errorf("frames must be >= 1, have %d", frames)
	}
	if rs, err = cp.Solver(); err != nil {
		return
	}
	if sp, err = rs.Solve(cp.Left.GasState(), cp.Right.GasState(), cp.X0); err != nil {
		return
	}
	solveTime := time.Since(start)
	if X, err = sp.SamplePoints(cp.XMin, cp.XMax, cp.NPts, tEnd); err != nil {
		return
	}
	dst := riemann.NewFields(len(X))
	run := func() error {
		for i := 0; i < frames; i++ {
			tm := tEnd * float64(i+1) / float64(frames)
			if err := sp.EvaluateInto(X, tm, &dst); err != nil {
				return err
			}
		}
		return nil
	}
	start = time.Now()
	if err = run(); err != nil {
		return
	}
	elapsed := time.Since(start)
	nPts := float64(frames * len(X))
	fmt.Fprintf(w, "Star state solve = %v, Iterations = %d\n", solveTime, sp.Star().Iterations)
	fmt.Fprintf(w, "Frames = %d, Points/Frame = %d, Elapsed = %v, ns/Point = %8.2f\n",
		frames, len(X), elapsed, float64(elapsed.Nanoseconds())/nPts)
	nThreads := runtime.NumCPU()
	start = time.Now()
	for i := 0; i < frames; i++ {
		if _, err = sp.EvaluateParallel(X, tEnd*float64(i+1)/float64(frames), nThreads); err != nil {
			return
		}
	}
	elapsed = time.Since(start)
	fmt.Fprintf(w, "Threads = %d, Elapsed = %v, ns/Point = %8.2f\n",
		nThreads, elapsed, float64(elapsed.Nanoseconds())/nPts)
	instructions, perr := countInstructions(run)
	if perr != nil {
		logger.Warn("hardware counters unavailable", "error", perr)
		return
	}
	fmt.Fprintf(w, "Instructions/Point = %8.2f\n", float64(instructions)/nPts)
	return
}
