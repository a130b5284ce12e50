package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"puzzle-solver/internal/puzzle"
	"puzzle-solver/internal/report"
	"puzzle-solver/internal/slicer"
	"puzzle-solver/internal/solve"
)

var solveFlags struct {
	method     string
	threshold  float64
	backtracks int
	timeout    time.Duration
	seed       int64
	outDir     string
}

var solveCmd = &cobra.Command{
	Use:   "solve <set-dir>",
	Short: "Reconstruct a sliced puzzle directory",
	Long: `Solve loads a directory produced by "slice" and reconstructs the original
arrangement, writing the stitched image and a reconstruction map to
<out>/<name>_<N>slices/.

Methods: gradient (edge continuity), color (Lab color continuity),
random (unscored baseline), or all to run every method.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(cmd, args[0])
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveFlags.method, "method", "m", "color", "gradient | color | random | all")
	solveCmd.Flags().Float64Var(&solveFlags.threshold, "threshold", 0, "per-cell acceptance threshold (0 disables backtracking)")
	solveCmd.Flags().IntVar(&solveFlags.backtracks, "backtracks", 0, "backtrack budget (0 = pure greedy)")
	solveCmd.Flags().DurationVar(&solveFlags.timeout, "timeout", 0, "assembly deadline, e.g. 30s (0 = none)")
	solveCmd.Flags().Int64Var(&solveFlags.seed, "seed", 1, "seed for the random method")
	solveCmd.Flags().StringVarP(&solveFlags.outDir, "out", "o", "output_images", "output directory")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, dir string) error {
	ps, man, err := slicer.LoadSet(dir)
	if err != nil {
		return err
	}

	methods := []solve.Method{solve.Method(solveFlags.method)}
	if solveFlags.method == "all" {
		methods = solve.Methods()
	}

	opts := solve.Options{
		AcceptThreshold: solveFlags.threshold,
		MaxBacktracks:   solveFlags.backtracks,
		Timeout:         solveFlags.timeout,
		Seed:            solveFlags.seed,
	}

	for _, method := range methods {
		solver, err := solve.New(method, opts)
		if err != nil {
			return err
		}

		start := time.Now()
		res, err := solver.Reconstruct(cmd.Context(), ps)
		if err != nil {
			return fmt.Errorf("%s reconstruction: %w", method, err)
		}

		imgPath, err := report.WriteResult(solveFlags.outDir, man.Name, ps, res)
		if err != nil {
			return err
		}

		printSummary(res, imgPath, time.Since(start))
	}
	return nil
}

func printSummary(res *puzzle.Result, imgPath string, elapsed time.Duration) {
	fmt.Printf("%-8s  cost=%.4f", res.Method, res.TotalCost)
	if res.AccuracyKnown {
		fmt.Printf("  accuracy=%.1f%%", res.Accuracy*100)
	}
	if res.Backtracks > 0 {
		fmt.Printf("  backtracks=%d", res.Backtracks)
	}
	if res.Degraded {
		fmt.Print("  (degraded: budget or deadline exhausted)")
	}
	fmt.Printf("  [%s]\n", elapsed.Round(time.Millisecond))
	fmt.Printf("          -> %s\n", imgPath)
}
