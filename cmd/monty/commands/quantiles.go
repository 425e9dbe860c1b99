package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

// The significance levels critical-value tables are usually published at.
var quantileLevels = []float64{0.80, 0.90, 0.95, 0.99}

var quantilesCmd = &cobra.Command{
	Use:   "quantiles <sample-size> <test>",
	Short: "Prints simulated critical values at standard significance levels",
	Long: `Simulates the statistic's null distribution and prints its empirical
quantiles at the 80/90/95/99% levels - the critical values a test at the
corresponding significance level would compare an observed statistic against.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		sampleSize, kind, err := parseSimArgs(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		runner, err := newRunner(sampleSize, kind)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		distr, err := runner.Distribution()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
		sort.Float64s(distr)

		fmt.Printf("%s critical values, n=%d, %d trials\n",
			color.CyanString(kind.String()), sampleSize, runner.Iterations)
		for _, level := range quantileLevels {
			fmt.Printf("  %3.0f%%  %.5f\n", level*100, stat.Quantile(level, stat.Empirical, distr, nil))
		}
	},
}

func init() {
	AddCommand(quantilesCmd)
}
