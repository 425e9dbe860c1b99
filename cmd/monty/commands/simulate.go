package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <sample-size> <test>",
	Short: "Simulates a statistic's null distribution for one sample size",
	Long: `Runs repeated trials, each drawing a fresh standard normal sample of the
given size and computing the chosen test statistic (kolmogorov-smirnov or
lilliefors).

With --test-statistic X, prints the empirical probability that the statistic
falls strictly below X (the simulated CDF of the null distribution at X).
With --make-distribution, prints every trial's statistic, one per line, for
external binning or plotting. Exactly one of the two must be given.`,
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

		if cmd.Flags().Changed("test-statistic") {
			threshold, _ := cmd.Flags().GetFloat64("test-statistic")
			pvalue, err := runner.Pvalue(threshold)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("%s = %v\n", color.CyanString("pvalue"), pvalue)
			return
		}

		distr, err := runner.Distribution()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		for _, stat := range distr {
			fmt.Fprintf(w, "%v\n", stat)
		}
	},
}

func init() {
	simulateCmd.Flags().Float64("test-statistic", 0, "Report the probability that the statistic is less than this value")
	simulateCmd.Flags().Bool("make-distribution", false, "Output every trial's statistic")
	simulateCmd.MarkFlagsMutuallyExclusive("test-statistic", "make-distribution")
	simulateCmd.MarkFlagsOneRequired("test-statistic", "make-distribution")
	AddCommand(simulateCmd)
}
