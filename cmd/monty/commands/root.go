package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Flags shared by the simulation commands.
var (
	iterations int
	workers    int
	seed       uint64
)

var rootCmd = &cobra.Command{
	Use:   "monty",
	Short: "monty simulates the null distributions of goodness-of-fit statistics",
	Long: `monty runs Monte Carlo simulations of the Kolmogorov-Smirnov and
Lilliefors test statistics under repeated sampling from the standard normal
distribution. Use it for empirical p-values and critical-value tables when
closed-form tables are unavailable or do not apply (Lilliefors estimates its
parameters from the sample, which invalidates the standard KS tables).`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&iterations, "iterations", 0, "Number of simulation trials (default: MONTY_ITERATIONS env var or 10000)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Concurrent workers (default: MONTY_WORKERS env var or one per CPU)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed for reproducible runs (default: time-based)")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
