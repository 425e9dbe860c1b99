package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/statsim/monty/core"
	"github.com/statsim/monty/sim"
)

// parseSimArgs parses the <sample-size> <test> positional arguments shared by
// the simulation commands.
func parseSimArgs(args []string) (sampleSize int, kind core.TestKind, err error) {
	sampleSize, err = strconv.Atoi(args[0])
	if err != nil || sampleSize <= 0 {
		return 0, 0, fmt.Errorf("sample size must be a positive integer, got %q", args[0])
	}
	kind, err = core.ParseTestKind(args[1])
	if err != nil {
		return 0, 0, err
	}
	return sampleSize, kind, nil
}

// resolveIterations picks the iteration count: explicit flag, then the
// MONTY_ITERATIONS environment variable, then the engine default.
func resolveIterations(flagVal int) (int, error) {
	if flagVal != 0 {
		return flagVal, nil
	}
	if env := os.Getenv("MONTY_ITERATIONS"); env != "" {
		n, err := strconv.Atoi(env)
		if err != nil {
			return 0, fmt.Errorf("invalid MONTY_ITERATIONS %q: %v", env, err)
		}
		return n, nil
	}
	return sim.DefaultIterations, nil
}

// resolveWorkers picks the worker count the same way; 0 lets the engine use
// one worker per CPU.
func resolveWorkers(flagVal int) int {
	if flagVal != 0 {
		return flagVal
	}
	if env := os.Getenv("MONTY_WORKERS"); env != "" {
		if n, err := strconv.Atoi(env); err == nil {
			return n
		}
	}
	return 0
}

// newRunner assembles a Runner from the parsed args and resolved flags.
func newRunner(sampleSize int, kind core.TestKind) (*sim.Runner, error) {
	iters, err := resolveIterations(iterations)
	if err != nil {
		return nil, err
	}
	return &sim.Runner{
		Kind:       kind,
		SampleSize: sampleSize,
		Iterations: iters,
		Workers:    resolveWorkers(workers),
		Seed:       seed,
	}, nil
}
