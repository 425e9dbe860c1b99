// sim/runner.go
package sim

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/statsim/monty/core"
)

// ErrInvalidParameter is returned for parameters that are rejected before any
// trial runs.
var ErrInvalidParameter = errors.New("invalid simulation parameter")

// DefaultIterations is the trial count used by callers that let the
// iteration count default.
const DefaultIterations = 10000

// Runner simulates the null distribution of one goodness-of-fit statistic:
// each trial draws a fresh standard normal sample of SampleSize values,
// computes the statistic for Kind, and the trials are aggregated into either
// an empirical tail probability (Pvalue) or the raw statistic sequence
// (Distribution).
//
// Trials are independent and fan out across Workers goroutines. Each worker
// owns its own random source and sample buffer, so there is no shared
// generator and no locking; partial results land in disjoint slices and are
// merged once at the end.
type Runner struct {
	Kind       core.TestKind
	SampleSize int
	Iterations int

	// Workers is the worker goroutine count; <= 0 means one per CPU.
	Workers int

	// Seed fixes the run's random streams for reproducible results.
	// 0 seeds from the wall clock.
	Seed uint64
}

// Validate rejects parameters before any trial runs.
func (r *Runner) Validate() error {
	if r.SampleSize <= 0 {
		return fmt.Errorf("%w: sample size %d, want > 0", ErrInvalidParameter, r.SampleSize)
	}
	if r.Iterations <= 0 {
		return fmt.Errorf("%w: iterations %d, want > 0", ErrInvalidParameter, r.Iterations)
	}
	return nil
}

// Pvalue estimates P(statistic < threshold) under the null: the fraction of
// trials whose statistic lands strictly below the threshold. The result is in
// [0, 1] and, for a fixed run, is non-decreasing in the threshold.
func (r *Runner) Pvalue(threshold float64) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	counts := make([]int, r.workerCount())
	err := r.simulate(func(worker, _ int, stat float64) {
		if stat < threshold {
			counts[worker]++
		}
	})
	if err != nil {
		return 0, err
	}
	below := 0
	for _, c := range counts {
		below += c
	}
	return float64(below) / float64(r.Iterations), nil
}

// Distribution returns the statistic of every trial: exactly Iterations
// values, each in [0, 1], unsorted. Each worker's segment is in generation
// order; callers sort or bin for presentation.
func (r *Runner) Distribution() ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	out := make([]float64, r.Iterations)
	err := r.simulate(func(_, trial int, stat float64) {
		out[trial] = stat
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Runner) workerCount() int {
	n := r.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > r.Iterations {
		n = r.Iterations
	}
	return n
}

// simulate partitions the trial range evenly across workers and calls visit
// once per trial with the worker index, the global trial index, and the
// computed statistic. visit must only touch state owned by (worker, trial) —
// that is what keeps the reduction lock-free. Any trial error (a degenerate
// Lilliefors sample) fails the whole run; no partial results survive.
func (r *Runner) simulate(visit func(worker, trial int, stat float64)) error {
	if err := r.Validate(); err != nil {
		return err
	}
	nworkers := r.workerCount()
	seed := r.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	startTime := time.Now()
	defer func() {
		log.Printf("%s: %d trials of n=%d on %d workers in %v",
			r.Kind, r.Iterations, r.SampleSize, nworkers, time.Since(startTime))
	}()

	trialsPerWorker := (r.Iterations + nworkers - 1) / nworkers

	var g errgroup.Group
	for w := range nworkers {
		g.Go(func() error {
			// Each worker gets its own decorrelated stream, derived from
			// the run seed and worker index so fixed-seed runs reproduce.
			ref := core.StdNormal(rand.NewSource(splitmix64(seed + uint64(w))))
			buf := make([]float64, r.SampleSize)

			startTrial := w * trialsPerWorker
			endTrial := min((w+1)*trialsPerWorker, r.Iterations)
			for trial := startTrial; trial < endTrial; trial++ {
				for i := range buf {
					buf[i] = ref.Rand()
				}
				stat, err := core.Statistic(r.Kind, buf)
				if err != nil {
					return fmt.Errorf("trial %d: %w", trial, err)
				}
				visit(w, trial, stat)
			}
			return nil
		})
	}
	return g.Wait()
}

// splitmix64 whitens worker seeds so adjacent (seed + worker) inputs do not
// produce correlated streams.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
