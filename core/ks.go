// core/ks.go
package core

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrDegenerateSample is returned when a sample's standard deviation is zero
// (all values identical, or fewer than two values), leaving no fitted
// distribution to test against.
var ErrDegenerateSample = errors.New("degenerate sample: zero standard deviation")

// EmpiricalDeviation computes the one-sample Kolmogorov-Smirnov type
// statistic: the largest vertical gap between the empirical CDF of the sample
// and the reference CDF F.
//
// sorted must be ascending and non-empty. For each rank i (1-based) both
// one-sided gaps are taken:
//
//	D+ = i/n - F(x_i)
//	D- = F(x_i) - (i-1)/n
//
// and the statistic is the maximum over all of them. Equal values keep their
// own distinct ranks, so a run of ties widens D+ at its last element and D-
// at its first. The result is always in [0, 1].
func EmpiricalDeviation(sorted []float64, F func(float64) float64) float64 {
	n := float64(len(sorted))
	maxDev := 0.0
	for i, x := range sorted {
		fx := F(x)
		if dplus := float64(i+1)/n - fx; dplus > maxDev {
			maxDev = dplus
		}
		if dminus := fx - float64(i)/n; dminus > maxDev {
			maxDev = dminus
		}
	}
	return maxDev
}

// FitNormal estimates (mu, sigma) from the sample, with the unbiased (n-1)
// standard deviation the Lilliefors test is defined over.
func FitNormal(sample []float64) (mu, sigma float64, err error) {
	mu = stat.Mean(sample, nil)
	sigma = stat.StdDev(sample, nil)
	// n < 2 yields NaN from the n-1 denominator; both cases are the same
	// degeneracy as far as the fitted CDF is concerned.
	if sigma == 0 || math.IsNaN(sigma) {
		return 0, 0, ErrDegenerateSample
	}
	return mu, sigma, nil
}
