// core/estimator.go
package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// TestKind selects which goodness-of-fit statistic a simulation estimates.
// The set is closed: the two kinds differ only in whether the reference
// distribution's parameters are estimated from the sample itself.
type TestKind int

const (
	// KolmogorovSmirnov tests against the fixed standard normal CDF.
	KolmogorovSmirnov TestKind = iota
	// Lilliefors fits mean and standard deviation from the sample first,
	// then tests against the fitted normal CDF. Its null distribution is
	// not the KS one, which is why it gets simulated separately.
	Lilliefors
)

func (k TestKind) String() string {
	switch k {
	case KolmogorovSmirnov:
		return "kolmogorov-smirnov"
	case Lilliefors:
		return "lilliefors"
	}
	return fmt.Sprintf("TestKind(%d)", int(k))
}

// ParseTestKind accepts the CLI spellings of the two test kinds.
func ParseTestKind(s string) (TestKind, error) {
	switch s {
	case "kolmogorov-smirnov", "ks":
		return KolmogorovSmirnov, nil
	case "lilliefors":
		return Lilliefors, nil
	}
	return 0, fmt.Errorf("unknown test %q (want kolmogorov-smirnov or lilliefors)", s)
}

// Statistic computes the test statistic for one sample. The sample is sorted
// in place; callers that need the original order must pass a copy. Only
// Lilliefors can fail: a zero-variance sample has no fitted normal to test
// against, and that error must surface rather than turn into a NaN statistic.
func Statistic(kind TestKind, sample []float64) (float64, error) {
	sort.Float64s(sample)
	if kind == Lilliefors {
		mu, sigma, err := FitNormal(sample)
		if err != nil {
			return 0, err
		}
		fitted := distuv.Normal{Mu: mu, Sigma: sigma}
		return EmpiricalDeviation(sample, fitted.CDF), nil
	}
	std := distuv.Normal{Mu: 0, Sigma: 1}
	return EmpiricalDeviation(sample, std.CDF), nil
}
