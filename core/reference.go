// core/reference.go
package core

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Reference is the continuous distribution samples are drawn from and tested
// against. distuv distributions satisfy it directly.
type Reference interface {
	CDF(x float64) float64
	Rand() float64
}

// StdNormal returns the standard normal reference over the given random
// source. A nil source falls back to distuv's shared global source, which is
// fine for one-off use but not for concurrent workers; the simulation engine
// always passes one independently seeded source per worker.
func StdNormal(src rand.Source) distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: src}
}
