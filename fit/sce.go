package fit

import (
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// SCE adapts shuffled complex evolution — a population-based global
// search over the unit hypercube — to the box-constrained Minimizer
// contract. The starting point is ignored: the population samples the
// whole box, which makes SCE the escape hatch when the default local
// search keeps landing on the wrong ridge.
type SCE struct {
	// Complexes is the number of evolving complexes; values below 1
	// fall back to runtime.GOMAXPROCS(0).
	Complexes int
	// Seed fixes the sampler stream for reproducible searches; 0 seeds
	// from the wall clock.
	Seed int64
}

// Minimize implements Minimizer. The unit-hypercube sample u is mapped
// onto the box elementwise before each objective evaluation. The code is
// 0 when the best objective value is finite, 1 otherwise.
func (s *SCE) Minimize(obj func(x []float64) float64, start, lower, upper []float64) ([]float64, int) {
	dim := len(start)
	toBox := func(u []float64) []float64 {
		x := make([]float64, dim)
		for j := 0; j < dim; j++ {
			x[j] = mmaths.LinearTransform(lower[j], upper[j], u[j])
		}
		return x
	}

	rng := rand.New(mrg63k3a.New())
	if s.Seed != 0 {
		rng.Seed(s.Seed)
	} else {
		rng.Seed(time.Now().UnixNano())
	}

	nc := s.Complexes
	if nc < 1 {
		nc = runtime.GOMAXPROCS(0)
	}

	uFinal, fFinal := glbopt.SCE(nc, dim, rng, func(u []float64) float64 {
		return obj(toBox(u))
	}, true)

	x := toBox(uFinal)
	if math.IsNaN(fFinal) || math.IsInf(fFinal, 1) {
		return x, 1
	}
	return x, 0
}
