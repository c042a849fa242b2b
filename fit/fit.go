package fit

import (
	"math"
	"math/rand"

	"github.com/maseology/mmaths"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// Fit recovers (σx, ρx, σy, ρy) from the deviance function dev for an
// nx×ny grid.
//
// Contract in three stages:
//  1. validate configuration eagerly (ErrNilDeviance, ErrBadBounds);
//  2. wrap dev with the reparameterization bridge — each candidate θ is
//     expanded to the full triangular vector via RelativeFactor, with
//     bridge failures and NaN deviances mapped to +Inf;
//  3. drive the configured Minimizer from each starting point and keep
//     the lowest deviance.
//
// A nonzero Result.Code records non-convergence; it is data for the
// replication layer, never an error from Fit.
func Fit(dev DevianceFunc, nx, ny int, opts Options) (Result, error) {
	if dev == nil {
		return Result{}, ErrNilDeviance
	}
	lower := opts.Bounds.Lower[:]
	upper := opts.Bounds.Upper[:]
	for k := range lower {
		if math.IsNaN(lower[k]) || math.IsNaN(upper[k]) ||
			math.IsInf(lower[k], 0) || math.IsInf(upper[k], 0) ||
			lower[k] >= upper[k] {
			return Result{}, ErrBadBounds
		}
	}

	obj := func(x []float64) float64 {
		for k := range x {
			if x[k] < lower[k] || x[k] > upper[k] {
				return math.Inf(1)
			}
		}
		full, err := RelativeFactor(nx, ny, thetaFromSlice(x))
		if err != nil {
			return math.Inf(1)
		}
		v := dev(full)
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		return v
	}

	mzr := opts.Minimizer
	if mzr == nil {
		mzr = &NelderMead{}
	}

	best := Result{Deviance: math.Inf(1)}
	first := true
	for _, start := range startPoints(opts, lower, upper) {
		x, code := mzr.Minimize(obj, start, lower, upper)
		f := obj(x)
		if first || f < best.Deviance {
			best = Result{Theta: thetaFromSlice(x), Deviance: f, Code: code}
			first = false
		}
	}

	return best, nil
}

// startPoints assembles the starting vectors: opts.Start first, then
// MultiStart−1 points from a Latin-hypercube plan over the box.
func startPoints(opts Options, lower, upper []float64) [][]float64 {
	starts := [][]float64{opts.Start.slice()}
	extra := opts.MultiStart - 1
	if extra < 1 {
		return starts
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(opts.Seed)
	sp := smpln.NewLHC(rng, extra, len(lower), false)
	for k := 0; k < extra; k++ {
		x := make([]float64, len(lower))
		for j := range x {
			x[j] = mmaths.LinearTransform(lower[j], upper[j], sp.U[j][k])
		}
		starts = append(starts, x)
	}

	return starts
}
