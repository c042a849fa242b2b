// Package replicate: options, result rows and sentinel errors for the
// replication driver.
package replicate

import (
	"errors"

	"github.com/kalvessen/fieldsim/fit"
)

// ErrBadReps indicates a non-positive replicate count.
var ErrBadReps = errors.New("replicate: replicate count must be a positive integer")

// Row is one replicate's outcome: the estimate, its deviance, and the
// minimizer's convergence code (0 = converged). Rows are immutable once
// appended.
type Row struct {
	Rep      int
	Est      fit.Theta
	Deviance float64
	Code     int
}

// Results is the accumulated table, indexed by replicate.
type Results []Row

// Options configures a replication study.
type Options struct {
	// Reps is the number of independent simulate-then-fit cycles.
	Reps int
	// Plots, NX, NY shape each simulated dataset.
	Plots  int
	NX, NY int
	// SigmaX, SigmaY, RhoX, RhoY, SigmaResid are the generating values.
	SigmaX, SigmaY float64
	RhoX, RhoY     float64
	SigmaResid     float64
	// Seed is the base seed; replicate r draws from stream Seed+r.
	Seed uint64
	// Workers fans replicates across a goroutine pool when > 1.
	Workers int
	// Progress renders a terminal progress bar for long studies.
	Progress bool
	// Fit configures the per-replicate recovery. The zero value selects
	// fit.DefaultOptions.
	Fit fit.Options
}

// DefaultOptions returns the reference study: 200 replicates of 10 plots
// on a 10×10 grid with σx=2, σy=1, ρx=0.5, ρy=0.3, σresid=0.1, run
// sequentially from the generic starting values σ=1, ρ=0.
func DefaultOptions() Options {
	return Options{
		Reps:       200,
		Plots:      10,
		NX:         10,
		NY:         10,
		SigmaX:     2,
		SigmaY:     1,
		RhoX:       0.5,
		RhoY:       0.3,
		SigmaResid: 0.1,
		Workers:    1,
		Fit:        fit.DefaultOptions(),
	}
}
