// Package fit: option, parameter and result types plus sentinel errors
// for the parameter-recovery layer.
package fit

import "errors"

// Sentinel errors for fitter configuration.
var (
	// ErrNilDeviance indicates a missing deviance function.
	ErrNilDeviance = errors.New("fit: deviance function must not be nil")
	// ErrBadBounds indicates malformed box constraints (lower ≥ upper, or NaN).
	ErrBadBounds = errors.New("fit: each lower bound must be finite and below its upper bound")
)

// DevianceFunc maps the full triangular parameter vector — row-major
// lower-triangular entries, diagonal included, of the transposed joint
// factor — to a scalar deviance. Implementations must be deterministic
// and return +Inf (never panic) where the implied factor is ill-formed.
type DevianceFunc func(thetaFull []float64) float64

// Theta is the physical 4-parameter vector under recovery.
type Theta struct {
	SigmaX, RhoX float64
	SigmaY, RhoY float64
}

// slice returns the optimizer ordering [σx, ρx, σy, ρy].
func (t Theta) slice() []float64 {
	return []float64{t.SigmaX, t.RhoX, t.SigmaY, t.RhoY}
}

// thetaFromSlice is the inverse of Theta.slice.
func thetaFromSlice(x []float64) Theta {
	return Theta{SigmaX: x[0], RhoX: x[1], SigmaY: x[2], RhoY: x[3]}
}

// Bounds holds elementwise box constraints in the ordering [σx, ρx, σy, ρy].
type Bounds struct {
	Lower, Upper [4]float64
}

// DefaultSigmaMax caps the standard-deviation search range. The model's
// σ axes are unbounded above in principle; the cap keeps population-based
// minimizers on a finite box.
const DefaultSigmaMax = 100.0

// DefaultBounds returns σ ∈ [0, DefaultSigmaMax] and ρ ∈ [-1, 1] per axis.
// The closed boundary values are admissible to the minimizer but map to
// +Inf deviance (σ=0 and |ρ|=1 are not constructible factors).
func DefaultBounds() Bounds {
	return Bounds{
		Lower: [4]float64{0, -1, 0, -1},
		Upper: [4]float64{DefaultSigmaMax, 1, DefaultSigmaMax, 1},
	}
}

// Minimizer minimizes an objective over a box-constrained domain from a
// starting point. It returns the best vector found and a convergence code:
// 0 on success, nonzero for the implementation's failure reason.
type Minimizer interface {
	Minimize(obj func(x []float64) float64, start, lower, upper []float64) ([]float64, int)
}

// Result is one recovery outcome. A nonzero Code records non-convergence;
// the estimate is still reported for inspection.
type Result struct {
	Theta    Theta
	Deviance float64
	Code     int
}

// Options configures a fit.
type Options struct {
	// Start is the initial parameter vector. DefaultOptions uses the
	// generic σ=1, ρ=0 per axis.
	Start Theta
	// Bounds are the elementwise box constraints.
	Bounds Bounds
	// Minimizer drives the search. Nil selects NelderMead.
	Minimizer Minimizer
	// MultiStart is the total number of starting points: the first is
	// Start, the rest come from a Latin-hypercube plan over the box.
	// Values below 2 run a single start.
	MultiStart int
	// Seed feeds the Latin-hypercube plan when MultiStart > 1.
	Seed int64
}

// DefaultOptions returns the generic single-start configuration.
func DefaultOptions() Options {
	return Options{
		Start:  Theta{SigmaX: 1, RhoX: 0, SigmaY: 1, RhoY: 0},
		Bounds: DefaultBounds(),
	}
}
