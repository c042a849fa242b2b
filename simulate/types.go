// Package simulate: options, record types and sentinel errors for the
// plot-grid data generator.
package simulate

import "errors"

// Sentinel errors for simulation inputs. Dimension, scale and correlation
// violations surface as ar1/kron sentinels from the factor construction.
var (
	// ErrBadPlots indicates a non-positive plot count.
	ErrBadPlots = errors.New("simulate: plot count must be a positive integer")
	// ErrBadNoise indicates a negative (or NaN) residual standard deviation.
	ErrBadNoise = errors.New("simulate: residual standard deviation must be non-negative")
	// ErrMalformedDataset indicates a dataset that does not cover each
	// (plot, x, y) cell exactly once.
	ErrMalformedDataset = errors.New("simulate: dataset must cover each (plot, x, y) cell exactly once")
)

// Observation is one simulated measurement: plot identifier, 1-based grid
// coordinates, and the measured value.
type Observation struct {
	Plot int     // plot identifier, 1..P
	X    int     // column coordinate, 1..NX
	Y    int     // row coordinate, 1..NY
	Z    float64 // measurement
}

// Dataset is the flat record table produced by Simulate: P·NX·NY rows in
// deterministic order (plot-major, y next, x fastest).
type Dataset []Observation

// Options configures one simulation run.
type Options struct {
	// Plots is the number of independent plots P.
	Plots int
	// NX, NY are the grid dimensions along x and y.
	NX, NY int
	// SigmaX, SigmaY are the per-axis standard deviations of the
	// structured (spatially correlated) component.
	SigmaX, SigmaY float64
	// RhoX, RhoY are the per-axis AR(1) correlations, each in (-1, 1).
	RhoX, RhoY float64
	// SigmaResid is the standard deviation of the independent noise
	// added to every cell. Zero disables the noise term.
	SigmaResid float64
}

// DefaultOptions returns the baseline study configuration: 10 plots on a
// 10×10 grid, σx=2, σy=1, ρx=0.5, ρy=0.3, σresid=0.1.
func DefaultOptions() Options {
	return Options{
		Plots:      10,
		NX:         10,
		NY:         10,
		SigmaX:     2,
		SigmaY:     1,
		RhoX:       0.5,
		RhoY:       0.3,
		SigmaResid: 0.1,
	}
}
