package simulate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/kalvessen/fieldsim/ar1"
	"github.com/kalvessen/fieldsim/kron"
	"github.com/kalvessen/fieldsim/simulate"
)

// smallOptions is a compact configuration used across tests.
func smallOptions() simulate.Options {
	return simulate.Options{
		Plots: 3, NX: 4, NY: 3,
		SigmaX: 2, SigmaY: 1,
		RhoX: 0.5, RhoY: 0.3,
		SigmaResid: 0.1,
	}
}

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestSimulate_InvalidInputs verifies eager parameter validation, including
// errors surfaced from factor construction.
func TestSimulate_InvalidInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*simulate.Options)
		err    error
	}{
		{"ZeroPlots", func(o *simulate.Options) { o.Plots = 0 }, simulate.ErrBadPlots},
		{"NegativeNoise", func(o *simulate.Options) { o.SigmaResid = -0.1 }, simulate.ErrBadNoise},
		{"ZeroSigma", func(o *simulate.Options) { o.SigmaX = 0 }, kron.ErrBadScale},
		{"BadRho", func(o *simulate.Options) { o.RhoY = 1 }, ar1.ErrBadCorrelation},
		{"BadGrid", func(o *simulate.Options) { o.NX = 0 }, ar1.ErrBadDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := smallOptions()
			tc.mutate(&opts)
			_, err := simulate.Simulate(rand.NewSource(1), opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Shape & Ordering Tests
//----------------------------------------------------------------------------//

// TestSimulate_RowCountAndCoverage checks P·NX·NY rows with every
// (plot, x, y) combination appearing exactly once.
func TestSimulate_RowCountAndCoverage(t *testing.T) {
	opts := smallOptions()
	ds, err := simulate.Simulate(rand.NewSource(7), opts)
	require.NoError(t, err)
	require.Len(t, ds, opts.Plots*opts.NX*opts.NY)

	seen := make(map[[3]int]bool, len(ds))
	for _, o := range ds {
		key := [3]int{o.Plot, o.X, o.Y}
		assert.False(t, seen[key], "duplicate cell %v", key)
		seen[key] = true
	}
	assert.Len(t, seen, opts.Plots*opts.NX*opts.NY)
}

// TestSimulate_RowOrder pins the deterministic emission order:
// plot-major, then y, with x fastest.
func TestSimulate_RowOrder(t *testing.T) {
	opts := smallOptions()
	ds, err := simulate.Simulate(rand.NewSource(7), opts)
	require.NoError(t, err)

	i := 0
	for p := 1; p <= opts.Plots; p++ {
		for y := 1; y <= opts.NY; y++ {
			for x := 1; x <= opts.NX; x++ {
				o := ds[i]
				require.Equal(t, p, o.Plot, "row %d plot", i)
				require.Equal(t, x, o.X, "row %d x", i)
				require.Equal(t, y, o.Y, "row %d y", i)
				i++
			}
		}
	}
}

// TestSimulate_Deterministic asserts bit-identical output for a fixed seed.
func TestSimulate_Deterministic(t *testing.T) {
	opts := smallOptions()
	a, err := simulate.Simulate(rand.NewSource(42), opts)
	require.NoError(t, err)
	b, err := simulate.Simulate(rand.NewSource(42), opts)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the dataset bit for bit")

	c, err := simulate.Simulate(rand.NewSource(43), opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds must diverge")
}

//----------------------------------------------------------------------------//
// Distributional Sanity Tests
//----------------------------------------------------------------------------//

// TestSimulate_MarginalMoments checks that the cell-wise marginal variance
// approaches σx²σy² + σresid² over many independent plots. Statistical
// bound, not exact equality.
func TestSimulate_MarginalMoments(t *testing.T) {
	opts := simulate.Options{
		Plots: 4000, NX: 3, NY: 3,
		SigmaX: 2, SigmaY: 1,
		RhoX: 0.5, RhoY: 0.3,
		SigmaResid: 0.5,
	}
	ds, err := simulate.Simulate(rand.NewSource(11), opts)
	require.NoError(t, err)

	// Collect the corner cell (1,1) of every plot: i.i.d. across plots.
	zs := make([]float64, 0, opts.Plots)
	for _, o := range ds {
		if o.X == 1 && o.Y == 1 {
			zs = append(zs, o.Z)
		}
	}
	require.Len(t, zs, opts.Plots)

	mean := stat.Mean(zs, nil)
	sd := stat.StdDev(zs, nil)
	wantSD := math.Sqrt(2*2*1*1 + 0.5*0.5)

	assert.InDelta(t, 0, mean, 0.15, "zero-mean field")
	assert.InDelta(t, wantSD, sd, 0.15, "marginal standard deviation")
}

//----------------------------------------------------------------------------//
// PlotVectors Tests
//----------------------------------------------------------------------------//

// TestPlotVectors_RoundTrip regroups a simulated dataset and checks every
// value lands at its linear cell index.
func TestPlotVectors_RoundTrip(t *testing.T) {
	opts := smallOptions()
	ds, err := simulate.Simulate(rand.NewSource(3), opts)
	require.NoError(t, err)

	vecs, err := ds.PlotVectors(opts.NX, opts.NY)
	require.NoError(t, err)
	require.Len(t, vecs, opts.Plots)

	for _, o := range ds {
		k := (o.Y-1)*opts.NX + (o.X - 1)
		assert.Equal(t, o.Z, vecs[o.Plot-1][k], "plot %d cell (%d,%d)", o.Plot, o.X, o.Y)
	}
}

// TestPlotVectors_Malformed rejects gaps, duplicates and out-of-range cells.
func TestPlotVectors_Malformed(t *testing.T) {
	base := simulate.Dataset{
		{Plot: 1, X: 1, Y: 1, Z: 0.1},
		{Plot: 1, X: 2, Y: 1, Z: 0.2},
	}

	t.Run("Empty", func(t *testing.T) {
		_, err := simulate.Dataset{}.PlotVectors(2, 1)
		assert.ErrorIs(t, err, simulate.ErrMalformedDataset)
	})
	t.Run("MissingCell", func(t *testing.T) {
		_, err := base[:1].PlotVectors(2, 1)
		assert.ErrorIs(t, err, simulate.ErrMalformedDataset)
	})
	t.Run("DuplicateCell", func(t *testing.T) {
		dup := append(simulate.Dataset{}, base...)
		dup = append(dup, simulate.Observation{Plot: 1, X: 1, Y: 1, Z: 0.3})
		_, err := dup.PlotVectors(2, 1)
		assert.ErrorIs(t, err, simulate.ErrMalformedDataset)
	})
	t.Run("OutOfRange", func(t *testing.T) {
		bad := append(simulate.Dataset{}, base...)
		bad = append(bad, simulate.Observation{Plot: 1, X: 3, Y: 1, Z: 0.3})
		_, err := bad.PlotVectors(2, 1)
		assert.ErrorIs(t, err, simulate.ErrMalformedDataset)
	})
}
