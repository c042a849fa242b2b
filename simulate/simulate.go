package simulate

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kalvessen/fieldsim/kron"
)

// Simulate draws opts.Plots independent grids of spatially correlated
// measurements from the source src and returns them as a flat Dataset.
//
// Per plot: a standard-normal vector v of length NX·NY is drawn, the
// structured component is vᵀ·C for the joint grid factor C, and
// independent σresid·ε noise is added per cell. Rows are emitted
// plot-major, then y, with x fastest — fully deterministic given the
// grid dimensions and stream state.
//
// Errors: ErrBadPlots, ErrBadNoise, plus kron.ErrBadScale,
// ar1.ErrBadCorrelation and ar1.ErrBadDimension from factor construction.
// All are raised before any draw is consumed.
func Simulate(src rand.Source, opts Options) (Dataset, error) {
	if opts.Plots < 1 {
		return nil, ErrBadPlots
	}
	if math.IsNaN(opts.SigmaResid) || opts.SigmaResid < 0 {
		return nil, ErrBadNoise
	}
	cf, err := kron.GridFactor(opts.NX, opts.NY, opts.SigmaX, opts.SigmaY, opts.RhoX, opts.RhoY)
	if err != nil {
		return nil, err
	}

	n := opts.NX * opts.NY
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	ds := make(Dataset, 0, opts.Plots*n)
	v := mat.NewVecDense(n, nil)
	var z mat.Dense
	for p := 1; p <= opts.Plots; p++ {
		for i := 0; i < n; i++ {
			v.SetVec(i, norm.Rand())
		}
		z.Mul(v.T(), cf) // 1×n row vector times the upper-triangular factor

		for y := 1; y <= opts.NY; y++ {
			for x := 1; x <= opts.NX; x++ {
				k := (y-1)*opts.NX + (x - 1)
				ds = append(ds, Observation{
					Plot: p,
					X:    x,
					Y:    y,
					Z:    z.At(0, k) + opts.SigmaResid*norm.Rand(),
				})
			}
		}
	}

	return ds, nil
}

// PlotVectors regroups the dataset into per-plot response vectors under the
// shared linearization k = (y−1)·nx + (x−1), ordered by ascending plot
// identifier. It validates full coverage: every (plot, x, y) cell must
// appear exactly once, coordinates in range.
//
// The deviance engine consumes this view; anything assembled by Simulate
// passes by construction.
func (d Dataset) PlotVectors(nx, ny int) ([][]float64, error) {
	if nx < 1 || ny < 1 || len(d) == 0 {
		return nil, ErrMalformedDataset
	}
	n := nx * ny

	byPlot := make(map[int][]float64)
	seen := make(map[int][]bool)
	for _, o := range d {
		if o.X < 1 || o.X > nx || o.Y < 1 || o.Y > ny {
			return nil, ErrMalformedDataset
		}
		z, ok := byPlot[o.Plot]
		if !ok {
			z = make([]float64, n)
			byPlot[o.Plot] = z
			seen[o.Plot] = make([]bool, n)
		}
		k := (o.Y-1)*nx + (o.X - 1)
		if seen[o.Plot][k] {
			return nil, ErrMalformedDataset
		}
		seen[o.Plot][k] = true
		z[k] = o.Z
	}

	ids := make([]int, 0, len(byPlot))
	for id, flags := range seen {
		for _, ok := range flags {
			if !ok {
				return nil, ErrMalformedDataset
			}
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([][]float64, len(ids))
	for i, id := range ids {
		out[i] = byPlot[id]
	}

	return out, nil
}
