package lmm

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kalvessen/fieldsim/fit"
	"github.com/kalvessen/fieldsim/simulate"
)

const (
	// logScaleLo/Hi bracket the profiled residual variance on the
	// natural-log scale: s² ∈ [e⁻¹⁶, e¹⁶].
	logScaleLo = -16.0
	logScaleHi = 16.0
	// goldenIters is enough golden-section steps to pin log s² down to
	// ~1e-5 over the bracket above.
	goldenIters = 80
)

// NewDeviance builds the profiled deviance for the dataset on an nx×ny
// grid. The returned function is deterministic, safe for repeated calls,
// and total: malformed candidates yield +Inf rather than an error.
//
// Setup errors (malformed dataset, bad grid) are fatal and returned here,
// never deferred to evaluation time.
func NewDeviance(ds simulate.Dataset, nx, ny int) (fit.DevianceFunc, error) {
	plots, err := ds.PlotVectors(nx, ny)
	if err != nil {
		return nil, err
	}

	n := nx * ny
	ntot := float64(n * len(plots))

	// Intercept profiled by the grand mean.
	mu := 0.0
	for _, z := range plots {
		for _, v := range z {
			mu += v
		}
	}
	mu /= ntot

	resid := make([][]float64, len(plots))
	for p, z := range plots {
		r := make([]float64, n)
		for i, v := range z {
			r[i] = v - mu
		}
		resid[p] = r
	}

	nfull := n * (n + 1) / 2

	return func(thetaFull []float64) float64 {
		if len(thetaFull) != nfull {
			return math.Inf(1)
		}
		for _, v := range thetaFull {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return math.Inf(1)
			}
		}

		lam := unflattenLower(n, thetaFull)

		var rel mat.SymDense
		rel.SymOuterK(1, lam) // ΛΛᵀ

		var es mat.EigenSym
		if ok := es.Factorize(&rel, true); !ok {
			return math.Inf(1)
		}
		d := es.Values(nil)
		for i := range d {
			if math.IsNaN(d[i]) {
				return math.Inf(1)
			}
			if d[i] < 0 { // roundoff on a PSD product
				d[i] = 0
			}
		}
		var q mat.Dense
		es.VectorsTo(&q)

		// Rotate residuals into the eigenbasis: w_p = Qᵀ·r_p.
		w := make([][]float64, len(resid))
		for p, r := range resid {
			wp := make([]float64, n)
			for i := 0; i < n; i++ {
				s := 0.0
				for k := 0; k < n; k++ {
					s += q.At(k, i) * r[k]
				}
				wp[i] = s
			}
			w[p] = wp
		}

		dev := profileScale(d, w, ntot)
		if math.IsNaN(dev) {
			return math.Inf(1)
		}
		return dev
	}, nil
}

// unflattenLower rebuilds the n×n lower-triangular factor from its
// row-major flat form (diagonal included).
func unflattenLower(n int, theta []float64) *mat.TriDense {
	l := mat.NewTriDense(n, mat.Lower, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			l.SetTri(i, j, theta[k])
			k++
		}
	}
	return l
}

// deviance evaluates −2·logL at residual variance s² given the rotated
// residuals w and eigenvalues d of ΛΛᵀ:
//
//	dev = ntot·log(2π) + P·Σ log(dᵢ+s²) + Σ_p Σ_i w²_pi/(dᵢ+s²)
func deviance(d []float64, w [][]float64, ntot, s2 float64) float64 {
	logdet := 0.0
	for _, di := range d {
		logdet += math.Log(di + s2)
	}
	quad := 0.0
	for _, wp := range w {
		for i, wi := range wp {
			quad += wi * wi / (d[i] + s2)
		}
	}
	return ntot*math.Log(2*math.Pi) + float64(len(w))*logdet + quad
}

// profileScale minimizes the deviance over s² by golden-section search on
// the log scale. The profile is smooth and unimodal in log s² for any
// fixed spectrum.
func profileScale(d []float64, w [][]float64, ntot float64) float64 {
	obj := func(t float64) float64 {
		return deviance(d, w, ntot, math.Exp(t))
	}

	const phi = 0.6180339887498949 // (√5−1)/2
	a, b := logScaleLo, logScaleHi
	x1 := b - phi*(b-a)
	x2 := a + phi*(b-a)
	f1, f2 := obj(x1), obj(x2)
	for i := 0; i < goldenIters; i++ {
		if f1 < f2 {
			b, x2, f2 = x2, x1, f1
			x1 = b - phi*(b-a)
			f1 = obj(x1)
		} else {
			a, x1, f1 = x1, x2, f2
			x2 = a + phi*(b-a)
			f2 = obj(x2)
		}
	}
	if f1 < f2 {
		return f1
	}
	return f2
}
