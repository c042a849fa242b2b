package kron

import (
	"errors"
	"math"

	"github.com/kalvessen/fieldsim/ar1"
	"gonum.org/v1/gonum/mat"
)

// ErrBadScale indicates a non-positive (or NaN) standard deviation.
var ErrBadScale = errors.New("kron: scale must be strictly positive")

// Factor returns the upper-triangular Cholesky factor C of the separable
// covariance Kron(σ1²·Corr(ρ1, p1), σ2²·Corr(ρ2, p2)), built as
//
//	C = Kron(σ1·R1, σ2·R2)
//
// where R1, R2 are the closed-form AR(1) factors from package ar1. The
// first factor varies slowest: joint index (i1, i2) ↦ i1·p2 + i2.
//
// Errors:
//   - ErrBadScale             — σ1 ≤ 0, σ2 ≤ 0, or NaN.
//   - ar1.ErrBadCorrelation   — either ρ outside (-1, 1).
//   - ar1.ErrBadDimension     — either p < 1.
//
// Complexity: O((p1·p2)²) time, dominated by the nonzero upper triangle.
func Factor(p1, p2 int, sigma1, sigma2, rho1, rho2 float64) (*mat.TriDense, error) {
	if math.IsNaN(sigma1) || math.IsNaN(sigma2) || sigma1 <= 0 || sigma2 <= 0 {
		return nil, ErrBadScale
	}
	a, err := ar1.CholeskyFactor(rho1, p1)
	if err != nil {
		return nil, err
	}
	b, err := ar1.CholeskyFactor(rho2, p2)
	if err != nil {
		return nil, err
	}

	n := p1 * p2
	c := mat.NewTriDense(n, mat.Upper, nil)
	for i1 := 0; i1 < p1; i1++ {
		for j1 := i1; j1 < p1; j1++ {
			av := sigma1 * a.At(i1, j1)
			if av == 0 {
				continue
			}
			// B is upper-triangular, so only j2 ≥ i2 contributes.
			for i2 := 0; i2 < p2; i2++ {
				for j2 := i2; j2 < p2; j2++ {
					c.SetTri(i1*p2+i2, j1*p2+j2, av*sigma2*b.At(i2, j2))
				}
			}
		}
	}

	return c, nil
}

// GridFactor returns the joint factor for an nx×ny grid whose cells are
// linearized x fastest: cell (x, y), 1-based, sits at index (y−1)·nx + (x−1).
// Under that ordering the y axis is the slow Kronecker factor, so
//
//	GridFactor(nx, ny, σx, σy, ρx, ρy) = Factor(ny, nx, σy, σx, ρy, ρx).
//
// Both the simulator and the reparameterization bridge go through this
// function; keeping the ordering in one place is what makes their
// triangular parameterizations agree entry for entry.
func GridFactor(nx, ny int, sigmaX, sigmaY, rhoX, rhoY float64) (*mat.TriDense, error) {
	return Factor(ny, nx, sigmaY, sigmaX, rhoY, rhoX)
}
