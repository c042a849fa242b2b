package ar1

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for AR(1) construction.
var (
	// ErrBadCorrelation indicates a correlation parameter outside (-1, 1).
	ErrBadCorrelation = errors.New("ar1: correlation must lie strictly inside (-1, 1)")
	// ErrBadDimension indicates a non-positive dimension.
	ErrBadDimension = errors.New("ar1: dimension must be a positive integer")
)

// CholeskyFactor returns the upper-triangular Cholesky factor R of the
// AR(1) correlation matrix for parameter rho and dimension p, so that
// Rᵀ·R = CorrelationMatrix(rho, p).
//
// Algorithm Outline:
//  1. Row 0 carries the raw correlation profile [ρ⁰, ρ¹, …, ρ^(p−1)].
//  2. Let c = √(1−ρ²), the unit-variance-preserving scale (c² + ρ² = 1).
//  3. Row i (i ≥ 1) is the profile scaled by c and right-shifted onto
//     the diagonal: R[i,j] = c·ρ^(j−i) for j ≥ i.
//
// Entries below the diagonal are never populated, so the result is
// upper-triangular by construction. For ρ = 0 the factor is exactly the
// identity; for p = 1 it is the 1×1 matrix [1].
//
// Errors:
//   - ErrBadCorrelation — |ρ| ≥ 1 (c would be non-real) or ρ is NaN.
//   - ErrBadDimension   — p < 1.
//
// Complexity: O(p²) time, O(p²) memory.
func CholeskyFactor(rho float64, p int) (*mat.TriDense, error) {
	if p < 1 {
		return nil, ErrBadDimension
	}
	if math.IsNaN(rho) || rho <= -1 || rho >= 1 {
		return nil, ErrBadCorrelation
	}

	r := mat.NewTriDense(p, mat.Upper, nil)

	// Row 0: the raw profile ρ⁰..ρ^(p-1).
	pw := 1.0
	for j := 0; j < p; j++ {
		r.SetTri(0, j, pw)
		pw *= rho
	}

	// Rows 1..p-1: the same profile scaled by c, shifted onto the diagonal.
	c := math.Sqrt(1 - rho*rho)
	for i := 1; i < p; i++ {
		pw = c
		for j := i; j < p; j++ {
			r.SetTri(i, j, pw)
			pw *= rho
		}
	}

	return r, nil
}

// CorrelationMatrix returns the dense symmetric AR(1) correlation matrix
// M with M[i,j] = ρ^|i−j|.
//
// It exists for validation only: tests decompose it independently and
// compare against CholeskyFactor. Simulation code never forms it.
//
// Errors: ErrBadCorrelation, ErrBadDimension (same policy as CholeskyFactor).
func CorrelationMatrix(rho float64, p int) (*mat.SymDense, error) {
	if p < 1 {
		return nil, ErrBadDimension
	}
	if math.IsNaN(rho) || rho <= -1 || rho >= 1 {
		return nil, ErrBadCorrelation
	}

	m := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		pw := 1.0
		for j := i; j < p; j++ {
			m.SetSym(i, j, pw)
			pw *= rho
		}
	}

	return m, nil
}
