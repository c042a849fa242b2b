package fit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kalvessen/fieldsim/kron"
)

// LowerTranspose returns the row-major lower-triangular entries, diagonal
// included, of cᵀ for a square matrix c: element (i,j) of cᵀ is c[j,i],
// emitted for j ≤ i, rows in order.
//
// For an n×n input the result has n(n+1)/2 entries. This is the exact
// vector layout DevianceFunc consumes.
func LowerTranspose(c mat.Matrix) []float64 {
	n, _ := c.Dims()
	out := make([]float64, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			out = append(out, c.At(j, i))
		}
	}
	return out
}

// RelativeFactor bridges the physical (σ, ρ) parameterization to the
// triangular vector the deviance engine consumes: build the nx×ny grid
// factor, transpose it, flatten the lower triangle.
//
// Errors are the factor-construction sentinels (kron.ErrBadScale,
// ar1.ErrBadCorrelation, ar1.ErrBadDimension); the fitter maps them to
// +Inf deviance so the minimizer rejects the candidate.
func RelativeFactor(nx, ny int, th Theta) ([]float64, error) {
	c, err := kron.GridFactor(nx, ny, th.SigmaX, th.SigmaY, th.RhoX, th.RhoY)
	if err != nil {
		return nil, err
	}
	return LowerTranspose(c), nil
}
