// Package ar1 builds first-order autoregressive — AR(1) — correlation
// structure in two forms: the dense correlation matrix itself, and its
// upper-triangular Cholesky factor written down in closed form.
//
// 🚀 What is AR(1) structure?
//
//	Correlation between positions i and j decays geometrically with
//	their lag: Corr(i, j) = ρ^|i−j|, for a single parameter ρ ∈ (−1, 1).
//	It is the workhorse model for measurements spaced along one axis —
//	field rows, time points, probe positions.
//
// ✨ Key features:
//   - CholeskyFactor: the factor R with RᵀR = Corr(ρ, p), built directly
//     in O(p²) — no matrix is ever formed or decomposed
//   - CorrelationMatrix: the dense p×p matrix, kept for validation paths
//     and round-trip tests against a generic decomposition
//   - strict eager validation: |ρ| ≥ 1 or p < 1 fail immediately with
//     sentinel errors, never at use time
//
// The closed form: row 0 of R is the raw profile [ρ⁰, ρ¹, …, ρ^(p−1)];
// every later row is the same profile scaled by c = √(1−ρ²) and
// right-shifted onto the diagonal. The scaling preserves unit variance
// (c² + ρ² = 1), so the diagonal stays strictly positive for |ρ| < 1.
//
// Complexity: CholeskyFactor O(p²) time and space, versus O(p³) for a
// generic Cholesky decomposition of the dense matrix.
package ar1
