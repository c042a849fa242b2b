// Package kron assembles Cholesky factors for separable 2-D covariance
// structure by taking the Kronecker product of two scaled AR(1) factors.
//
// 🚀 Why Kronecker?
//
//	A separable 2-D covariance over a p1×p2 grid factorizes as
//	Σ = Kron(σ1²·Corr(ρ1, p1), σ2²·Corr(ρ2, p2)). The Kronecker product
//	of the two per-axis Cholesky factors is itself the Cholesky factor
//	of Σ — so the joint factor of a (p1·p2)×(p1·p2) matrix is available
//	without ever decomposing it. That shortcut dominates asymptotically
//	as p1·p2 grows: building Σ and decomposing it costs O((p1·p2)³).
//
// ✨ Key features:
//   - Factor: direct index-arithmetic assembly, upper-triangular by
//     construction, zero blocks skipped
//   - GridFactor: the single place that owns the grid linearization
//     convention (x fastest), shared by the simulator and the fitter
//   - eager validation of scales, correlations and dimensions
//
// The separability law — Factorᵀ·Factor equals the Kronecker product of
// the two scaled correlation matrices — is pinned by round-trip tests
// against gonum's dense Kronecker and generic Cholesky.
package kron
