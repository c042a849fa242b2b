// Package lmm provides the deviance side of the recovery loop: a profiled
// maximum-likelihood deviance for the one-grouping-factor mixed model
//
//	response ~ intercept + (grid cell | plot)
//
// with a fully parameterized per-plot random-effect factor.
//
// 🚀 The model:
//
//	z_p = μ·1 + b_p + e_p,   b_p ~ N(0, ΛΛᵀ),   e_p ~ N(0, s²·I)
//
//	per plot p, plots mutually independent. The caller hands over Λ as a
//	flat triangular vector (row-major lower triangle of the transposed
//	joint factor, diagonal included) and gets back −2·log-likelihood with
//	the intercept and the residual variance s² profiled out.
//
// ✨ How it is evaluated:
//
//   - ΛΛᵀ is eigendecomposed once per call; in the rotated basis the
//     covariance is diagonal for any s², so the s² profile is a cheap
//     one-dimensional minimization (golden section on log s²).
//   - Any NaN input, failed decomposition or non-finite intermediate maps
//     to +Inf — a rejectable value the minimizer routes around, never a
//     hard failure.
//
// This is deliberately not a general mixed-model engine: one formula, one
// grouping factor, no fixed-effect design beyond the intercept. The fit
// package only ever sees it as a DevianceFunc.
package lmm
