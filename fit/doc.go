// Package fit recovers the four generating parameters (σx, ρx, σy, ρy)
// of a separable spatial covariance from one simulated dataset, by
// driving a box-constrained minimizer over an injected deviance function.
//
// 🚀 The seams:
//
//   - DevianceFunc — the external mixed-model engine reduced to a single
//     pure function: triangular parameter vector in, scalar deviance out.
//     Candidates the engine cannot evaluate come back as +Inf, which the
//     minimizer simply routes around.
//   - Minimizer — objective, start and elementwise bounds in; minimizing
//     vector and convergence code out (0 = success). Two implementations
//     ship: gonum's Nelder–Mead (default, local, honors the start) and
//     SCE (global shuffled complex evolution over the box).
//
// ✨ The reparameterization bridge:
//
//	The engine wants the row-major lower-triangular entries (diagonal
//	included) of the transposed joint factor; physics wants (σ, ρ) per
//	axis. RelativeFactor owns that translation — build the grid factor,
//	transpose, flatten — as one pure, independently tested function,
//	because inlining it inside objective closures is where the row/column
//	mistakes live.
//
// Non-convergence is data, not an error: Fit returns the best point found
// together with the minimizer's status code, and leaves the interpretation
// to the replication layer.
package fit
