// Package simulate generates synthetic field-trial datasets: P mutually
// independent plots, each an nx×ny grid of measurements with separable
// AR(1)×AR(1) correlation plus independent white noise.
//
// 🚀 How a plot is drawn:
//
//	z = vᵀ·C + σresid·ε,   v, ε ~ N(0, I)
//
//	where C is the upper-triangular Kronecker factor from package kron.
//	Multiplying a standard-normal row vector by C yields a draw from the
//	zero-mean multivariate normal with covariance Cᵀ·C — the factor is
//	already in closed form, so no covariance matrix is ever built or
//	decomposed on the simulation path.
//
// ✨ Determinism contract:
//
//   - The caller owns the random stream: Simulate consumes from the
//     rand.Source it is handed and nothing else. A fixed source state
//     yields a bit-identical dataset.
//   - Row order is fixed: plot-major, then y, with x fastest. Every
//     (plot, x, y) combination appears exactly once.
//
// Validation is eager: grid, scale and correlation parameters are checked
// before the first draw, so a bad configuration never consumes stream state.
package simulate
