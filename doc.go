// Package fieldsim is an in-memory toolkit for simulating spatially
// correlated field-trial data and recovering the generating variance
// parameters by numerical optimization.
//
// 🚀 What is fieldsim?
//
//	A small, deterministic library that brings together:
//		• Closed-form AR(1) Cholesky factors — O(p²), no decomposition
//		• Kronecker-built factors for separable 2-D covariance
//		• Plot-grid simulation of correlated measurements + white noise
//		• A profiled mixed-model deviance for one grouping factor
//		• Box-constrained parameter recovery (Nelder–Mead or SCE)
//		• A replication driver for empirical sampling distributions
//
// ✨ Why choose fieldsim?
//
//   - Explicit randomness – every draw flows from a caller-owned stream
//   - Determinism – fixed seed ⇒ bit-identical datasets and fits
//   - Narrow seams – the deviance engine and the minimizer are plain
//     function/interface values, swappable in tests
//   - Parallel replicates – independent streams per replicate index
//
// Under the hood, everything is organized under six subpackages:
//
//	ar1/       — AR(1) correlation matrices & their closed-form factors
//	kron/      — separable 2-D Cholesky factors via Kronecker products
//	simulate/  — correlated plot-grid data generation
//	lmm/       — profiled deviance for response ~ 1 + (cell | plot)
//	fit/       — (σx, ρx, σy, ρy) recovery over a box-constrained search
//	replicate/ — simulate-then-fit replication studies
//
// Quick ASCII example:
//
//	    y
//	    ↑  ρy governs decay between rows
//	    ┌───┬───┬───┐
//	    │z13│z23│z33│
//	    ├───┼───┼───┤
//	    │z12│z22│z32│
//	    ├───┼───┼───┤
//	    │z11│z21│z31│
//	    └───┴───┴───┘ → x   ρx governs decay between columns
//
//	one plot: a grid of measurements with separable correlation,
//	replicated P times, each plot mutually independent.
//
// Dive into the package docs for the algebra, the parameterization
// bridge, and worked replication studies under examples/.
//
//	go get github.com/kalvessen/fieldsim
package fieldsim
