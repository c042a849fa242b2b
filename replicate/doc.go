// Package replicate runs simulate-then-fit cycles across many independent
// replicates and collects the parameter estimates into a results table —
// the raw material for an empirical sampling distribution.
//
// 🚀 One replicate r:
//
//	stream(Seed+r) → simulate.Simulate → lmm.NewDeviance → fit.Fit → Row
//
//	Replicates share no mutable state: each owns a random stream seeded
//	by its index, so the results are identical whether replicates run
//	sequentially (the reference behavior) or fanned across a worker pool.
//
// ✨ Key features:
//
//   - per-replicate deterministic streams: stream_seed = Seed + index
//   - Workers > 1 distributes replicates over goroutines; rows are keyed
//     by replicate index, so no ordering or locking is required
//   - non-convergence is recorded in the row's Code field and the run
//     continues; only invalid configuration aborts
//   - Summary/WriteCSV helpers for downstream distributional analysis
//   - optional terminal progress bar for long studies
package replicate
