package kron_test

import (
	"testing"

	"github.com/kalvessen/fieldsim/kron"
)

// benchmarkFactor assembles the joint factor for a p×p grid.
func benchmarkFactor(b *testing.B, p int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kron.Factor(p, p, 2, 1, 0.5, 0.3); err != nil {
			b.Fatalf("Factor failed: %v", err)
		}
	}
}

// BenchmarkFactor_Grid5x5 benchmarks a 25×25 joint factor.
func BenchmarkFactor_Grid5x5(b *testing.B) { benchmarkFactor(b, 5) }

// BenchmarkFactor_Grid10x10 benchmarks a 100×100 joint factor.
func BenchmarkFactor_Grid10x10(b *testing.B) { benchmarkFactor(b, 10) }

// BenchmarkFactor_Grid20x20 benchmarks a 400×400 joint factor.
func BenchmarkFactor_Grid20x20(b *testing.B) { benchmarkFactor(b, 20) }
