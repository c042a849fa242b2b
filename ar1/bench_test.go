package ar1_test

import (
	"testing"

	"github.com/kalvessen/fieldsim/ar1"
	"gonum.org/v1/gonum/mat"
)

// benchmarkFactor runs the closed-form construction for dimension p.
func benchmarkFactor(b *testing.B, p int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ar1.CholeskyFactor(0.5, p); err != nil {
			b.Fatalf("CholeskyFactor failed: %v", err)
		}
	}
}

// benchmarkGeneric runs the dense-matrix + generic-decomposition path for
// dimension p, the O(p³) baseline the closed form replaces.
func benchmarkGeneric(b *testing.B, p int) {
	m, err := ar1.CorrelationMatrix(0.5, p)
	if err != nil {
		b.Fatalf("CorrelationMatrix failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var ch mat.Cholesky
		if !ch.Factorize(m) {
			b.Fatal("Factorize failed")
		}
	}
}

// BenchmarkCholeskyFactor_P10 benchmarks the closed form at p=10.
func BenchmarkCholeskyFactor_P10(b *testing.B) { benchmarkFactor(b, 10) }

// BenchmarkCholeskyFactor_P100 benchmarks the closed form at p=100.
func BenchmarkCholeskyFactor_P100(b *testing.B) { benchmarkFactor(b, 100) }

// BenchmarkGenericCholesky_P10 benchmarks the generic decomposition at p=10.
func BenchmarkGenericCholesky_P10(b *testing.B) { benchmarkGeneric(b, 10) }

// BenchmarkGenericCholesky_P100 benchmarks the generic decomposition at p=100.
func BenchmarkGenericCholesky_P100(b *testing.B) { benchmarkGeneric(b, 100) }
