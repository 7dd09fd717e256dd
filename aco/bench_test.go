package aco_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antgrid/aco"
	"github.com/katalvlaran/antgrid/grid"
	"github.com/katalvlaran/antgrid/matrix"
)

// BenchmarkApproxPow measures the bit-trick strategy on desirability-shaped
// inputs (trail^α and (1/weight)^β pairs).
func BenchmarkApproxPow(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		a := 0.5 + float64(i%1000)/250.0
		sink += aco.ApproxPow(a, 5)
	}
	_ = sink
}

// BenchmarkMathPow is the exact baseline the approximation is traded against.
func BenchmarkMathPow(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		a := 0.5 + float64(i%1000)/250.0
		sink += math.Pow(a, 5)
	}
	_ = sink
}

// BenchmarkSolve_10x10 runs a short budget on a 100-node lattice, the
// reference problem size.
func BenchmarkSolve_10x10(b *testing.B) {
	const n = 100
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = float64((i*31+j*17)%9 + 1)
			}
		}
	}
	w, err := matrix.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows: %v", err)
	}
	g, err := grid.New(10, 10)
	if err != nil {
		b.Fatalf("grid.New: %v", err)
	}

	opts := aco.DefaultOptions()
	opts.Start, opts.Goal = 55, 22
	opts.Iterations = 10
	opts.Seed = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := aco.Solve(w, g, opts); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}
