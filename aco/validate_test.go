// Package aco_test contains black-box tests for Solve's validation stages
// and the solver's behavioral guarantees.
package aco_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/antgrid/aco"
	"github.com/katalvlaran/antgrid/grid"
	"github.com/katalvlaran/antgrid/matrix"
)

// uniformWeights builds an n×n matrix with all off-diagonal entries = v.
func uniformWeights(t *testing.T, n int, v float64) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = v
			}
		}
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

// mustGrid builds a grid; construction failures are programmer errors.
func mustGrid(t *testing.T, w, h int) grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	if err != nil {
		t.Fatalf("grid.New(%d,%d): %v", w, h, err)
	}
	return g
}

// TestSolve_OptionValidation covers every scalar-parameter sentinel.
func TestSolve_OptionValidation(t *testing.T) {
	g := mustGrid(t, 2, 2)
	w := uniformWeights(t, 4, 1)

	cases := []struct {
		name   string
		mutate func(*aco.Options)
		err    error
	}{
		{"TrailInitZero", func(o *aco.Options) { o.TrailInit = 0 }, aco.ErrBadTrailInit},
		{"TrailInitNegative", func(o *aco.Options) { o.TrailInit = -1 }, aco.ErrBadTrailInit},
		{"AlphaNegative", func(o *aco.Options) { o.Alpha = -0.5 }, aco.ErrBadExponent},
		{"BetaNegative", func(o *aco.Options) { o.Beta = -2 }, aco.ErrBadExponent},
		{"EvaporationNegative", func(o *aco.Options) { o.Evaporation = -0.1 }, aco.ErrBadEvaporation},
		{"EvaporationAboveOne", func(o *aco.Options) { o.Evaporation = 1.1 }, aco.ErrBadEvaporation},
		{"QZero", func(o *aco.Options) { o.Q = 0 }, aco.ErrBadDeposit},
		{"AntFactorZero", func(o *aco.Options) { o.AntFactor = 0 }, aco.ErrBadAntFactor},
		{"RandomProbNegative", func(o *aco.Options) { o.RandomMoveProb = -0.2 }, aco.ErrBadRandomProb},
		{"RandomProbAboveOne", func(o *aco.Options) { o.RandomMoveProb = 1.5 }, aco.ErrBadRandomProb},
		{"IterationsZero", func(o *aco.Options) { o.Iterations = 0 }, aco.ErrBadIterations},
		{"WorkersNegative", func(o *aco.Options) { o.Workers = -1 }, aco.ErrBadWorkers},
		{"StartNegative", func(o *aco.Options) { o.Start = -1 }, aco.ErrNodeOutOfRange},
		{"GoalTooLarge", func(o *aco.Options) { o.Goal = 4 }, aco.ErrNodeOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := aco.DefaultOptions()
			opts.Start, opts.Goal = 0, 3
			tc.mutate(&opts)
			_, err := aco.Solve(w, g, opts)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Solve error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestSolve_ZeroPopulationRejected verifies a population factor that floors
// to zero ants fails fast instead of silently iterating nothing.
func TestSolve_ZeroPopulationRejected(t *testing.T) {
	g := mustGrid(t, 2, 2)
	w := uniformWeights(t, 4, 1)

	opts := aco.DefaultOptions()
	opts.Start, opts.Goal = 0, 3
	opts.AntFactor = 0.1 // floor(0.1×4) == 0

	_, err := aco.Solve(w, g, opts)
	if !errors.Is(err, aco.ErrNoAnts) {
		t.Fatalf("Solve error = %v; want ErrNoAnts", err)
	}
}

// TestSolve_InputFaults covers nil/mis-shaped weight matrices.
func TestSolve_InputFaults(t *testing.T) {
	g := mustGrid(t, 2, 2)
	opts := aco.DefaultOptions()
	opts.Start, opts.Goal = 0, 3

	if _, err := aco.Solve(nil, g, opts); !errors.Is(err, aco.ErrNilWeights) {
		t.Fatalf("nil weights: error = %v; want ErrNilWeights", err)
	}

	// Square but wrong order for the grid.
	if _, err := aco.Solve(uniformWeights(t, 9, 1), g, opts); !errors.Is(err, aco.ErrDimensionMismatch) {
		t.Fatalf("order mismatch: error = %v; want ErrDimensionMismatch", err)
	}

	// Non-square surfaces the matrix sentinel.
	bad, err := matrix.FromRows([][]float64{{0, 1, 2}, {1, 0, 3}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if _, err = aco.Solve(bad, g, opts); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("non-square: error = %v; want matrix.ErrNonSquare", err)
	}

	// Negative weight surfaces the matrix sentinel.
	neg, err := matrix.FromRows([][]float64{{0, -1}, {1, 0}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	g12 := mustGrid(t, 2, 1)
	o := aco.DefaultOptions()
	o.Start, o.Goal = 0, 1
	if _, err = aco.Solve(neg, g12, o); !errors.Is(err, matrix.ErrNegativeWeight) {
		t.Fatalf("negative weight: error = %v; want matrix.ErrNegativeWeight", err)
	}
}
