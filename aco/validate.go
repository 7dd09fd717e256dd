// Package aco - validation stages shared by Solve.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case (weight scan); no hidden allocations.
package aco

import (
	"github.com/katalvlaran/antgrid/grid"
	"github.com/katalvlaran/antgrid/matrix"
)

// validateAll verifies Options + weight matrix + grid shape.
// It returns (n, m): the node count and the ant population size.
//
// Contract:
//   - w must be square of order n == g.Nodes(), entries finite and ≥ 0.
//   - Start/Goal must lie in [0, n).
//   - floor(AntFactor×n) must be ≥ 1 (a zero-ant colony is rejected, never
//     silently iterated).
//
// Complexity: O(n²) time, O(1) extra space.
func validateAll(w matrix.Matrix, g grid.Grid, opts Options) (int, int, error) {
	// Stage 1: Options-only sanity.
	if err := validateOptions(opts); err != nil {
		return 0, 0, err
	}

	// Stage 2: grid shape.
	if g.Width <= 0 || g.Height <= 0 {
		return 0, 0, grid.ErrBadDimensions
	}

	// Stage 3: weight matrix policy (square, finite, non-negative).
	if w == nil {
		return 0, 0, ErrNilWeights
	}
	n, err := matrix.ValidateWeights(w)
	if err != nil {
		return 0, 0, err
	}
	if n != g.Nodes() {
		return 0, 0, ErrDimensionMismatch
	}

	// Stage 4: node range (after n is known).
	if opts.Start < 0 || opts.Start >= n || opts.Goal < 0 || opts.Goal >= n {
		return 0, 0, ErrNodeOutOfRange
	}

	// Stage 5: population size.
	m := int(opts.AntFactor * float64(n))
	if m < 1 {
		return 0, 0, ErrNoAnts
	}

	return n, m, nil
}

// validateOptions checks internal consistency of Options without referencing
// matrices or grids.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TrailInit <= 0 {
		return ErrBadTrailInit
	}
	if opts.Alpha < 0 || opts.Beta < 0 {
		return ErrBadExponent
	}
	if opts.Evaporation < 0 || opts.Evaporation > 1 {
		return ErrBadEvaporation
	}
	if opts.Q <= 0 {
		return ErrBadDeposit
	}
	if opts.AntFactor <= 0 {
		return ErrBadAntFactor
	}
	if opts.RandomMoveProb < 0 || opts.RandomMoveProb > 1 {
		return ErrBadRandomProb
	}
	if opts.Iterations < 1 {
		return ErrBadIterations
	}
	if opts.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}
