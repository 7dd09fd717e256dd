// Package aco - the public entry point.
package aco

import (
	"github.com/katalvlaran/antgrid/grid"
	"github.com/katalvlaran/antgrid/matrix"
)

// Solve runs the full colony loop on the weighted grid and returns the best
// route found between opts.Start and opts.Goal.
//
// Contracts:
//   - w is an n×n matrix of finite non-negative true costs with
//     n == g.Nodes(); the engine applies its own +1-per-edge bias internally
//     to forbid zero-cost edges and removes it from the reported Cost.
//   - opts should originate from DefaultOptions(); every field is validated
//     before any iteration runs.
//   - Solve is re-entrant: each call starts from a fresh trail matrix and a
//     fresh population. w is read once during setup and never mutated.
//
// Outcome:
//   - Failing to reach the goal is not an error; Result.ReachedGoal reports
//     attainment and Path then holds the cheapest partial route observed.
//
// Complexity: O(Iterations × (m×n + n²)) time, O(n² + m×n) memory,
// where m = floor(AntFactor×n).
func Solve(w matrix.Matrix, g grid.Grid, opts Options) (Result, error) {
	n, m, err := validateAll(w, g, opts)
	if err != nil {
		return Result{}, err
	}

	c := newColony(w, g, n, m, opts)
	c.run()

	return c.result(), nil
}
