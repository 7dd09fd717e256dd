// Package aco defines result types and sentinel errors for the colony engine.
package aco

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors returned by Solve before any iteration runs.
// Tests MUST match them via errors.Is; the engine never panics on user input.
var (
	// ErrNilWeights indicates a nil weight matrix.
	ErrNilWeights = errors.New("aco: weight matrix is nil")

	// ErrDimensionMismatch indicates that the weight-matrix order does not
	// equal the grid's node count.
	ErrDimensionMismatch = errors.New("aco: matrix order does not match grid nodes")

	// ErrNodeOutOfRange indicates a start or goal node outside [0, n).
	ErrNodeOutOfRange = errors.New("aco: start/goal node out of range")

	// ErrNoAnts indicates the population factor yields zero ants; a colony
	// with no agents would iterate forever producing nothing.
	ErrNoAnts = errors.New("aco: population factor yields no ants")

	// ErrBadTrailInit indicates a non-positive initial trail value c.
	ErrBadTrailInit = errors.New("aco: TrailInit must be > 0")

	// ErrBadExponent indicates a negative Alpha or Beta exponent.
	ErrBadExponent = errors.New("aco: Alpha and Beta must be >= 0")

	// ErrBadEvaporation indicates an evaporation factor outside [0, 1].
	ErrBadEvaporation = errors.New("aco: Evaporation must be in [0,1]")

	// ErrBadDeposit indicates a non-positive deposit scale Q.
	ErrBadDeposit = errors.New("aco: Q must be > 0")

	// ErrBadAntFactor indicates a non-positive population factor.
	ErrBadAntFactor = errors.New("aco: AntFactor must be > 0")

	// ErrBadRandomProb indicates a random-move probability outside [0, 1].
	ErrBadRandomProb = errors.New("aco: RandomMoveProb must be in [0,1]")

	// ErrBadIterations indicates a non-positive iteration budget.
	ErrBadIterations = errors.New("aco: Iterations must be >= 1")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("aco: Workers must be >= 0")
)

// Result holds the outcome of a colony run.
type Result struct {
	// Path is the node sequence the best agent actually walked, starting at
	// the start node. When no agent ever reached the goal it is the cheapest
	// partial route observed; check ReachedGoal before trusting it.
	Path []int

	// Cost is the total weight of Path in the caller's units (the internal
	// +1-per-edge bias removed exactly).
	Cost float64

	// Raw is the internal biased length used for best-route comparison:
	// 1 + Σ(weight+1) over Path's edges. Exposed for diagnostics.
	Raw float64

	// ReachedGoal reports whether Path terminates at the goal node.
	ReachedGoal bool
}

// PathString renders a node-index path as "a->b->c" for logs and examples.
// Complexity: O(len(path)).
func PathString(path []int) string {
	var sb strings.Builder
	for i, v := range path {
		if i > 0 {
			sb.WriteString("->")
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
