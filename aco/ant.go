// Package aco - the per-iteration agent.
//
// An ant owns its walked path, its tabu (visited) set and its RNG stream.
// Ownership is scoped to one iteration: reset() restarts the agent at the
// start node without reallocating, per the explicit reset contract.
package aco

import "math/rand"

// baseLength is the constant offset added to every tour length so that the
// Q/length deposit never divides by zero on an empty walk. It pairs with the
// +1-per-edge weight bias and is removed exactly when Cost is reported.
const baseLength = 1.0

// ant is one stochastic path builder. All fields are private to the engine;
// agents never outlive the colony that created them.
type ant struct {
	rng      *rand.Rand // independent derived stream, fixed at setup
	path     []int      // walked node prefix; path[0] is the start node
	visited  []bool     // tabu set over node indices
	dead     bool       // reached a node with no valid unvisited neighbor
	complete bool       // reached the goal, or died
}

// newAnt allocates an agent for an n-node grid with its own RNG stream.
// Complexity: O(n).
func newAnt(n int, rng *rand.Rand) *ant {
	return &ant{
		rng:     rng,
		path:    make([]int, 0, n),
		visited: make([]bool, n),
	}
}

// reset restarts the agent at start: clears the tabu set and the path
// in place (no reallocation) and drops the dead/complete flags.
// Complexity: O(n).
func (a *ant) reset(start int) {
	for i := range a.visited {
		a.visited[i] = false
	}
	a.path = a.path[:0]
	a.dead = false
	a.complete = false
	a.visit(start)
}

// at returns the agent's current node (the last visited one).
func (a *ant) at() int {
	return a.path[len(a.path)-1]
}

// visit appends node to the path and marks it visited.
func (a *ant) visit(node int) {
	a.path = append(a.path, node)
	a.visited[node] = true
}

// tourLength sums the (biased) weights along the walked path plus the base
// offset. w is the flattened n×n biased weight buffer.
// Complexity: O(len(path)).
func (a *ant) tourLength(w []float64, n int) float64 {
	length := baseLength
	var k int
	for k = 0; k+1 < len(a.path); k++ {
		length += w[a.path[k]*n+a.path[k+1]]
	}

	return length
}
