// Package aco - colony state and the step/update machinery.
//
// The trail matrix is owned by the colony and crossed by a phase barrier:
// within one grid-step all active ants *read* trails to decide, then moves
// (and dead-agent resets) are applied; evaporation and deposits run strictly
// after all movement for the iteration. Decisions inside a step therefore
// see a stable trail snapshot, which is what makes the parallel fan-out
// equivalent to the sequential drive.
package aco

import (
	"sync"

	"github.com/katalvlaran/antgrid/grid"
	"github.com/katalvlaran/antgrid/matrix"
)

// weightBias is added to every edge weight at ingestion so that no edge has
// zero cost (the desirability rule divides by weight). Removed exactly from
// the reported Cost.
const weightBias = 1.0

// move is one ant's decision for the current grid-step.
// ok=false signals "no move": every grid-neighbor is invalid or visited.
type move struct {
	next int
	ok   bool
}

// colony holds all mutable run state. It lives for exactly one Solve call.
type colony struct {
	g       grid.Grid
	n       int     // node count (== g.Nodes())
	opts    Options // validated, immutable for the run
	pow     PowFunc
	workers int

	w      []float64 // biased weights, flattened: w[i*n+j] = At(i,j)+weightBias
	trails []float64 // pheromone per directed edge, flattened like w
	ants   []*ant
	moves  []move // per-ant decision buffer, reused every step

	best    []int   // best walked prefix so far (raw-length comparison)
	bestRaw float64 // biased length of best
}

// newColony flattens the weight matrix with the edge bias, fills the trail
// matrix with TrailInit and derives one RNG stream per ant.
// Preconditions were established by validateAll.
// Complexity: O(n² + m×n) time and memory.
func newColony(w matrix.Matrix, g grid.Grid, n, m int, opts Options) *colony {
	c := &colony{
		g:       g,
		n:       n,
		opts:    opts,
		pow:     opts.Pow,
		workers: opts.Workers,
		w:       make([]float64, n*n),
		trails:  make([]float64, n*n),
		ants:    make([]*ant, m),
		moves:   make([]move, m),
	}
	if c.pow == nil {
		c.pow = ApproxPow
	}
	if c.workers < 1 {
		c.workers = 1
	}
	if c.workers > m {
		c.workers = m
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ := w.At(i, j) // bounds are valid by construction
			c.w[i*n+j] = v + weightBias
		}
	}
	for i = range c.trails {
		c.trails[i] = opts.TrailInit
	}

	seed := opts.Seed
	for i = 0; i < m; i++ {
		c.ants[i] = newAnt(n, deriveRNG(seed, uint64(i)))
	}

	return c
}

// setupAnts restarts every agent at the start node for a fresh iteration.
// Complexity: O(m×n).
func (c *colony) setupAnts() {
	for _, a := range c.ants {
		a.reset(c.opts.Start)
	}
}

// decide applies the decision rule for one agent at its current node.
//
// Order of business (per the Ant System movement rule):
//  1. With probability pr, a uniformly random pick among valid unvisited
//     neighbors; an empty candidate list falls through, not fails.
//  2. Desirability distribution trail^α × (1/weight)^β over the candidates,
//     normalized; a zero sum is "no move".
//  3. Cumulative-mass draw; if rounding leaves the mass short of r, the
//     first candidate in direction order wins.
//
// Reads trails and weights only; writes nothing shared. Safe to run for
// distinct ants concurrently within a step.
//
// Complexity: O(4) per call.
func (c *colony) decide(a *ant) (int, bool) {
	cur := a.at()

	// Valid unvisited neighbors, gathered in fixed direction order.
	var (
		cand [grid.NumDirections]int
		k    int
		d    grid.Direction
	)
	for d = grid.Left; d < grid.NumDirections; d++ {
		if j, ok := c.g.Neighbor(cur, d); ok && !a.visited[j] {
			cand[k] = j
			k++
		}
	}
	if k == 0 {
		return 0, false
	}

	// Occasional pure exploration, restricted to the same candidate set.
	if c.opts.RandomMoveProb > 0 && a.rng.Float64() < c.opts.RandomMoveProb {
		return cand[a.rng.Intn(k)], true
	}

	// Desirability mass per candidate: stronger trail, cheaper edge ⇒ more.
	var (
		des   [grid.NumDirections]float64
		denom float64
		row   = cur * c.n
		i     int
	)
	for i = 0; i < k; i++ {
		j := cand[i]
		m := c.pow(c.trails[row+j], c.opts.Alpha) * c.pow(1.0/c.w[row+j], c.opts.Beta)
		des[i] = m
		denom += m
	}
	if denom == 0 {
		return 0, false
	}

	// Proportional selection by cumulative mass.
	r := a.rng.Float64()
	var cum float64
	for i = 0; i < k; i++ {
		cum += des[i] / denom
		if cum >= r {
			return cand[i], true
		}
	}

	// Rounding left the cumulative mass short of r: first candidate wins.
	return cand[0], true
}

// step advances every active agent by one grid-step.
// Phase A computes all decisions against the stable trail snapshot (fanned
// out across workers when configured); phase B applies moves, goal checks
// and dead-agent penalties sequentially.
// Returns false once every agent is complete or dead.
func (c *colony) step() bool {
	c.decideAll()

	active := false
	for i, a := range c.ants {
		if a.complete || a.dead {
			continue
		}
		mv := c.moves[i]
		if !mv.ok {
			c.kill(a)
			continue
		}
		a.visit(mv.next)
		if mv.next == c.opts.Goal {
			a.complete = true
			continue
		}
		active = true
	}

	return active
}

// decideAll fills c.moves for every active ant. With workers > 1 the ants
// are strided across goroutines; each ant only touches its own state and its
// own RNG stream, so the outcome is identical to the sequential order.
func (c *colony) decideAll() {
	if c.workers <= 1 {
		for i, a := range c.ants {
			if a.complete || a.dead {
				continue
			}
			next, ok := c.decide(a)
			c.moves[i] = move{next: next, ok: ok}
		}

		return
	}

	var wg sync.WaitGroup
	wg.Add(c.workers)
	for wkr := 0; wkr < c.workers; wkr++ {
		go func(offset int) {
			defer wg.Done()
			for i := offset; i < len(c.ants); i += c.workers {
				a := c.ants[i]
				if a.complete || a.dead {
					continue
				}
				next, ok := c.decide(a)
				c.moves[i] = move{next: next, ok: ok}
			}
		}(wkr)
	}
	wg.Wait()
}

// kill marks an agent dead (and therefore complete) and erases the
// reinforcement along its walked prefix: every traversed edge's trail drops
// back to the initial constant, so a dead end stops attracting followers.
// Complexity: O(len(path)).
func (c *colony) kill(a *ant) {
	a.dead = true
	a.complete = true
	var k int
	for k = 0; k+1 < len(a.path); k++ {
		c.trails[a.path[k]*c.n+a.path[k+1]] = c.opts.TrailInit
	}
}

// updateTrails runs the per-iteration trail update: multiplicative
// evaporation over the whole matrix, then an additive deposit of
// Q/tourLength on every edge each agent traversed. Dead agents deposit too:
// their prefix was reset to TrailInit by kill, so reinforcement restarts
// from that baseline rather than stale pre-death values.
//
// Invariant: Evaporation ∈ [0,1] and Q > 0 keep every trail ≥ 0.
//
// Complexity: O(n² + m×n).
func (c *colony) updateTrails() {
	var i int
	for i = range c.trails {
		c.trails[i] *= c.opts.Evaporation
	}

	for _, a := range c.ants {
		contribution := c.opts.Q / a.tourLength(c.w, c.n)
		var k int
		for k = 0; k+1 < len(a.path); k++ {
			c.trails[a.path[k]*c.n+a.path[k+1]] += contribution
		}
	}
}

// updateBest records the cheapest walk of this iteration if it beats the
// best so far. Comparison uses the raw biased length; partial paths of dead
// agents compete too, so a run that never reaches the goal still yields a
// best-effort route.
// Complexity: O(m×n).
func (c *colony) updateBest() {
	for _, a := range c.ants {
		raw := a.tourLength(c.w, c.n)
		if c.best == nil || raw < c.bestRaw {
			c.bestRaw = raw
			c.best = append(c.best[:0], a.path...)
		}
	}
}

// run executes the fixed iteration budget: reset agents, drive the colony to
// quiescence (or n-1 steps), update trails, track the best. No convergence
// early-exit, matching the bounded-loop contract.
func (c *colony) run() {
	var it, s int
	for it = 0; it < c.opts.Iterations; it++ {
		c.setupAnts()
		for s = 0; s < c.n-1; s++ {
			if !c.step() {
				break
			}
		}
		c.updateTrails()
		c.updateBest()
	}
}

// result packages the tracked best into the public Result, removing the
// ingestion bias exactly: Cost = Raw − baseLength − edges×weightBias.
func (c *colony) result() Result {
	path := append([]int(nil), c.best...)
	edges := len(path) - 1
	if edges < 0 {
		edges = 0
	}

	return Result{
		Path:        path,
		Cost:        c.bestRaw - baseLength - float64(edges)*weightBias,
		Raw:         c.bestRaw,
		ReachedGoal: len(path) > 0 && path[len(path)-1] == c.opts.Goal,
	}
}
