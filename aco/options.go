// Package aco - run parameters.
//
// Options is a plain struct: start from DefaultOptions() and override
// fields. All values are validated once at the top of Solve; the loop
// itself trusts them (hot-path discipline).
package aco

// Options configures a colony run. Immutable for the run's duration.
type Options struct {
	// TrailInit is the initial pheromone value c, and the baseline dead
	// agents reset their walked edges to. Must be > 0.
	TrailInit float64

	// Alpha is the trail-preference exponent α. Must be ≥ 0.
	Alpha float64

	// Beta is the cost-preference exponent β: desirability uses
	// (1/weight)^β, so larger β favors cheaper edges harder. Must be ≥ 0.
	Beta float64

	// Evaporation is the multiplicative decay applied to every trail each
	// iteration. Must be in [0,1].
	Evaporation float64

	// Q scales deposits: each agent adds Q/length onto its walked edges.
	// Must be > 0.
	Q float64

	// AntFactor sizes the population: ants = floor(AntFactor × n).
	// Must be > 0 and must yield at least one ant.
	AntFactor float64

	// RandomMoveProb is the probability pr of a uniformly random move among
	// valid unvisited neighbors instead of the desirability draw. In [0,1].
	RandomMoveProb float64

	// Iterations is the fixed budget; there is no convergence early-exit.
	// Must be ≥ 1.
	Iterations int

	// Start and Goal are node indices in [0, n).
	Start int
	Goal  int

	// Seed pins the RNG; 0 selects the fixed default stream so results stay
	// reproducible without configuration.
	Seed int64

	// Workers bounds the per-step decision fan-out; 0 or 1 is sequential.
	// The outcome does not depend on it.
	Workers int

	// Pow is the power strategy for desirability; nil selects ApproxPow.
	Pow PowFunc
}

// DefaultOptions returns the reference Ant System constants: c=1, α=1, β=5,
// evaporation=0.5, Q=500, population factor 0.8, pr=0.3. The iteration
// budget defaults to 1000 (the reference used 80000, overkill for small
// grids; raise it for hard instances).
func DefaultOptions() Options {
	return Options{
		TrailInit:      1.0,
		Alpha:          1.0,
		Beta:           5.0,
		Evaporation:    0.5,
		Q:              500,
		AntFactor:      0.8,
		RandomMoveProb: 0.3,
		Iterations:     1000,
		Start:          0,
		Goal:           1,
		Seed:           0,
		Workers:        1,
		Pow:            nil,
	}
}
