// Package aco implements an Ant System path-search engine on weighted
// 4-connected grids: a population of stochastic agents walks the lattice in
// lock-step, pheromone trails accumulate on the edges of cheap routes, and
// evaporation forgets the rest.
//
// What:
//
//   - Solve runs the full colony loop between a start and a goal node and
//     returns the best route observed across all iterations.
//   - Options exposes every Ant System parameter: initial trail c, trail
//     exponent α, cost exponent β, evaporation factor, deposit scale Q,
//     population factor, random-move probability pr, iteration budget, seed
//     and worker count.
//   - ApproxPow/MathPow are swappable power strategies for the desirability
//     computation (the hot path evaluates a^b O(ants×steps×4) times per
//     iteration).
//
// Why:
//
//   - Maze routing and terrain navigation where edge costs are dense and a
//     good-enough route beats an exact one.
//   - Experimentation with trail/evaporation dynamics: every knob is an
//     explicit option and every random draw flows from one seed.
//
// Complexity:
//
//   - One iteration: O(m×n×4) decision work + O(n²) trail update, where
//     m = ants and n = nodes. Memory: O(n² + m×n).
//
// Determinism:
//
//   - Same seed, parameters and weights ⇒ identical Result. Each ant owns an
//     independent SplitMix64-derived stream fixed at setup, so the guarantee
//     holds for any Workers value.
//
// Errors:
//
//   - Validation sentinels (ErrNoAnts, ErrNodeOutOfRange, ErrBadEvaporation,
//     …) are returned before any iteration runs. A run that never reaches
//     the goal is NOT an error: Result carries the best partial route and
//     ReachedGoal reports goal attainment.
//
// The method is a heuristic: no optimality guarantee is made, and a run may
// fail to find any complete route.
package aco
