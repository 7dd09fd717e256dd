// Package antgrid is an ant-colony path-search toolkit for weighted grid
// graphs — stochastic route discovery between two nodes of a rectangular
// 4-connected lattice.
//
// 🐜 What is antgrid?
//
//	A small, deterministic-by-seed library that brings together:
//		• matrix/ — dense weight matrices, validation and a plain-text loader
//		• grid/   — rectangular 4-connected topology over linear node indices
//		• aco/    — the colony engine: pheromone trails, per-ant movement,
//		            evaporation/reinforcement and the iteration loop
//
// ✨ Why choose antgrid?
//
//   - Reproducible – every random draw flows from a single seed; parallel
//     ants use independent derived streams
//   - Honest API – sentinel errors, no panics on user input, no logging
//   - Pure Go – no cgo, no hidden deps
//   - Tunable – every Ant System parameter (α, β, evaporation, Q, pr, …)
//     is an explicit Option
//
// Quick ASCII example (width 3, start 0, goal 8):
//
//	0───1───2
//	│   │   │
//	3───4───5
//	│   │   │
//	6───7───8
//
// Ants walk the lattice step by step, depositing pheromone on the edges of
// whatever route reached the goal cheaply; evaporation forgets the rest.
//
//	go get github.com/katalvlaran/antgrid
package antgrid
