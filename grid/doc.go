// Package grid models a rectangular lattice of nodes addressed by linear
// index, with 4-directional adjacency.
//
// What:
//
//   - Grid carries explicit Width and Height (no hardcoded row length).
//   - Nodes are integers in [0, Width×Height); row-major layout.
//   - Neighbor(idx, dir) resolves the adjacent node in a Direction, with an
//     explicit ok-flag at boundaries instead of a sentinel value.
//
// Why:
//
//   - Path-search engines on grids need only index arithmetic, not explicit
//     edge lists; keeping topology a pure function keeps the hot loop flat.
//   - Boundary behavior (no wrap-around) is where grid bugs live; isolating
//     it here makes the adjacency property testable on its own.
//
// Complexity:
//
//   - Every operation is O(1); the type holds no derived state.
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
package grid
