// Package matrix provides the dense weight-matrix carrier used by the
// antgrid solver, plus validation and a plain-text loader.
//
// What:
//
//   - Matrix: a minimal interface over two-dimensional float64 storage
//     (Rows/Cols/At/Set/Clone) with bounds-checked access.
//   - Dense: the row-major flat-slice implementation.
//   - ValidateWeights: shape/value checks for square non-negative matrices.
//   - ParseDense: whitespace-column, newline-row matrix text loader.
//
// Why:
//
//   - Edge costs for grid path search arrive as full n×n matrices; a flat
//     row-major buffer keeps the solver's hot loop cache-friendly.
//   - Public accessors return errors instead of panicking, so malformed
//     indices surface as values, never as crashes.
//
// Complexity:
//
//   - At/Set/Rows/Cols: O(1).
//   - Clone, ValidateWeights: O(r×c).
//   - ParseDense: O(bytes) single pass.
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive dimension.
//   - ErrOutOfRange: row or column index outside valid bounds.
//   - ErrNonSquare: a square matrix was required but rows ≠ cols.
//   - ErrNaNInf: NaN or ±Inf where finite values are required.
//   - ErrNegativeWeight: negative entry where weights must be ≥ 0.
//   - ErrParse: malformed matrix text (ragged rows, non-numeric fields).
package matrix
