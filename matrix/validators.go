// Package matrix - validation helpers shared by consumers of weight matrices.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n²) worst-case where n is the matrix order; no hidden allocations.
package matrix

import "math"

// ValidateWeights verifies that m is a usable weight matrix for path search:
// non-nil, square, order ≥ 1, every entry finite and ≥ 0.
// It returns n (matrix order) on success.
//
// Contract:
//   - Zero entries are allowed here; consumers that forbid zero-cost edges
//     apply their own bias on ingestion.
//
// Complexity: O(n²) time, O(1) extra space.
func ValidateWeights(m Matrix) (int, error) {
	// Stage 1: shape checks (non-nil, square).
	if m == nil {
		return 0, ErrNilMatrix
	}
	nr, nc := m.Rows(), m.Cols()
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	n := nr

	// Stage 2: value scan (finite, non-negative).
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrNaNInf
			}
			if v < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	return n, nil
}
