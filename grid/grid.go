// Package grid provides pure-function topology over row-major node indices.
//
// A node idx sits at column idx % Width, row idx / Width. Adjacency never
// wraps: the left edge of one row is not adjacent to the right edge of the
// previous row.
package grid

// New constructs a Grid with the given dimensions.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(1).
func New(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, ErrBadDimensions
	}

	return Grid{Width: width, Height: height}, nil
}

// Nodes returns the total node count, Width×Height.
// Complexity: O(1).
func (g Grid) Nodes() int {
	return g.Width * g.Height
}

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x, y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x, y).
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Neighbor resolves the node adjacent to idx in direction d.
// The second return value is false when the move would cross a grid
// boundary, when idx is outside [0, Nodes()) or when d is out of range.
//
// Contract: no wrap-around. Left at column 0, Up in row 0, Right in the
// last column and Down in the last row all report false.
//
// Complexity: O(1).
func (g Grid) Neighbor(idx int, d Direction) (int, bool) {
	if idx < 0 || idx >= g.Nodes() {
		return 0, false
	}
	switch d {
	case Left:
		if idx%g.Width == 0 {
			return 0, false
		}

		return idx - 1, true
	case Up:
		if idx < g.Width {
			return 0, false
		}

		return idx - g.Width, true
	case Right:
		if (idx+1)%g.Width == 0 {
			return 0, false
		}

		return idx + 1, true
	case Down:
		if idx >= g.Width*(g.Height-1) {
			return 0, false
		}

		return idx + g.Width, true
	default:
		return 0, false
	}
}

// Degree returns how many orthogonal neighbors idx has (2, 3 or 4 for
// in-bounds indices; 0 for out-of-range ones).
// Complexity: O(1).
func (g Grid) Degree(idx int) int {
	var n int
	var d Direction
	for d = Left; d < NumDirections; d++ {
		if _, ok := g.Neighbor(idx, d); ok {
			n++
		}
	}

	return n
}
