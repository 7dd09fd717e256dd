// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/antgrid.
package grid

import "errors"

// ErrBadDimensions indicates a non-positive width or height.
var ErrBadDimensions = errors.New("grid: width and height must be > 0")

// Direction selects one of the four orthogonal neighbors of a node.
// The declaration order (Left, Up, Right, Down) is load-bearing: callers
// that scan directions deterministically rely on it.
type Direction int

const (
	// Left is the neighbor at column-1 (invalid in column 0).
	Left Direction = iota
	// Up is the neighbor one row above (invalid in row 0).
	Up
	// Right is the neighbor at column+1 (invalid in the last column).
	Right
	// Down is the neighbor one row below (invalid in the last row).
	Down

	// NumDirections is the count of orthogonal directions.
	NumDirections
)

// String returns the lowercase direction name; "unknown" for out-of-range values.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Grid is a rectangular lattice of Width×Height nodes in row-major order.
// It is a small value type; copy freely.
type Grid struct {
	Width, Height int
}
