// Package matrix_test contains unit tests for Dense construction, accessors
// and cloning semantics.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/antgrid/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	cases := []struct{ r, c int }{{0, 3}, {3, 0}, {-1, 2}, {2, -5}, {0, 0}}
	for _, tc := range cases {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions,
			"NewDense(%d,%d)", tc.r, tc.c)
	}
}

// TestDense_AtSet exercises bounds-checked access on a 2×3 matrix.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	// Fresh matrices are zero-initialized.
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	// Round-trip a value.
	require.NoError(t, m.Set(1, 2, 7.5))
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	// Out-of-range indices surface ErrOutOfRange, wrapped with context.
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestFromRows_Shapes verifies deep-copy construction and ragged rejection.
func TestFromRows_Shapes(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	// Mutating the source rows must not leak into the matrix.
	rows[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	// Empty and ragged inputs are invalid shapes.
	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_CloneIndependence verifies Clone yields an independent copy.
func TestDense_CloneIndependence(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, m.Set(0, 0, 42))

	got, err := cp.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, got, "clone must not observe writes to the original")
}

// TestDense_String pins the debug rendering format.
func TestDense_String(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2.5}, {0, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[0, 4]\n", m.String())
}

// TestErrorsAreDistinct guards against accidental sentinel aliasing.
func TestErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		matrix.ErrInvalidDimensions,
		matrix.ErrOutOfRange,
		matrix.ErrNonSquare,
		matrix.ErrNaNInf,
		matrix.ErrNegativeWeight,
		matrix.ErrNilMatrix,
		matrix.ErrParse,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinel %v aliases %v", a, b)
			}
		}
	}
}
