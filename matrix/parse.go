// Package matrix - plain-text matrix loader.
//
// Input format (full adjacency matrix):
//   - Columns separated by any run of spaces or tabs.
//   - Rows separated by newlines; blank lines are skipped.
//   - Fields parsed as float64.
//
// The loader performs no numeric policy beyond parseability; square/value
// checks belong to ValidateWeights so that rectangular matrices stay loadable
// for other uses.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDense reads a whitespace/row-delimited matrix from r.
// Stage 1 (Scan): split input into non-blank lines.
// Stage 2 (Parse): tokenize each line, convert fields to float64.
// Stage 3 (Shape): require every row to match the first row's length.
// Returns ErrParse (wrapped with line context) on any malformed input.
// Complexity: O(bytes) time, O(r*c) memory.
func ParseDense(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	// Rows can be long for large n; lift the default 64KiB token limit.
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	var (
		rows [][]float64
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // skip blank lines
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, field %q: %w", line, f, ErrParse)
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: row length %d != %d: %w",
				line, len(row), len(rows[0]), ErrParse)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrParse)
	}

	return FromRows(rows)
}
